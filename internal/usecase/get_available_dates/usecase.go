package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/m04kA/TherapyBookingService/internal/availability"
	"github.com/m04kA/TherapyBookingService/internal/domain"
	therapistRepo "github.com/m04kA/TherapyBookingService/internal/infra/storage/therapist"
)

// bookingLookback widens the booking query so sessions that start before the
// window but still overlap it are loaded.
const bookingLookback = 24 * time.Hour

// UseCase computes the days on which a therapist has at least one free slot
type UseCase struct {
	therapistRepo    TherapistRepository
	availabilityRepo AvailabilityRepository
	blockedRepo      BlockedRepository
	bookingRepo      BookingRepository
	defaultTimezone  string
	timeProvider     TimeProvider
	logger           Logger
}

func NewUseCase(
	therapistRepo TherapistRepository,
	availabilityRepo AvailabilityRepository,
	blockedRepo BlockedRepository,
	bookingRepo BookingRepository,
	defaultTimezone string,
	logger Logger,
) *UseCase {
	return &UseCase{
		therapistRepo:    therapistRepo,
		availabilityRepo: availabilityRepo,
		blockedRepo:      blockedRepo,
		bookingRepo:      bookingRepo,
		defaultTimezone:  defaultTimezone,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute evaluates the whole bookable horizon against a fresh snapshot of the stores
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: slug=%s, duration=%d, timezone=%q", req.Slug, req.DurationMinutes, req.Timezone)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the display timezone
	loc, err := availability.ResolveLocation(req.Timezone, uc.defaultTimezone)
	if err != nil {
		uc.logger.Warn("GetAvailableDates: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	// 3. Pin the current instant once for the whole computation
	now := uc.timeProvider.Now()

	// 4. Load the therapist
	therapist, err := uc.therapistRepo.FindActiveBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			uc.logger.Warn("GetAvailableDates: therapist slug=%s not found", req.Slug)
			return nil, ErrTherapistNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get therapist slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = therapist.DefaultSessionDuration
	}

	response := &Response{
		Therapist:       therapist.Summary(),
		Dates:           []civil.Date{},
		DurationMinutes: duration,
		Timezone:        loc.String(),
	}

	// 5. Empty horizon needs no further store access
	windowStart, windowEnd := availability.BookingWindow(therapist, now)
	if !windowStart.Before(windowEnd) {
		uc.logger.Info("GetAvailableDates: empty booking window for therapist id=%d", therapist.ID)
		return response, nil
	}

	// 6. Load rules, blocks and confirmed bookings
	rules, err := uc.availabilityRepo.FindWeeklyRules(ctx, domain.WeeklyRuleFilter{
		TherapistID: therapist.ID,
		ActiveOnly:  true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get weekly rules for therapist id=%d: %v", therapist.ID, err)
		return nil, fmt.Errorf("%w: failed to get weekly rules: %v", ErrInternal, err)
	}

	if len(rules) == 0 {
		uc.logger.Info("GetAvailableDates: therapist id=%d has no active weekly rules", therapist.ID)
		return response, nil
	}

	blocks, err := uc.blockedRepo.FindByTherapist(ctx, therapist.ID)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get blocked intervals for therapist id=%d: %v", therapist.ID, err)
		return nil, fmt.Errorf("%w: failed to get blocked intervals: %v", ErrInternal, err)
	}

	status := domain.StatusConfirmed
	from := windowStart.Add(-bookingLookback)
	to := windowEnd.Add(2 * bookingLookback)
	bookings, err := uc.bookingRepo.FindByTherapist(ctx, domain.TherapistBookingsFilter{
		TherapistID: therapist.ID,
		Status:      &status,
		From:        &from,
		To:          &to,
	})
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get bookings for therapist id=%d: %v", therapist.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Walk the horizon
	response.Dates = availability.AvailableDates(availability.Snapshot{
		Therapist: therapist,
		Rules:     rules,
		Blocks:    blocks,
		Bookings:  bookings,
	}, availability.Query{
		DurationMinutes: duration,
		Location:        loc,
		Now:             now,
	})

	uc.logger.Info("GetAvailableDates: therapist id=%d has %d available dates", therapist.ID, len(response.Dates))

	return response, nil
}
