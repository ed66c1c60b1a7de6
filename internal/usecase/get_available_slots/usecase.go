package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TherapyBookingService/internal/availability"
	"github.com/m04kA/TherapyBookingService/internal/domain"
	therapistRepo "github.com/m04kA/TherapyBookingService/internal/infra/storage/therapist"
)

// bookingMargin widens the booking query around the local day so that
// sessions spilling over midnight and zone offsets are covered.
const bookingMargin = 24 * time.Hour

// UseCase builds the slot grid of one date for a therapist
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

// Execute returns all grid positions of the requested date.
// A date outside the booking horizon is not rejected; its slots simply come back unavailable or empty.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: slug=%s, date=%s, duration=%d, timezone=%q",
		req.Slug, req.Date, req.DurationMinutes, req.Timezone)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the display timezone
	loc, err := availability.ResolveLocation(req.Timezone, uc.defaultTimezone)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	// 3. Pin the current instant
	now := uc.timeProvider.Now()

	// 4. Load the therapist
	therapist, err := uc.therapistRepo.FindActiveBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			uc.logger.Warn("GetAvailableSlots: therapist slug=%s not found", req.Slug)
			return nil, ErrTherapistNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get therapist slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = therapist.DefaultSessionDuration
	}

	response := &Response{
		Therapist:       therapist.Summary(),
		Date:            req.Date,
		Slots:           []domain.Slot{},
		DurationMinutes: duration,
		Timezone:        loc.String(),
	}

	// 5. Rules for the weekday of the requested date
	weekday := int(availability.Weekday(req.Date))
	rules, err := uc.availabilityRepo.FindWeeklyRules(ctx, domain.WeeklyRuleFilter{
		TherapistID: therapist.ID,
		DayOfWeek:   &weekday,
		ActiveOnly:  true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get weekly rules for therapist id=%d: %v", therapist.ID, err)
		return nil, fmt.Errorf("%w: failed to get weekly rules: %v", ErrInternal, err)
	}

	if len(rules) == 0 {
		uc.logger.Info("GetAvailableSlots: therapist id=%d has no rules on %s", therapist.ID, req.Date)
		return response, nil
	}

	// 6. Blocks and confirmed bookings around the date
	blocks, err := uc.blockedRepo.FindByTherapist(ctx, therapist.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked intervals for therapist id=%d: %v", therapist.ID, err)
		return nil, fmt.Errorf("%w: failed to get blocked intervals: %v", ErrInternal, err)
	}

	status := domain.StatusConfirmed
	from := availability.WallClockToInstant(req.Date, 0, loc).Add(-bookingMargin)
	to := availability.WallClockToInstant(req.Date.AddDays(1), 0, loc).Add(bookingMargin)
	bookings, err := uc.bookingRepo.FindByTherapist(ctx, domain.TherapistBookingsFilter{
		TherapistID: therapist.ID,
		Status:      &status,
		From:        &from,
		To:          &to,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for therapist id=%d: %v", therapist.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Build the grid
	response.Slots = availability.DaySlots(availability.Snapshot{
		Therapist: therapist,
		Rules:     rules,
		Blocks:    blocks,
		Bookings:  bookings,
	}, req.Date, availability.Query{
		DurationMinutes: duration,
		Location:        loc,
		Now:             now,
	})

	uc.logger.Info("GetAvailableSlots: therapist id=%d, date=%s: %d slots, %d available",
		therapist.ID, req.Date, len(response.Slots), response.AvailableCount())

	return response, nil
}
