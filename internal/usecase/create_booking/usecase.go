package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/TherapyBookingService/internal/availability"
	"github.com/m04kA/TherapyBookingService/internal/domain"
	bookingRepo "github.com/m04kA/TherapyBookingService/internal/infra/storage/booking"
	therapistRepo "github.com/m04kA/TherapyBookingService/internal/infra/storage/therapist"
	"github.com/m04kA/TherapyBookingService/pkg/txmanager"
)

const bookingMargin = 24 * time.Hour

// UseCase reserves a slot. The availability check is repeated inside a
// serializable transaction with the same engine the slot query uses, so a
// slot offered to two clients is only ever confirmed once.
type UseCase struct {
	therapistRepo    TherapistRepository
	availabilityRepo AvailabilityRepository
	blockedRepo      BlockedRepository
	bookingRepo      BookingRepository
	txManager        TransactionManager
	defaultTimezone  string
	timeProvider     TimeProvider
	logger           Logger
}

func NewUseCase(
	therapistRepo TherapistRepository,
	availabilityRepo AvailabilityRepository,
	blockedRepo BlockedRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	defaultTimezone string,
	logger Logger,
) *UseCase {
	return &UseCase{
		therapistRepo:    therapistRepo,
		availabilityRepo: availabilityRepo,
		blockedRepo:      blockedRepo,
		bookingRepo:      bookingRepo,
		txManager:        txManager,
		defaultTimezone:  defaultTimezone,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute validates the request, re-checks the slot and inserts a confirmed booking
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, slug=%s, start=%s, duration=%d",
		req.ClientID, req.TherapistSlug, req.StartTime.UTC().Format(time.RFC3339), req.DurationMinutes)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the timezone the grid was built in
	loc, err := availability.ResolveLocation(req.Timezone, uc.defaultTimezone)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	// 3. Pin the current instant
	now := uc.timeProvider.Now()

	// 4. Load the therapist
	therapist, err := uc.therapistRepo.FindActiveBySlug(ctx, req.TherapistSlug)
	if err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			uc.logger.Warn("CreateBooking: therapist slug=%s not found", req.TherapistSlug)
			return nil, ErrTherapistNotFound
		}
		uc.logger.Error("CreateBooking: failed to get therapist slug=%s: %v", req.TherapistSlug, err)
		return nil, fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = therapist.DefaultSessionDuration
	}

	start := req.StartTime.UTC()
	end := start.Add(time.Duration(duration) * time.Minute)
	date := availability.LocalDate(start, loc)

	var created *domain.Booking

	// 5. Re-check and insert atomically
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Rules for the weekday
		weekday := int(availability.Weekday(date))
		rules, err := uc.availabilityRepo.FindWeeklyRules(txCtx, domain.WeeklyRuleFilter{
			TherapistID: therapist.ID,
			DayOfWeek:   &weekday,
			ActiveOnly:  true,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get weekly rules: %v", err)
			return fmt.Errorf("%w: failed to get weekly rules: %w", ErrInternal, err)
		}

		// 5.2. Blocks
		blocks, err := uc.blockedRepo.FindByTherapist(txCtx, therapist.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked intervals: %v", err)
			return fmt.Errorf("%w: failed to get blocked intervals: %w", ErrInternal, err)
		}

		// 5.3. Confirmed bookings around the date, locked for the rest of the transaction
		status := domain.StatusConfirmed
		from := availability.WallClockToInstant(date, 0, loc).Add(-bookingMargin)
		to := availability.WallClockToInstant(date.AddDays(1), 0, loc).Add(bookingMargin)
		bookings, err := uc.bookingRepo.FindByTherapist(txCtx, domain.TherapistBookingsFilter{
			TherapistID: therapist.ID,
			Status:      &status,
			From:        &from,
			To:          &to,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 5.4. The requested window must be an available grid position
		slots := availability.DaySlots(availability.Snapshot{
			Therapist: therapist,
			Rules:     rules,
			Blocks:    blocks,
			Bookings:  bookings,
		}, date, availability.Query{
			DurationMinutes: duration,
			Location:        loc,
			Now:             now,
		})

		if err := checkSlot(slots, start, end); err != nil {
			uc.logger.Warn("CreateBooking: therapist id=%d, start=%s: %v", therapist.ID, start.Format(time.RFC3339), err)
			return err
		}

		// 5.5. The grid only sees bookings starting on this date; recheck against all loaded ones
		if availability.ConflictsWithBookings(therapist, bookings, start, end) {
			uc.logger.Warn("CreateBooking: therapist id=%d, start=%s overlaps a booking from an adjacent day",
				therapist.ID, start.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		// 5.6. Insert
		booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			TherapistID:   therapist.ID,
			ClientID:      req.ClientID,
			ClientName:    strings.TrimSpace(req.ClientName),
			ClientEmail:   strings.TrimSpace(req.ClientEmail),
			StartDatetime: start,
			EndDatetime:   end,
			Status:        domain.StatusConfirmed,
			Notes:         req.Notes,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot start=%s taken concurrently", start.Format(time.RFC3339))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		created = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: giving up on slot start=%s after serialization conflicts", start.Format(time.RFC3339))
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrInvalidTimeSlot) || errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d for therapist id=%d at %s",
		created.ID, therapist.ID, start.Format(time.RFC3339))

	return &Response{
		ID:              created.ID,
		TherapistID:     therapist.ID,
		TherapistSlug:   therapist.Slug,
		ClientID:        created.ClientID,
		ClientName:      created.ClientName,
		ClientEmail:     created.ClientEmail,
		StartTime:       created.StartDatetime,
		EndTime:         created.EndDatetime,
		StartFormatted:  availability.FormatLocal(created.StartDatetime, loc),
		EndFormatted:    availability.FormatLocal(created.EndDatetime, loc),
		DurationMinutes: created.DurationMinutes(),
		Status:          created.Status,
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
	}, nil
}

// checkSlot finds the grid position matching [start, end).
// Duplicates from overlapping rules count as available if any copy is.
func checkSlot(slots []domain.Slot, start, end time.Time) error {
	found := false
	for _, s := range slots {
		if !s.Start.Equal(start) || !s.End.Equal(end) {
			continue
		}
		if s.Available {
			return nil
		}
		found = true
	}
	if found {
		return ErrSlotNotAvailable
	}
	return ErrInvalidTimeSlot
}
