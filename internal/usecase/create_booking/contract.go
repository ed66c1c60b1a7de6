package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

// TherapistRepository looks up bookable therapist profiles
type TherapistRepository interface {
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Therapist, error)
}

// AvailabilityRepository reads weekly availability rules
type AvailabilityRepository interface {
	FindWeeklyRules(ctx context.Context, filter domain.WeeklyRuleFilter) ([]*domain.WeeklyAvailabilityRule, error)
}

// BlockedRepository reads blocked intervals
type BlockedRepository interface {
	FindByTherapist(ctx context.Context, therapistID int64) ([]*domain.BlockedInterval, error)
}

// BookingRepository reads and inserts bookings
type BookingRepository interface {
	FindByTherapist(ctx context.Context, filter domain.TherapistBookingsFilter) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager runs the availability re-check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider returns the current instant
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
