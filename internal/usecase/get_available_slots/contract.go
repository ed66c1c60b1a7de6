package get_available_slots

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

// BookingRepository reads bookings
type BookingRepository interface {
	FindByTherapist(ctx context.Context, filter domain.TherapistBookingsFilter) ([]*domain.Booking, error)
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
