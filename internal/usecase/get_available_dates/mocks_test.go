package get_available_dates

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

type mockTherapistRepo struct{ mock.Mock }

func (m *mockTherapistRepo) FindActiveBySlug(ctx context.Context, slug string) (*domain.Therapist, error) {
	args := m.Called(ctx, slug)
	if t, ok := args.Get(0).(*domain.Therapist); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAvailabilityRepo struct{ mock.Mock }

func (m *mockAvailabilityRepo) FindWeeklyRules(ctx context.Context, filter domain.WeeklyRuleFilter) ([]*domain.WeeklyAvailabilityRule, error) {
	args := m.Called(ctx, filter)
	if r, ok := args.Get(0).([]*domain.WeeklyAvailabilityRule); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBlockedRepo struct{ mock.Mock }

func (m *mockBlockedRepo) FindByTherapist(ctx context.Context, therapistID int64) ([]*domain.BlockedInterval, error) {
	args := m.Called(ctx, therapistID)
	if b, ok := args.Get(0).([]*domain.BlockedInterval); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) FindByTherapist(ctx context.Context, filter domain.TherapistBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if b, ok := args.Get(0).([]*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
