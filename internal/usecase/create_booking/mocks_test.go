package create_booking

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

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

// inlineTx runs the callback directly, or fails the way an exhausted retry loop does.
type inlineTx struct {
	calls int
	err   error
}

func (tx *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
