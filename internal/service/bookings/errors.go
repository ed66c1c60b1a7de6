package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied is returned when the caller does not own the booking
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrCannotCancel is returned for bookings that are no longer pending or confirmed
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned on store failures
	ErrInternal = errors.New("bookings: internal error")
)
