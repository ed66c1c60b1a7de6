package create_booking

import "errors"

var (
	// ErrTherapistNotFound is returned when no active therapist has the slug
	ErrTherapistNotFound = errors.New("create_booking: therapist not found")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimezone is returned for an unknown IANA zone name
	ErrInvalidTimezone = errors.New("create_booking: invalid timezone")

	// ErrInvalidTimeSlot is returned when the start is not a grid position of the date
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable is returned when the grid position exists but is taken,
	// blocked, too soon, or lost to a concurrent reservation
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal is returned on store failures
	ErrInternal = errors.New("create_booking: internal error")
)
