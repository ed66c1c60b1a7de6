package get_available_slots

import "errors"

var (
	// ErrTherapistNotFound is returned when no active therapist has the slug
	ErrTherapistNotFound = errors.New("get_available_slots: therapist not found")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidTimezone is returned for an unknown IANA zone name
	ErrInvalidTimezone = errors.New("get_available_slots: invalid timezone")

	// ErrInternal is returned when a store lookup fails
	ErrInternal = errors.New("get_available_slots: internal error")
)
