package get_available_dates

import "errors"

var (
	// ErrTherapistNotFound is returned when no active therapist has the slug
	ErrTherapistNotFound = errors.New("get_available_dates: therapist not found")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("get_available_dates: invalid input data")

	// ErrInvalidTimezone is returned for an unknown IANA zone name
	ErrInvalidTimezone = errors.New("get_available_dates: invalid timezone")

	// ErrInternal is returned when a store lookup fails
	ErrInternal = errors.New("get_available_dates: internal error")
)
