package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken is returned when a confirmed booking already starts at the same instant
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	ErrBuildQuery = errors.New("booking.repository: failed to build query")
	ErrExecQuery  = errors.New("booking.repository: failed to execute query")
	ErrScanRow    = errors.New("booking.repository: failed to scan row")
)
