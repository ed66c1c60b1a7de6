package therapist

import "errors"

var (
	// ErrTherapistNotFound is returned when no active, non-deleted therapist matches
	ErrTherapistNotFound = errors.New("therapist.repository: therapist not found")

	ErrBuildQuery = errors.New("therapist.repository: failed to build query")
	ErrExecQuery  = errors.New("therapist.repository: failed to execute query")
	ErrScanRow    = errors.New("therapist.repository: failed to scan row")
)
