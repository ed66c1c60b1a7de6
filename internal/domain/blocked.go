package domain

import "time"

// BlockedInterval is an ad-hoc exclusion from a therapist's weekly schedule.
// All-day blocks are matched by calendar date in the therapist's frame,
// partial blocks by instant overlap.
type BlockedInterval struct {
	ID            int64
	TherapistID   int64
	StartDatetime time.Time
	EndDatetime   time.Time
	IsAllDay      bool
	Reason        *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
