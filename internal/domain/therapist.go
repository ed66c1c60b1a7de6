package domain

import "time"

// Therapist represents a practitioner together with the scheduling parameters
// that bound which slots clients may book.
type Therapist struct {
	ID                     int64
	Name                   string
	Slug                   string
	DefaultSessionDuration int // minutes, > 0
	BufferTime             int // minutes, >= 0
	AdvanceBookingDays     int // max horizon in days, > 0
	MinBookingNotice       int // hours, >= 0
	IsActive               bool
	DeletedAt              *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsBookable returns true if the therapist may be offered to clients at all
func (t *Therapist) IsBookable() bool {
	return t != nil && t.IsActive && t.DeletedAt == nil
}

// Summary returns the identity fragment attached to query results
func (t *Therapist) Summary() TherapistSummary {
	return TherapistSummary{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

// BufferDuration returns the padding applied around each confirmed booking
func (t *Therapist) BufferDuration() time.Duration {
	return time.Duration(t.BufferTime) * time.Minute
}

// NoticeDuration returns the minimum lead time before a slot may start
func (t *Therapist) NoticeDuration() time.Duration {
	return time.Duration(t.MinBookingNotice) * time.Hour
}

// TherapistSummary identifies a therapist in availability responses
type TherapistSummary struct {
	ID   int64
	Name string
	Slug string
}
