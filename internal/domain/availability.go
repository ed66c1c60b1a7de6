package domain

import (
	"time"

	"github.com/m04kA/TherapyBookingService/pkg/types"
)

// WeeklyAvailabilityRule is a recurring working window for one day of the week.
// StartTime and EndTime are wall-clock values in the therapist's frame.
// Several rules may exist for the same day and may overlap.
type WeeklyAvailabilityRule struct {
	ID          int64
	TherapistID int64
	DayOfWeek   int // 0=Sunday..6=Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Weekday returns the rule day as time.Weekday
func (r *WeeklyAvailabilityRule) Weekday() time.Weekday {
	return time.Weekday(r.DayOfWeek)
}

// AppliesTo returns true if the rule is active on the given weekday
func (r *WeeklyAvailabilityRule) AppliesTo(day time.Weekday) bool {
	return r.IsActive && r.Weekday() == day
}

// IsValid checks the start < end invariant and the day range
func (r *WeeklyAvailabilityRule) IsValid() bool {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return false
	}
	if r.StartTime.Validate() != nil || r.EndTime.Validate() != nil {
		return false
	}
	return r.StartTime.IsBefore(r.EndTime)
}

// WeeklyRuleFilter narrows a weekly rule lookup
type WeeklyRuleFilter struct {
	TherapistID int64
	DayOfWeek   *int // nil = all days
	ActiveOnly  bool
}
