package availability

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

// ResolveLocation loads the IANA zone name, falling back to fallback when name is empty.
func ResolveLocation(name, fallback string) (*time.Location, error) {
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = domain.DefaultPracticeZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	return loc, nil
}

// WallClockToInstant interprets minutes past midnight on date as a wall-clock
// reading in loc and returns the matching UTC instant.
// This is the local -> instant direction; it must not be replaced with t.In(loc).
func WallClockToInstant(date civil.Date, minutes int, loc *time.Location) time.Time {
	return time.Date(date.Year, date.Month, date.Day, 0, minutes, 0, 0, loc).UTC()
}

// LocalDate renders the instant t on loc's calendar.
func LocalDate(t time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(t.In(loc))
}

// FormatLocal renders t as "h:mm a" wall-clock time in loc.
func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(domain.SlotDisplayFormat)
}

// blockDates returns the first and last local calendar dates an all-day block covers.
// An end that falls exactly on local midnight is exclusive.
func blockDates(b *domain.BlockedInterval, loc *time.Location) (civil.Date, civil.Date) {
	first := LocalDate(b.StartDatetime, loc)
	last := LocalDate(b.EndDatetime, loc)

	endLocal := b.EndDatetime.In(loc)
	atMidnight := endLocal.Hour() == 0 && endLocal.Minute() == 0 && endLocal.Second() == 0 && endLocal.Nanosecond() == 0
	if atMidnight && b.EndDatetime.After(b.StartDatetime) && last.After(first) {
		last = last.AddDays(-1)
	}
	if last.Before(first) {
		last = first
	}
	return first, last
}
