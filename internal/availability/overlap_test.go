package availability

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

func TestInterval_Conflicts(t *testing.T) {
	base := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	hm := func(h, m int) time.Time { return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	obstruction := Interval{Start: hm(10, 0), End: hm(11, 0)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "ends at obstruction start", start: hm(9, 0), end: hm(10, 0), want: false},
		{name: "starts at obstruction start", start: hm(10, 0), end: hm(10, 30), want: true},
		{name: "starts at obstruction end", start: hm(11, 0), end: hm(12, 0), want: false},
		{name: "ends at obstruction end", start: hm(10, 30), end: hm(11, 0), want: true},
		{name: "ends inside", start: hm(9, 30), end: hm(10, 30), want: true},
		{name: "starts inside", start: hm(10, 45), end: hm(11, 45), want: true},
		{name: "identical", start: hm(10, 0), end: hm(11, 0), want: true},
		{name: "contains obstruction", start: hm(9, 30), end: hm(11, 30), want: true},
		{name: "well before", start: hm(8, 0), end: hm(9, 0), want: false},
		{name: "well after", start: hm(12, 0), end: hm(13, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, obstruction.Conflicts(tt.start, tt.end))
		})
	}
}

func TestWallClockToInstant_DaylightSaving(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// EDT (UTC-4) before the 2026-11-01 switch, EST (UTC-5) after it.
	friday := civil.Date{Year: 2026, Month: time.October, Day: 30}
	monday := civil.Date{Year: 2026, Month: time.November, Day: 2}

	assert.True(t, WallClockToInstant(friday, 9*60, newYork).Equal(time.Date(2026, 10, 30, 13, 0, 0, 0, time.UTC)))
	assert.True(t, WallClockToInstant(monday, 9*60, newYork).Equal(time.Date(2026, 11, 2, 14, 0, 0, 0, time.UTC)))
}

func TestLocalDate(t *testing.T) {
	losAngeles, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	instant := time.Date(2026, 10, 20, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, civil.Date{Year: 2026, Month: time.October, Day: 20}, LocalDate(instant, time.UTC))
	assert.Equal(t, civil.Date{Year: 2026, Month: time.October, Day: 19}, LocalDate(instant, losAngeles))
}

func TestBlockDates(t *testing.T) {
	day := civil.Date{Year: 2026, Month: time.October, Day: 19}
	utc := func(d civil.Date, h, m int) time.Time {
		return time.Date(d.Year, d.Month, d.Day, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantFirst civil.Date
		wantLast  civil.Date
	}{
		{name: "single day closed at 23:59", start: utc(day, 0, 0), end: utc(day, 23, 59), wantFirst: day, wantLast: day},
		{name: "single day ending next midnight", start: utc(day, 0, 0), end: utc(day.AddDays(1), 0, 0), wantFirst: day, wantLast: day},
		{name: "three days", start: utc(day, 0, 0), end: utc(day.AddDays(2), 18, 0), wantFirst: day, wantLast: day.AddDays(2)},
		{name: "degenerate", start: utc(day, 0, 0), end: utc(day, 0, 0), wantFirst: day, wantLast: day},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := blockDates(&domain.BlockedInterval{StartDatetime: tt.start, EndDatetime: tt.end, IsAllDay: true}, time.UTC)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestResolveLocation(t *testing.T) {
	loc, err := ResolveLocation("", "Europe/London")
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", loc.String())

	loc, err = ResolveLocation("Asia/Tokyo", "Europe/London")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	_, err = ResolveLocation("Mars/Olympus_Mons", "Europe/London")
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}
