// Package availability computes bookable dates and slot grids for a therapist.
//
// Every function here is pure: it takes a snapshot of the four stores, the
// current instant and the request, and derives the result from scratch.
// Nothing is cached between calls.
package availability

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

// Snapshot holds the store contents a query is evaluated against.
type Snapshot struct {
	Therapist *domain.Therapist
	Rules     []*domain.WeeklyAvailabilityRule
	Blocks    []*domain.BlockedInterval
	Bookings  []*domain.Booking
}

// Query carries the per-request parameters.
type Query struct {
	DurationMinutes int
	Location        *time.Location
	Now             time.Time
}

// BookingWindow returns the absolute bookable horizon:
// [now + minBookingNotice hours, now + advanceBookingDays days].
func BookingWindow(t *domain.Therapist, now time.Time) (time.Time, time.Time) {
	windowStart := now.Add(t.NoticeDuration())
	windowEnd := now.AddDate(0, 0, t.AdvanceBookingDays)
	return windowStart, windowEnd
}

// AvailableDates walks every local calendar day in the bookable horizon and
// returns, in ascending order, the days holding at least one free slot of the
// requested duration.
func AvailableDates(snap Snapshot, q Query) []civil.Date {
	dates := make([]civil.Date, 0)
	if !snap.Therapist.IsBookable() || q.DurationMinutes <= 0 {
		return dates
	}

	loc := location(q)
	windowStart, windowEnd := BookingWindow(snap.Therapist, q.Now)
	if !windowStart.Before(windowEnd) {
		return dates
	}

	firstDate := LocalDate(windowStart, loc)
	lastDate := LocalDate(windowEnd, loc)

	for date := firstDate; !date.After(lastDate); date = date.AddDays(1) {
		rules := rulesForDay(snap.Rules, Weekday(date))
		if len(rules) == 0 {
			continue
		}

		d := newDay(snap, date, loc, windowStart, snap.Bookings)
		if d.allDayBlocked {
			continue
		}

		if d.hasOpening(rules, q.DurationMinutes) {
			dates = append(dates, date)
		}
	}

	return dates
}

// DaySlots returns every grid position on date for the requested duration,
// each flagged available or not, sorted by start instant.
// Positions produced by overlapping rules are kept as duplicates.
func DaySlots(snap Snapshot, date civil.Date, q Query) []domain.Slot {
	slots := make([]domain.Slot, 0)
	if !snap.Therapist.IsBookable() || q.DurationMinutes <= 0 {
		return slots
	}

	rules := rulesForDay(snap.Rules, Weekday(date))
	if len(rules) == 0 {
		return slots
	}

	loc := location(q)
	windowStart, _ := BookingWindow(snap.Therapist, q.Now)
	d := newDay(snap, date, loc, windowStart, BookingsOnDate(snap.Bookings, date, loc))

	for _, rule := range rules {
		d.eachCandidate(rule, q.DurationMinutes, func(start, end time.Time) bool {
			slots = append(slots, domain.Slot{
				Start:          start,
				End:            end,
				StartFormatted: FormatLocal(start, loc),
				EndFormatted:   FormatLocal(end, loc),
				Available:      d.isFree(start, end),
			})
			return true
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots
}

// BookingsOnDate keeps the confirmed bookings whose start falls on date in loc.
func BookingsOnDate(bookings []*domain.Booking, date civil.Date, loc *time.Location) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.OccupiesCalendar() && LocalDate(b.StartDatetime, loc) == date {
			result = append(result, b)
		}
	}
	return result
}

// ConflictsWithBookings reports whether [start, end) collides with the buffered
// window of any confirmed booking, whatever local date the booking starts on.
// Reservations use it on top of DaySlots so a session running past local
// midnight still occupies the next day.
func ConflictsWithBookings(t *domain.Therapist, bookings []*domain.Booking, start, end time.Time) bool {
	buffer := t.BufferDuration()
	for _, b := range bookings {
		if !b.OccupiesCalendar() {
			continue
		}
		obsStart, obsEnd := b.OccupiedWindow(buffer)
		if (Interval{Start: obsStart, End: obsEnd}).Conflicts(start, end) {
			return true
		}
	}
	return false
}

// day is the per-date evaluation context shared by both queries.
type day struct {
	date          civil.Date
	loc           *time.Location
	notBefore     time.Time
	allDayBlocked bool
	obstructions  []Interval
}

func newDay(snap Snapshot, date civil.Date, loc *time.Location, notBefore time.Time, bookings []*domain.Booking) *day {
	d := &day{
		date:      date,
		loc:       loc,
		notBefore: notBefore,
	}

	for _, b := range snap.Blocks {
		if b.IsAllDay {
			first, last := blockDates(b, loc)
			if !date.Before(first) && !date.After(last) {
				d.allDayBlocked = true
			}
			continue
		}
		d.obstructions = append(d.obstructions, Interval{Start: b.StartDatetime, End: b.EndDatetime})
	}

	buffer := snap.Therapist.BufferDuration()
	for _, b := range bookings {
		if !b.OccupiesCalendar() {
			continue
		}
		start, end := b.OccupiedWindow(buffer)
		d.obstructions = append(d.obstructions, Interval{Start: start, End: end})
	}

	return d
}

// eachCandidate walks the fixed-stride grid of one rule. A slot ending exactly
// at the rule's end time is included. fn returning false stops the walk.
func (d *day) eachCandidate(rule *domain.WeeklyAvailabilityRule, durationMinutes int, fn func(start, end time.Time) bool) {
	startMin := rule.StartTime.Minutes()
	endMin := rule.EndTime.Minutes()

	for m := startMin; m+durationMinutes <= endMin; m += domain.SlotStrideMinutes {
		start := WallClockToInstant(d.date, m, d.loc)
		end := WallClockToInstant(d.date, m+durationMinutes, d.loc)
		if !fn(start, end) {
			return
		}
	}
}

func (d *day) isFree(start, end time.Time) bool {
	if !start.After(d.notBefore) {
		return false
	}
	if d.allDayBlocked {
		return false
	}
	return !conflictsAny(start, end, d.obstructions)
}

func (d *day) hasOpening(rules []*domain.WeeklyAvailabilityRule, durationMinutes int) bool {
	found := false
	for _, rule := range rules {
		d.eachCandidate(rule, durationMinutes, func(start, end time.Time) bool {
			if d.isFree(start, end) {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

// rulesForDay keeps the active rules for weekday. Malformed rows (inverted or
// unparsable times) are skipped rather than producing an empty grid walk.
func rulesForDay(rules []*domain.WeeklyAvailabilityRule, weekday time.Weekday) []*domain.WeeklyAvailabilityRule {
	result := make([]*domain.WeeklyAvailabilityRule, 0, len(rules))
	for _, r := range rules {
		if r.AppliesTo(weekday) && r.IsValid() {
			result = append(result, r)
		}
	}
	return result
}

// Weekday returns the day of the week of a calendar date.
func Weekday(date civil.Date) time.Weekday {
	return date.In(time.UTC).Weekday()
}

func location(q Query) *time.Location {
	if q.Location == nil {
		return time.UTC
	}
	return q.Location
}
