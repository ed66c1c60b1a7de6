package availability

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TherapyBookingService/internal/domain"
	"github.com/m04kA/TherapyBookingService/pkg/types"
)

// Wednesday 2026-10-14 08:00 UTC
var testNow = time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

var nextMonday = civil.Date{Year: 2026, Month: time.October, Day: 19}

func newTherapist() *domain.Therapist {
	return &domain.Therapist{
		ID:                     1,
		Name:                   "Dr. Ada Example",
		Slug:                   "ada-example",
		DefaultSessionDuration: 60,
		BufferTime:             0,
		AdvanceBookingDays:     7,
		MinBookingNotice:       0,
		IsActive:               true,
	}
}

func rule(day time.Weekday, start, end string) *domain.WeeklyAvailabilityRule {
	return &domain.WeeklyAvailabilityRule{
		TherapistID: 1,
		DayOfWeek:   int(day),
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		IsActive:    true,
	}
}

func confirmed(start, end time.Time) *domain.Booking {
	return &domain.Booking{
		TherapistID:   1,
		StartDatetime: start,
		EndDatetime:   end,
		Status:        domain.StatusConfirmed,
	}
}

func at(date civil.Date, hour, minute int) time.Time {
	return time.Date(date.Year, date.Month, date.Day, hour, minute, 0, 0, time.UTC)
}

func query(duration int) Query {
	return Query{DurationMinutes: duration, Location: time.UTC, Now: testNow}
}

func startsOf(slots []domain.Slot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.Start.Format("15:04")
	}
	return result
}

func availableStarts(slots []domain.Slot) []string {
	result := make([]string, 0)
	for _, s := range slots {
		if s.Available {
			result = append(result, s.Start.Format("15:04"))
		}
	}
	return result
}

func TestDaySlots_MondayMorningGrid(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
	}

	slots := DaySlots(snap, nextMonday, query(60))

	require.Len(t, slots, 5)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, startsOf(slots))
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be available", s.StartFormatted)
		assert.Equal(t, time.Hour, s.Duration())
	}
	assert.Equal(t, "9:00 AM", slots[0].StartFormatted)
	assert.Equal(t, "10:00 AM", slots[0].EndFormatted)
	assert.Equal(t, "12:00 PM", slots[4].EndFormatted)
}

func TestDaySlots_ConfirmedBookingConflict(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
		Bookings:  []*domain.Booking{confirmed(at(nextMonday, 10, 0), at(nextMonday, 11, 0))},
	}

	slots := DaySlots(snap, nextMonday, query(60))

	require.Len(t, slots, 5)
	assert.Equal(t, []string{"09:00", "11:00"}, availableStarts(slots))
}

func TestDaySlots_BufferDilation(t *testing.T) {
	therapist := newTherapist()
	therapist.BufferTime = 15

	snap := Snapshot{
		Therapist: therapist,
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:15", "12:15")},
		Bookings:  []*domain.Booking{confirmed(at(nextMonday, 10, 0), at(nextMonday, 11, 0))},
	}

	slots := DaySlots(snap, nextMonday, query(30))

	byStart := make(map[string]bool)
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s.Available
	}
	assert.True(t, byStart["09:15"], "09:15-09:45 touches the dilated start and stays free")
	assert.False(t, byStart["09:45"], "09:45 falls inside [09:45, 11:15)")
	assert.False(t, byStart["10:45"])
	assert.True(t, byStart["11:15"], "11:15 starts exactly at the dilated end")
}

func TestDaySlots_IgnoresNonConfirmedBookings(t *testing.T) {
	statuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusCancelled,
		domain.StatusCompleted,
		domain.StatusNoShow,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			booking := confirmed(at(nextMonday, 10, 0), at(nextMonday, 11, 0))
			booking.Status = status

			snap := Snapshot{
				Therapist: newTherapist(),
				Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
				Bookings:  []*domain.Booking{booking},
			}

			slots := DaySlots(snap, nextMonday, query(60))
			assert.Len(t, availableStarts(slots), 5)
		})
	}
}

func TestDaySlots_NoticeBoundary(t *testing.T) {
	therapist := newTherapist()
	therapist.MinBookingNotice = 2

	snap := Snapshot{
		Therapist: therapist,
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
	}

	t.Run("start equal to notice is excluded", func(t *testing.T) {
		q := query(60)
		q.Now = at(nextMonday, 7, 0)

		slots := DaySlots(snap, nextMonday, q)
		require.Len(t, slots, 5)
		assert.False(t, slots[0].Available)
		assert.True(t, slots[1].Available)
	})

	t.Run("start one microsecond after notice is included", func(t *testing.T) {
		q := query(60)
		q.Now = at(nextMonday, 7, 0).Add(-time.Microsecond)

		slots := DaySlots(snap, nextMonday, q)
		require.Len(t, slots, 5)
		assert.True(t, slots[0].Available)
	})
}

func TestDaySlots_PartialBlock(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
		Blocks: []*domain.BlockedInterval{{
			TherapistID:   1,
			StartDatetime: at(nextMonday, 10, 0),
			EndDatetime:   at(nextMonday, 10, 30),
		}},
	}

	slots := DaySlots(snap, nextMonday, query(60))

	assert.Equal(t, []string{"09:00", "10:30", "11:00"}, availableStarts(slots))
}

func TestDaySlots_AllDayBlockMarksEverySlot(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
		Blocks: []*domain.BlockedInterval{{
			TherapistID:   1,
			StartDatetime: at(nextMonday, 0, 0),
			EndDatetime:   at(nextMonday, 23, 59),
			IsAllDay:      true,
		}},
	}

	slots := DaySlots(snap, nextMonday, query(60))

	require.Len(t, slots, 5)
	assert.Empty(t, availableStarts(slots))
}

func TestDaySlots_NoRuleForWeekday(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules: []*domain.WeeklyAvailabilityRule{
			rule(time.Tuesday, "09:00", "12:00"),
			{TherapistID: 1, DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "12:00", IsActive: false},
		},
	}

	slots := DaySlots(snap, nextMonday, query(60))

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestDaySlots_SkipsInvalidRules(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules: []*domain.WeeklyAvailabilityRule{
			rule(time.Monday, "12:00", "09:00"),
			rule(time.Monday, "25:00", "26:00"),
			rule(time.Monday, "14:00", "15:00"),
		},
	}

	slots := DaySlots(snap, nextMonday, query(60))

	assert.Equal(t, []string{"14:00"}, startsOf(slots))
}

func TestAvailableDates_InvalidRulesOnlyYieldNothing(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules: []*domain.WeeklyAvailabilityRule{
			rule(time.Monday, "12:00", "12:00"),
			rule(time.Tuesday, "bad", "10:00"),
		},
	}

	dates := AvailableDates(snap, query(60))

	assert.Empty(t, dates)
}

func TestDaySlots_OverlappingRulesKeepDuplicates(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules: []*domain.WeeklyAvailabilityRule{
			rule(time.Monday, "10:00", "12:00"),
			rule(time.Monday, "09:00", "11:00"),
		},
	}

	slots := DaySlots(snap, nextMonday, query(60))

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:00", "10:30", "11:00"}, startsOf(slots))
}

func TestDaySlots_InactiveTherapist(t *testing.T) {
	therapist := newTherapist()
	therapist.IsActive = false

	snap := Snapshot{
		Therapist: therapist,
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
	}

	assert.Empty(t, DaySlots(snap, nextMonday, query(60)))
	assert.Empty(t, AvailableDates(snap, query(60)))

	deletedAt := testNow
	therapist.IsActive = true
	therapist.DeletedAt = &deletedAt
	assert.Empty(t, AvailableDates(snap, query(60)))
}

func TestDaySlots_MonotonicInDuration(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules: []*domain.WeeklyAvailabilityRule{
			rule(time.Monday, "08:00", "13:00"),
			rule(time.Monday, "14:00", "18:00"),
		},
		Bookings: []*domain.Booking{
			confirmed(at(nextMonday, 10, 0), at(nextMonday, 10, 30)),
			confirmed(at(nextMonday, 15, 0), at(nextMonday, 16, 0)),
		},
	}

	previous := -1
	for _, duration := range []int{30, 45, 60, 90, 120, 180} {
		count := len(availableStarts(DaySlots(snap, nextMonday, query(duration))))
		if previous >= 0 {
			assert.LessOrEqual(t, count, previous, "duration %d", duration)
		}
		previous = count
	}
}

func TestDaySlots_SlotContainingBookingIsTaken(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
		Bookings:  []*domain.Booking{confirmed(at(nextMonday, 9, 30), at(nextMonday, 10, 0))},
	}

	slots := DaySlots(snap, nextMonday, query(90))

	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
	assert.False(t, slots[0].Available)
}

func TestDaySlots_Idempotent(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
		Bookings:  []*domain.Booking{confirmed(at(nextMonday, 10, 0), at(nextMonday, 11, 0))},
	}

	assert.Equal(t, DaySlots(snap, nextMonday, query(60)), DaySlots(snap, nextMonday, query(60)))
	assert.Equal(t, AvailableDates(snap, query(60)), AvailableDates(snap, query(60)))
}

func TestDaySlots_TimezoneConversion(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "10:00")},
	}

	slots := DaySlots(snap, nextMonday, Query{DurationMinutes: 60, Location: tokyo, Now: testNow})

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, slots[0].Start.Location())
	assert.Equal(t, "9:00 AM", slots[0].StartFormatted)
}

func TestDaySlots_BookingsFilteredByLocalDate(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "12:00")},
		Bookings: []*domain.Booking{
			confirmed(at(nextMonday.AddDays(1), 10, 0), at(nextMonday.AddDays(1), 11, 0)),
		},
	}

	slots := DaySlots(snap, nextMonday, query(60))
	assert.Len(t, availableStarts(slots), 5)
}

func TestConflictsWithBookings_AcrossLocalMidnight(t *testing.T) {
	sunday := nextMonday.AddDays(-1)
	overnight := confirmed(at(sunday, 23, 30), at(nextMonday, 0, 30))
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "00:00", "01:00")},
		Bookings:  []*domain.Booking{overnight},
	}

	// the day grid only sees bookings starting on the date
	assert.Equal(t, []string{"00:00"}, availableStarts(DaySlots(snap, nextMonday, query(60))))

	start := at(nextMonday, 0, 0)
	assert.True(t, ConflictsWithBookings(snap.Therapist, snap.Bookings, start, start.Add(time.Hour)))
	assert.False(t, ConflictsWithBookings(snap.Therapist, snap.Bookings, at(nextMonday, 0, 30), at(nextMonday, 1, 0)))
}

func TestConflictsWithBookings_BufferAndStatus(t *testing.T) {
	therapist := newTherapist()
	therapist.BufferTime = 15

	sunday := nextMonday.AddDays(-1)
	late := confirmed(at(sunday, 23, 0), at(sunday, 23, 50))
	start := at(nextMonday, 0, 0)

	assert.True(t, ConflictsWithBookings(therapist, []*domain.Booking{late}, start, start.Add(time.Hour)))

	late.Status = domain.StatusCancelled
	assert.False(t, ConflictsWithBookings(therapist, []*domain.Booking{late}, start, start.Add(time.Hour)))
}

func TestAvailableDates_HorizonBoundary(t *testing.T) {
	rules := make([]*domain.WeeklyAvailabilityRule, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		rules = append(rules, rule(d, "09:00", "17:00"))
	}
	snap := Snapshot{Therapist: newTherapist(), Rules: rules}

	dates := AvailableDates(snap, query(60))

	require.Len(t, dates, 8)
	assert.Equal(t, civil.Date{Year: 2026, Month: time.October, Day: 14}, dates[0])
	assert.Equal(t, civil.Date{Year: 2026, Month: time.October, Day: 21}, dates[7])
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]))
	}
}

func TestAvailableDates_AllDayBlockDominates(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules: []*domain.WeeklyAvailabilityRule{
			rule(time.Monday, "09:00", "12:00"),
			rule(time.Tuesday, "09:00", "12:00"),
		},
	}

	dates := AvailableDates(snap, query(60))
	assert.Equal(t, []civil.Date{nextMonday, nextMonday.AddDays(1)}, dates)

	snap.Blocks = []*domain.BlockedInterval{{
		TherapistID:   1,
		StartDatetime: at(nextMonday, 0, 0),
		EndDatetime:   at(nextMonday.AddDays(1), 0, 0),
		IsAllDay:      true,
	}}

	dates = AvailableDates(snap, query(60))
	assert.Equal(t, []civil.Date{nextMonday.AddDays(1)}, dates)
}

func TestAvailableDates_FullyBookedDaySkipped(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "11:00")},
		Bookings: []*domain.Booking{
			confirmed(at(nextMonday, 9, 0), at(nextMonday, 10, 0)),
			confirmed(at(nextMonday, 10, 0), at(nextMonday, 11, 0)),
		},
	}

	assert.Empty(t, AvailableDates(snap, query(60)))
	assert.Empty(t, AvailableDates(snap, query(30)))
}

func TestAvailableDates_OverlappingRulesYieldOneDate(t *testing.T) {
	snap := Snapshot{
		Therapist: newTherapist(),
		Rules: []*domain.WeeklyAvailabilityRule{
			rule(time.Monday, "09:00", "12:00"),
			rule(time.Monday, "10:00", "13:00"),
		},
	}

	assert.Equal(t, []civil.Date{nextMonday}, AvailableDates(snap, query(60)))
}

func TestAvailableDates_EmptyHorizon(t *testing.T) {
	t.Run("zero advance days", func(t *testing.T) {
		therapist := newTherapist()
		therapist.AdvanceBookingDays = 0
		snap := Snapshot{
			Therapist: therapist,
			Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Wednesday, "09:00", "17:00")},
		}

		dates := AvailableDates(snap, query(60))
		assert.NotNil(t, dates)
		assert.Empty(t, dates)
	})

	t.Run("notice beyond horizon", func(t *testing.T) {
		therapist := newTherapist()
		therapist.MinBookingNotice = 24 * 8
		snap := Snapshot{
			Therapist: therapist,
			Rules:     []*domain.WeeklyAvailabilityRule{rule(time.Monday, "09:00", "17:00")},
		}

		assert.Empty(t, AvailableDates(snap, query(60)))
	})
}

func TestAvailableDates_TimezoneShiftsFirstDay(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	therapist := newTherapist()
	therapist.AdvanceBookingDays = 1
	snap := Snapshot{
		Therapist: therapist,
		Rules: []*domain.WeeklyAvailabilityRule{
			rule(time.Monday, "09:00", "12:00"),
			rule(time.Tuesday, "09:00", "12:00"),
		},
	}

	// Sunday 23:30 UTC is already Monday 08:30 in Tokyo, so the local walk
	// runs Monday..Tuesday while the UTC walk runs Sunday..Monday.
	now := time.Date(2026, 10, 18, 23, 30, 0, 0, time.UTC)

	dates := AvailableDates(snap, Query{DurationMinutes: 60, Location: tokyo, Now: now})
	assert.Equal(t, []civil.Date{nextMonday, nextMonday.AddDays(1)}, dates)

	dates = AvailableDates(snap, Query{DurationMinutes: 60, Location: time.UTC, Now: now})
	assert.Equal(t, []civil.Date{nextMonday}, dates)
}
