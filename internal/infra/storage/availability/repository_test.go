package availability

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TherapyBookingService/internal/domain"
	"github.com/m04kA/TherapyBookingService/pkg/types"
)

func TestFindWeeklyRules(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	monday := int(time.Monday)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM weekly_availability WHERE therapist_id = \$1 AND day_of_week = \$2 AND is_active = \$3 ORDER BY day_of_week ASC, start_time ASC`).
		WithArgs(int64(1), monday, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "therapist_id", "day_of_week", "start_time", "end_time", "is_active", "created_at", "updated_at"}).
			AddRow(int64(10), int64(1), monday, "09:00:00", "12:00:00", true, now, now))

	rules, err := NewRepository(db).FindWeeklyRules(context.Background(), domain.WeeklyRuleFilter{
		TherapistID: 1,
		DayOfWeek:   &monday,
		ActiveOnly:  true,
	})

	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, types.TimeString("09:00"), rules[0].StartTime)
	assert.Equal(t, types.TimeString("12:00"), rules[0].EndTime)
	assert.True(t, rules[0].AppliesTo(time.Monday))
	assert.NoError(t, mock.ExpectationsWereMet())
}
