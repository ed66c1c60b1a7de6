package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TherapyBookingService/internal/domain"
	"github.com/m04kA/TherapyBookingService/pkg/dbmetrics"
	"github.com/m04kA/TherapyBookingService/pkg/psqlbuilder"
)

// Repository reads recurring weekly availability rules
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindWeeklyRules returns the therapist's rules, optionally narrowed to one
// weekday and to active rules, ordered by day and start time.
func (r *Repository) FindWeeklyRules(ctx context.Context, filter domain.WeeklyRuleFilter) ([]*domain.WeeklyAvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"therapist_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("weekly_availability").
		Where(squirrel.Eq{"therapist_id": filter.TherapistID}).
		OrderBy("day_of_week ASC", "start_time ASC")

	if filter.DayOfWeek != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day_of_week": *filter.DayOfWeek})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindWeeklyRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindWeeklyRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.WeeklyAvailabilityRule, 0)
	for rows.Next() {
		var rule domain.WeeklyAvailabilityRule
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&rule.ID,
			&rule.TherapistID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: FindWeeklyRules - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindWeeklyRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
