package blocked

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TherapyBookingService/internal/domain"
	"github.com/m04kA/TherapyBookingService/pkg/dbmetrics"
	"github.com/m04kA/TherapyBookingService/pkg/psqlbuilder"
)

// Repository reads ad-hoc blocked intervals
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByTherapist returns every blocked interval of the therapist ordered by start
func (r *Repository) FindByTherapist(ctx context.Context, therapistID int64) ([]*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"therapist_id",
		"start_datetime",
		"end_datetime",
		"is_all_day",
		"reason",
		"created_at",
		"updated_at",
	).
		From("blocked_intervals").
		Where(squirrel.Eq{"therapist_id": therapistID}).
		OrderBy("start_datetime ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByTherapist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByTherapist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedInterval, 0)
	for rows.Next() {
		var b domain.BlockedInterval
		var reason sql.NullString
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&b.ID,
			&b.TherapistID,
			&b.StartDatetime,
			&b.EndDatetime,
			&b.IsAllDay,
			&reason,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: FindByTherapist - scan row: %v", ErrScanRow, err)
		}

		if reason.Valid {
			b.Reason = &reason.String
		}
		b.StartDatetime = b.StartDatetime.UTC()
		b.EndDatetime = b.EndDatetime.UTC()
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindByTherapist - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
