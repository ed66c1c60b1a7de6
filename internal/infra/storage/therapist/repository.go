package therapist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TherapyBookingService/internal/domain"
	"github.com/m04kA/TherapyBookingService/pkg/dbmetrics"
	"github.com/m04kA/TherapyBookingService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"slug",
	"default_session_duration",
	"buffer_time",
	"advance_booking_days",
	"min_booking_notice",
	"is_active",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository reads therapist profiles
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActiveBySlug returns the active, non-deleted therapist with the given slug
func (r *Repository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Therapist, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("therapists").
		Where(squirrel.Eq{"slug": slug}).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Eq{"deleted_at": nil}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlug - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, "FindActiveBySlug", query, args...)
}

// GetByID returns a therapist regardless of status
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Therapist, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("therapists").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, "GetByID", query, args...)
}

func (r *Repository) queryOne(ctx context.Context, method, query string, args ...interface{}) (*domain.Therapist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var t domain.Therapist
	var deletedAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.DefaultSessionDuration,
		&t.BufferTime,
		&t.AdvanceBookingDays,
		&t.MinBookingNotice,
		&t.IsActive,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTherapistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan therapist: %v", ErrScanRow, method, err)
	}

	if deletedAt.Valid {
		t.DeletedAt = &deletedAt.Time
	}
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
