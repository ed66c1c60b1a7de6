// Package txmanager runs callbacks inside database transactions carried through context.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/TherapyBookingService/pkg/dbmetrics"
)

// DefaultMaxRetries bounds DoSerializable retries after a serialization failure
const DefaultMaxRetries = 3

var (
	// ErrBeginTx is returned when a transaction cannot be started
	ErrBeginTx = errors.New("txmanager: begin transaction")

	// ErrCommitTx is returned when commit fails
	ErrCommitTx = errors.New("txmanager: commit transaction")

	// ErrSerializationFailure is returned when every serializable attempt conflicted
	ErrSerializationFailure = errors.New("txmanager: serialization failure")
)

// TxBeginner is satisfied by *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// RetryObserver is notified before a serializable transaction is retried
type RetryObserver interface {
	TxRetry(isolation string)
}

// Manager opens transactions and stores them in the callback's context
type Manager struct {
	db         TxBeginner
	maxRetries int
	observer   RetryObserver
}

// Option configures a Manager
type Option func(*Manager)

// WithMaxRetries overrides DefaultMaxRetries
func WithMaxRetries(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.maxRetries = n
		}
	}
}

// WithRetryObserver reports retries, typically to Prometheus
func WithRetryObserver(o RetryObserver) Option {
	return func(m *Manager) {
		m.observer = o
	}
}

// NewTransactionManager creates a Manager on top of db
func NewTransactionManager(db TxBeginner, opts ...Option) *Manager {
	m := &Manager{db: db, maxRetries: DefaultMaxRetries}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do runs fn in a READ COMMITTED transaction
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable runs fn in a SERIALIZABLE transaction and retries it when
// PostgreSQL reports a serialization failure (SQLSTATE 40001).
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 && m.observer != nil {
			m.observer.TxRetry("serializable")
		}

		err = m.run(ctx, opts, fn)
		if !IsSerializationFailure(err) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return fmt.Errorf("%w: after %d attempts: %v", ErrSerializationFailure, m.maxRetries+1, err)
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Nested calls join the outer transaction.
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		if IsSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// IsSerializationFailure reports whether err carries SQLSTATE 40001
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001"
	}
	return false
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
