package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Rollback rolls back a transaction. Safe to defer after a successful commit,
// where the rollback is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) {
	_ = tx.Rollback(ctx)
}

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// helpers below work both inside and outside an explicit transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// nextSequence allocates the next value of a named counter atomically. The
// first allocation in a scope seeds the counter from the supplied value (the
// highest suffix found among pre-existing rows); after that the upsert
// increments under row lock, so concurrent allocations can never hand out
// the same number.
func nextSequence(ctx context.Context, q querier, scopeKey string, seed int64) (int64, error) {
	query := `
		INSERT INTO code_sequences (scope_key, next_value)
		VALUES ($1, $2 + 1)
		ON CONFLICT (scope_key)
		DO UPDATE SET next_value = code_sequences.next_value + 1
		RETURNING next_value;
	`
	var next int64
	if err := q.QueryRow(ctx, query, scopeKey, seed).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to allocate sequence %s: %w", scopeKey, err)
	}
	return next, nil
}

// lastValue runs a single-row, single-column text query and returns the empty
// string when no row matches. Used to seed counters from legacy data.
func lastValue(ctx context.Context, q querier, query string, args ...any) (string, error) {
	var v *string
	err := q.QueryRow(ctx, query, args...).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
