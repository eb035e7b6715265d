package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// fakeQuerier records every statement and serves canned rows in order.
type fakeQuerier struct {
	queries []string
	args    [][]any
	rows    []fakeRow
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	row := f.rows[0]
	f.rows = f.rows[1:]
	return row
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch v := r.vals[i].(type) {
		case string:
			s := v
			*(d.(**string)) = &s
		case int64:
			*(d.(*int64)) = v
		case time.Time:
			*(d.(*time.Time)) = v
		}
	}
	return nil
}

var _ querier = (*fakeQuerier)(nil)

// Codes past USR999 widen to four digits and sort before USR2 as text, so the
// counter seed must come from the newest row by creation time, not from the
// textually greatest user_id.
func TestInsertUser_SeedsCounterFromNewestRow(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{
		{vals: []any{"USR1000"}},        // seed select
		{vals: []any{int64(1001)}},      // counter upsert
		{vals: []any{time.Now().UTC()}}, // insert returning created_at
	}}

	user, err := insertUser(context.Background(), q, 7, domain.UserProfile{Email: "admin@example.com", Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, "USR1001", user.UserID)

	require.Len(t, q.queries, 3)
	assert.Contains(t, q.queries[0], "ORDER BY created_at DESC")
	// the counter upsert receives the numeric suffix of the newest code
	require.Len(t, q.args[1], 2)
	assert.Equal(t, int64(1000), q.args[1][1])
}

func TestInsertUser_FirstUserStartsAtOne(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{
		{err: pgx.ErrNoRows},
		{vals: []any{int64(1)}},
		{vals: []any{time.Now().UTC()}},
	}}

	user, err := insertUser(context.Background(), q, 7, domain.UserProfile{Email: "admin@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "USR001", user.UserID)
	assert.Equal(t, int64(0), q.args[1][1])
}
