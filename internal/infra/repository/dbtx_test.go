//go:build unit

package repository_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type call struct {
	sql  string
	args []any
}

// fakeDBTX records statements and answers with canned results.
type fakeDBTX struct {
	calls   []call
	tag     pgconn.CommandTag
	execErr error
	row     pgx.Row
}

func (f *fakeDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, call{sql, args})
	return f.tag, f.execErr
}

func (f *fakeDBTX) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, call{sql, args})
	return nil, pgx.ErrTxClosed
}

func (f *fakeDBTX) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, call{sql, args})
	return f.row
}

func (f *fakeDBTX) last() call {
	return f.calls[len(f.calls)-1]
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type intRow struct{ n int }

func (r intRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.n
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
