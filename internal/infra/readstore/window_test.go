//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/infra/readstore"
	"mindcare-booking/internal/infra/repository/converter"
	"mindcare-booking/internal/usecase/queries"
	"mindcare-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

type stubDBTX struct {
	sql  string
	args []any
	row  pgx.Row
	qErr error
}

func (d *stubDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("read store must not write")
}

func (d *stubDBTX) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.sql, d.args = sql, args
	return nil, d.qErr
}

func (d *stubDBTX) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	d.sql, d.args = sql, args
	return d.row
}

// windowRow replays a converter row into the scan targets.
type windowRow struct {
	src converter.WindowRow
	err error
}

func (r windowRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	src := r.src.Dest()
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(src[i]).Elem())
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestWindowReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	w := builder.NewWindowBuilder().BuildReconstructed()

	testCases := []struct {
		name       string
		row        windowRow
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: window found", row: windowRow{src: converter.WindowToInfra(w)}},
		{name: "error: window not found", row: windowRow{err: pgx.ErrNoRows}, expectKind: infra.KindNotFound},
		{name: "error: database error", row: windowRow{err: errDBConnectionLost}, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := &stubDBTX{row: tc.row}
			store := readstore.NewWindowReadStore(db, discardLogger())

			got, err := store.FindByID(ctx, w.ID())

			assert.Contains(t, db.sql, "deleted_at IS NULL")
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, w.ID(), got.ID)
			assert.Equal(t, w.ProfessionalID(), got.ProfessionalID)
			assert.Equal(t, w.Date(), got.Date)
			assert.Equal(t, w.Start(), got.StartTime)
			assert.Equal(t, w.End(), got.EndTime)
			assert.Equal(t, w.PriceCents(), got.PriceCents)
		})
	}
}

// =============================================================================
// ListByProfessional Tests
// =============================================================================

func TestWindowReadStore_ListByProfessional(t *testing.T) {
	ctx := context.Background()
	from, err := availability.ParseDate("2031-03-01")
	require.NoError(t, err)
	to, err := availability.ParseDate("2031-03-31")
	require.NoError(t, err)

	t.Run("date range narrows the query", func(t *testing.T) {
		db := &stubDBTX{qErr: errDBConnectionLost}
		store := readstore.NewWindowReadStore(db, discardLogger())
		professionalID := uuid.New()

		_, err := store.ListByProfessional(ctx, professionalID, queries.WindowFilter{From: &from, To: &to})

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Contains(t, db.sql, "date >= $2")
		assert.Contains(t, db.sql, "date <= $3")
		assert.Contains(t, db.sql, "ORDER BY date, start_time")
		assert.Equal(t, professionalID.String(), db.args[0])
	})

	t.Run("no filter", func(t *testing.T) {
		db := &stubDBTX{qErr: errDBConnectionLost}
		store := readstore.NewWindowReadStore(db, discardLogger())

		_, _ = store.ListByProfessional(ctx, uuid.New(), queries.WindowFilter{})

		assert.NotContains(t, db.sql, "date >=")
		assert.Len(t, db.args, 1)
	})
}
