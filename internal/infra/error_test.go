//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"mindcare-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPgErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, infra.KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"foreign key", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"serialization", &pgconn.PgError{Code: "40001"}, infra.KindSerialization},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, infra.KindSerialization},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, infra.KindDBFailure},
		{"non-pg error", errors.New("dial tcp: refused"), infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.ClassifyPgErr(tt.err))
		})
	}
}

func TestWrapPgErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_reservations_active_slot"}

	err := infra.WrapPgErr(logger, "insert reservation", pgErr)

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
	assert.Contains(t, err.Error(), "DUPLICATE_KEY: insert reservation")

	var unwrapped *pgconn.PgError
	require.True(t, errors.As(err, &unwrapped))
	assert.Equal(t, "uq_reservations_active_slot", unwrapped.ConstraintName)
}
