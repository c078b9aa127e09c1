package repository

import (
	"context"
	"log/slog"
	"time"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/infra/db"
	"mindcare-booking/internal/infra/repository/converter"
	"mindcare-booking/internal/pkg/pgconv"
	"mindcare-booking/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const windowsTable = "availability_windows"

type WindowRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewWindowRepository(dbtx db.DBTX, logger *slog.Logger) *WindowRepository {
	return &WindowRepository{db: dbtx, logger: logger}
}

func (r *WindowRepository) Create(ctx context.Context, w *availability.Window) error {
	row := converter.WindowToInfra(w)
	query, args, err := psql.Insert(windowsTable).
		Columns(converter.WindowColumns...).
		Values(row.Values()...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build window insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapPgErr(r.logger, "failed to create window", err)
	}
	return nil
}

func (r *WindowRepository) Update(ctx context.Context, w *availability.Window) error {
	row := converter.WindowToInfra(w)
	query, args, err := psql.Update(windowsTable).
		Set("date", row.Date).
		Set("start_time", row.StartTime).
		Set("end_time", row.EndTime).
		Set("price_cents", row.PriceCents).
		Set("updated_at", row.UpdatedAt).
		Where(sq.Eq{"id": row.ID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build window update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update window", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "window not found", nil)
	}
	return nil
}

func (r *WindowRepository) Delete(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := psql.Update(windowsTable).
		Set("deleted_at", pgconv.TimeToPgtype(at)).
		Set("updated_at", pgconv.TimeToPgtype(at)).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build window delete", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete window", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "window not found", nil)
	}
	return nil
}

func (r *WindowRepository) FindByID(ctx context.Context, id uuid.UUID, lock shared.LockMode) (*availability.Window, error) {
	b := psql.Select(converter.WindowColumns...).
		From(windowsTable).
		Where(sq.Eq{"id": id, "deleted_at": nil})
	query, args, err := lockSuffix(b, lock).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build window select", err)
	}

	var row converter.WindowRow
	if err := r.db.QueryRow(ctx, query, args...).Scan(row.Dest()...); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find window", err)
	}

	w, err := converter.WindowToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert window row", err)
	}
	return w, nil
}
