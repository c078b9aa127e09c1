package readstore

import (
	"context"
	"log/slog"

	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/infra/db"
	"mindcare-booking/internal/infra/repository/converter"
	"mindcare-booking/internal/pkg/pgconv"
	"mindcare-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WindowReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewWindowReadStore(dbtx db.DBTX, logger *slog.Logger) *WindowReadStore {
	return &WindowReadStore{db: dbtx, logger: logger}
}

func (s *WindowReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WindowView, error) {
	query, args, err := psql.Select(converter.WindowColumns...).
		From("availability_windows").
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build window query", err)
	}

	v, err := scanWindowView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to find window by ID", err)
	}
	return v, nil
}

func (s *WindowReadStore) ListByProfessional(ctx context.Context, professionalID uuid.UUID, filter queries.WindowFilter) ([]*queries.WindowView, error) {
	b := psql.Select(converter.WindowColumns...).
		From("availability_windows").
		Where(sq.Eq{"professional_id": professionalID, "deleted_at": nil})
	if filter.From != nil {
		b = b.Where(sq.GtOrEq{"date": pgconv.DateToPgtype(*filter.From)})
	}
	if filter.To != nil {
		b = b.Where(sq.LtOrEq{"date": pgconv.DateToPgtype(*filter.To)})
	}
	query, args, err := b.OrderBy("date", "start_time").ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build window list query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to list windows", err)
	}
	defer rows.Close()

	result := make([]*queries.WindowView, 0)
	for rows.Next() {
		v, err := scanWindowView(rows)
		if err != nil {
			return nil, infra.WrapPgErr(s.logger, "failed to scan window", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to iterate windows", err)
	}
	return result, nil
}

func scanWindowView(row pgx.Row) (*queries.WindowView, error) {
	var r converter.WindowRow
	if err := row.Scan(r.Dest()...); err != nil {
		return nil, err
	}
	start, err := pgconv.TimeOfDayFromPgtype(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := pgconv.TimeOfDayFromPgtype(r.EndTime)
	if err != nil {
		return nil, err
	}
	return &queries.WindowView{
		ID:             r.ID,
		ProfessionalID: r.ProfessionalID,
		Date:           pgconv.DateFromPgtype(r.Date),
		StartTime:      start,
		EndTime:        end,
		PriceCents:     r.PriceCents,
		CreatedAt:      pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(r.UpdatedAt),
	}, nil
}
