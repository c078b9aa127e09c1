package repository

import (
	"context"
	"log/slog"

	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/infra/db"
	"mindcare-booking/internal/infra/repository/converter"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const consultationsTable = "consultations"

type ConsultationRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewConsultationRepository(dbtx db.DBTX, logger *slog.Logger) *ConsultationRepository {
	return &ConsultationRepository{db: dbtx, logger: logger}
}

func (r *ConsultationRepository) Create(ctx context.Context, c *consultation.Consultation) error {
	row := converter.ConsultationToInfra(c)
	query, args, err := psql.Insert(consultationsTable).
		Columns(converter.ConsultationColumns...).
		Values(row.Values()...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build consultation insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapPgErr(r.logger, "failed to create consultation", err)
	}
	return nil
}

// Update writes the mutable columns only.
func (r *ConsultationRepository) Update(ctx context.Context, c *consultation.Consultation) error {
	row := converter.ConsultationToInfra(c)
	query, args, err := psql.Update(consultationsTable).
		Set("video_link", row.VideoLink).
		Set("status", row.Status).
		Set("updated_at", row.UpdatedAt).
		Where(sq.Eq{"id": row.ID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build consultation update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update consultation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "consultation not found", nil)
	}
	return nil
}

func (r *ConsultationRepository) FindByReservationIDForUpdate(ctx context.Context, reservationID uuid.UUID) (*consultation.Consultation, error) {
	query, args, err := psql.Select(converter.ConsultationColumns...).
		From(consultationsTable).
		Where(sq.Eq{"reservation_id": reservationID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build consultation select", err)
	}

	var row converter.ConsultationRow
	if err := r.db.QueryRow(ctx, query, args...).Scan(row.Dest()...); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find consultation", err)
	}

	c, err := converter.ConsultationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert consultation row", err)
	}
	return c, nil
}
