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
)

type ConsultationReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewConsultationReadStore(dbtx db.DBTX, logger *slog.Logger) *ConsultationReadStore {
	return &ConsultationReadStore{db: dbtx, logger: logger}
}

func (s *ConsultationReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.ConsultationView, error) {
	query, args, err := psql.Select(converter.ConsultationColumns...).
		From("consultations").
		Where(sq.Eq{"reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build consultation query", err)
	}

	var r converter.ConsultationRow
	if err := s.db.QueryRow(ctx, query, args...).Scan(r.Dest()...); err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to find consultation", err)
	}

	at, err := pgconv.TimeOfDayFromPgtype(r.Time)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "invalid consultation time", err)
	}
	return &queries.ConsultationView{
		ID:              r.ID,
		ReservationID:   r.ReservationID,
		Date:            pgconv.DateFromPgtype(r.Date),
		Time:            at,
		DurationMinutes: int(r.DurationMinutes),
		PriceCents:      r.PriceCents,
		VideoLink:       r.VideoLink,
		Status:          r.Status,
		CreatedAt:       pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(r.UpdatedAt),
	}, nil
}
