package repository

import (
	"context"
	"log/slog"

	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/infra/db"
	"mindcare-booking/internal/infra/repository/converter"
	"mindcare-booking/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const reservationsTable = "reservations"

type ReservationRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewReservationRepository(dbtx db.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{db: dbtx, logger: logger}
}

func slotHoldingStatuses() []string {
	out := make([]string, len(reservation.SlotHoldingStatuses))
	for i, s := range reservation.SlotHoldingStatuses {
		out[i] = s.String()
	}
	return out
}

// Create relies on the partial unique index to reject a second slot-holding
// row for the same sub-slot; that surfaces as KindDuplicateKey.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	row := converter.ReservationToInfra(res)
	query, args, err := psql.Insert(reservationsTable).
		Columns(converter.ReservationColumns...).
		Values(row.Values()...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build reservation insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapPgErr(r.logger, "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	query, args, err := psql.Update(reservationsTable).
		Set("status", res.Status().String()).
		Set("payment_ref", pgconv.OptionalText(res.PaymentRef())).
		Set("updated_at", pgconv.TimeToPgtype(res.UpdatedAt())).
		Where(sq.Eq{"id": res.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build reservation update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query, args, err := psql.Select(converter.ReservationColumns...).
		From(reservationsTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build reservation select", err)
	}

	var row converter.ReservationRow
	if err := r.db.QueryRow(ctx, query, args...).Scan(row.Dest()...); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservation row", err)
	}
	return res, nil
}

func (r *ReservationRepository) ListSlotHolding(ctx context.Context, windowID uuid.UUID) ([]*reservation.Reservation, error) {
	query, args, err := psql.Select(converter.ReservationColumns...).
		From(reservationsTable).
		Where(sq.Eq{"availability_window_id": windowID, "status": slotHoldingStatuses()}).
		OrderBy("requested_time").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build reservation list", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list slot-holding reservations", err)
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		var row converter.ReservationRow
		if err := rows.Scan(row.Dest()...); err != nil {
			return nil, infra.WrapPgErr(r.logger, "failed to scan reservation", err)
		}
		res, err := converter.ReservationToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservation row", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to iterate reservations", err)
	}
	return out, nil
}

func (r *ReservationRepository) CountSlotHolding(ctx context.Context, windowID uuid.UUID) (int, error) {
	query, args, err := psql.Select("count(*)").
		From(reservationsTable).
		Where(sq.Eq{"availability_window_id": windowID, "status": slotHoldingStatuses()}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build reservation count", err)
	}

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to count slot-holding reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) CountByWindow(ctx context.Context, windowID uuid.UUID) (int, error) {
	query, args, err := psql.Select("count(*)").
		From(reservationsTable).
		Where(sq.Eq{"availability_window_id": windowID}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build reservation count", err)
	}

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to count window reservations", err)
	}
	return n, nil
}
