package readstore

import (
	"context"
	"log/slog"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/infra/db"
	"mindcare-booking/internal/pkg/pgconv"
	"mindcare-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var reservationViewColumns = []string{
	"r.id", "r.availability_window_id", "r.client_id", "w.professional_id", "w.date",
	"r.requested_time", "r.status", "r.price_cents", "r.payment_ref", "r.created_at", "r.updated_at",
}

type ReservationReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewReservationReadStore(dbtx db.DBTX, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx, logger: logger}
}

// Deleted windows stay joinable so reservation history keeps its date.
func (s *ReservationReadStore) base() sq.SelectBuilder {
	return psql.Select(reservationViewColumns...).
		From("reservations r").
		Join("availability_windows w ON w.id = r.availability_window_id")
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query, args, err := s.base().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build reservation query", err)
	}

	v, err := scanReservationView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to find reservation by ID", err)
	}
	return v, nil
}

func (s *ReservationReadStore) ListByClient(ctx context.Context, clientID uuid.UUID, page queries.Page) ([]*queries.ReservationView, error) {
	return s.list(ctx, s.base().Where(sq.Eq{"r.client_id": clientID}), page)
}

func (s *ReservationReadStore) ListByProfessional(ctx context.Context, professionalID uuid.UUID, page queries.Page) ([]*queries.ReservationView, error) {
	return s.list(ctx, s.base().Where(sq.Eq{"w.professional_id": professionalID}), page)
}

func (s *ReservationReadStore) ListAll(ctx context.Context, page queries.Page) ([]*queries.ReservationView, error) {
	return s.list(ctx, s.base(), page)
}

func (s *ReservationReadStore) list(ctx context.Context, b sq.SelectBuilder, page queries.Page) ([]*queries.ReservationView, error) {
	if page.AfterCreated != nil {
		b = b.Where(sq.Expr("(r.created_at, r.id) < (?, ?)", pgconv.TimeToPgtype(*page.AfterCreated), page.AfterID))
	}
	query, args, err := b.OrderBy("r.created_at DESC", "r.id DESC").
		Limit(uint64(page.Limit)). // #nosec G115 -- bounded by queries.MaxListLimit
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build reservation list query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to list reservations", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		v, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapPgErr(s.logger, "failed to scan reservation", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to iterate reservations", err)
	}
	return result, nil
}

func (s *ReservationReadStore) HeldTimes(ctx context.Context, windowID uuid.UUID) ([]availability.TimeOfDay, error) {
	statuses := make([]string, len(reservation.SlotHoldingStatuses))
	for i, st := range reservation.SlotHoldingStatuses {
		statuses[i] = st.String()
	}

	query, args, err := psql.Select("requested_time").
		From("reservations").
		Where(sq.Eq{"availability_window_id": windowID, "status": statuses}).
		OrderBy("requested_time").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build held times query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to list held times", err)
	}
	defer rows.Close()

	var result []availability.TimeOfDay
	for rows.Next() {
		var pt pgtype.Time
		if err := rows.Scan(&pt); err != nil {
			return nil, infra.WrapPgErr(s.logger, "failed to scan held time", err)
		}
		t, err := pgconv.TimeOfDayFromPgtype(pt)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "invalid held time", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to iterate held times", err)
	}
	return result, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v             queries.ReservationView
		date          pgtype.Date
		requestedTime pgtype.Time
		paymentRef    pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.WindowID, &v.ClientID, &v.ProfessionalID, &date,
		&requestedTime, &v.Status, &v.PriceCents, &paymentRef, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	at, err := pgconv.TimeOfDayFromPgtype(requestedTime)
	if err != nil {
		return nil, err
	}
	v.Date = pgconv.DateFromPgtype(date)
	v.RequestedTime = at
	v.PaymentRef = pgconv.StringPtrFromPgtype(paymentRef)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
