package converter

import (
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var ReservationColumns = []string{
	"id", "availability_window_id", "client_id", "requested_time", "status", "price_cents", "payment_ref", "created_at", "updated_at",
}

type ReservationRow struct {
	ID            uuid.UUID
	WindowID      uuid.UUID
	ClientID      uuid.UUID
	RequestedTime pgtype.Time
	Status        string
	PriceCents    int64
	PaymentRef    pgtype.Text
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

// Dest lists scan targets in ReservationColumns order.
func (r *ReservationRow) Dest() []any {
	return []any{&r.ID, &r.WindowID, &r.ClientID, &r.RequestedTime, &r.Status, &r.PriceCents, &r.PaymentRef, &r.CreatedAt, &r.UpdatedAt}
}

func (r *ReservationRow) Values() []any {
	return []any{r.ID, r.WindowID, r.ClientID, r.RequestedTime, r.Status, r.PriceCents, r.PaymentRef, r.CreatedAt, r.UpdatedAt}
}

func ReservationToInfra(res *reservation.Reservation) ReservationRow {
	return ReservationRow{
		ID:            res.ID(),
		WindowID:      res.WindowID(),
		ClientID:      res.ClientID(),
		RequestedTime: pgconv.TimeOfDayToPgtype(res.RequestedTime()),
		Status:        res.Status().String(),
		PriceCents:    res.Price().Cents(),
		PaymentRef:    pgconv.OptionalText(res.PaymentRef()),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToDomain(r ReservationRow) (*reservation.Reservation, error) {
	at, err := pgconv.TimeOfDayFromPgtype(r.RequestedTime)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	price, err := reservation.NewMoney(r.PriceCents)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		r.ID,
		r.WindowID,
		r.ClientID,
		at,
		status,
		price,
		r.PaymentRef.String,
		pgconv.TimeFromPgtype(r.CreatedAt),
		pgconv.TimeFromPgtype(r.UpdatedAt),
	), nil
}
