package converter

import (
	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var ConsultationColumns = []string{
	"id", "reservation_id", "date", "time", "duration_minutes", "price_cents", "video_link", "status", "created_at", "updated_at",
}

type ConsultationRow struct {
	ID              uuid.UUID
	ReservationID   uuid.UUID
	Date            pgtype.Date
	Time            pgtype.Time
	DurationMinutes int32
	PriceCents      int64
	VideoLink       string
	Status          string
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

// Dest lists scan targets in ConsultationColumns order.
func (r *ConsultationRow) Dest() []any {
	return []any{&r.ID, &r.ReservationID, &r.Date, &r.Time, &r.DurationMinutes, &r.PriceCents, &r.VideoLink, &r.Status, &r.CreatedAt, &r.UpdatedAt}
}

func (r *ConsultationRow) Values() []any {
	return []any{r.ID, r.ReservationID, r.Date, r.Time, r.DurationMinutes, r.PriceCents, r.VideoLink, r.Status, r.CreatedAt, r.UpdatedAt}
}

func ConsultationToInfra(c *consultation.Consultation) ConsultationRow {
	return ConsultationRow{
		ID:              c.ID(),
		ReservationID:   c.ReservationID(),
		Date:            pgconv.DateToPgtype(c.Date()),
		Time:            pgconv.TimeOfDayToPgtype(c.Time()),
		DurationMinutes: int32(c.DurationMinutes()), // #nosec G115 -- bounded by BOOKING_CONSULTATION_MINUTES
		PriceCents:      c.PriceCents(),
		VideoLink:       c.VideoLink(),
		Status:          string(c.Status()),
		CreatedAt:       pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func ConsultationToDomain(r ConsultationRow) (*consultation.Consultation, error) {
	at, err := pgconv.TimeOfDayFromPgtype(r.Time)
	if err != nil {
		return nil, err
	}
	return consultation.Reconstruct(
		r.ID,
		r.ReservationID,
		pgconv.DateFromPgtype(r.Date),
		at,
		int(r.DurationMinutes),
		r.PriceCents,
		r.VideoLink,
		consultation.Status(r.Status),
		pgconv.TimeFromPgtype(r.CreatedAt),
		pgconv.TimeFromPgtype(r.UpdatedAt),
	), nil
}
