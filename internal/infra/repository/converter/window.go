package converter

import (
	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var WindowColumns = []string{
	"id", "professional_id", "date", "start_time", "end_time", "price_cents", "created_at", "updated_at",
}

// WindowRow is one availability_windows row in pgx wire types.
type WindowRow struct {
	ID             uuid.UUID
	ProfessionalID uuid.UUID
	Date           pgtype.Date
	StartTime      pgtype.Time
	EndTime        pgtype.Time
	PriceCents     int64
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

// Dest lists scan targets in WindowColumns order.
func (r *WindowRow) Dest() []any {
	return []any{&r.ID, &r.ProfessionalID, &r.Date, &r.StartTime, &r.EndTime, &r.PriceCents, &r.CreatedAt, &r.UpdatedAt}
}

func (r *WindowRow) Values() []any {
	return []any{r.ID, r.ProfessionalID, r.Date, r.StartTime, r.EndTime, r.PriceCents, r.CreatedAt, r.UpdatedAt}
}

func WindowToInfra(w *availability.Window) WindowRow {
	return WindowRow{
		ID:             w.ID(),
		ProfessionalID: w.ProfessionalID(),
		Date:           pgconv.DateToPgtype(w.Date()),
		StartTime:      pgconv.TimeOfDayToPgtype(w.Start()),
		EndTime:        pgconv.TimeOfDayToPgtype(w.End()),
		PriceCents:     w.PriceCents(),
		CreatedAt:      pgconv.TimeToPgtype(w.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(w.UpdatedAt()),
	}
}

func WindowToDomain(r WindowRow) (*availability.Window, error) {
	start, err := pgconv.TimeOfDayFromPgtype(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := pgconv.TimeOfDayFromPgtype(r.EndTime)
	if err != nil {
		return nil, err
	}
	return availability.ReconstructWindow(
		r.ID,
		r.ProfessionalID,
		pgconv.DateFromPgtype(r.Date),
		start,
		end,
		r.PriceCents,
		pgconv.TimeFromPgtype(r.CreatedAt),
		pgconv.TimeFromPgtype(r.UpdatedAt),
	), nil
}
