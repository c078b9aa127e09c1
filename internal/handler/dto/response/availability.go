package response

import (
	"time"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type WindowResponse struct {
	ID             uuid.UUID `json:"id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	PriceCents     int64     `json:"price_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type FreeSlotsResponse struct {
	WindowID        uuid.UUID `json:"window_id"`
	Date            string    `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	Slots           []string  `json:"slots"`
}

func FromWindow(w *availability.Window) *WindowResponse {
	return &WindowResponse{
		ID:             w.ID(),
		ProfessionalID: w.ProfessionalID(),
		Date:           w.Date().String(),
		StartTime:      w.Start().String(),
		EndTime:        w.End().String(),
		PriceCents:     w.PriceCents(),
		CreatedAt:      w.CreatedAt(),
		UpdatedAt:      w.UpdatedAt(),
	}
}

func FromWindowView(v *queries.WindowView) (*WindowResponse, error) {
	var res WindowResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromWindowViews(vs []*queries.WindowView) ([]*WindowResponse, error) {
	res := make([]*WindowResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromWindowView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func FromFreeSlotsView(v *queries.FreeSlotsView) *FreeSlotsResponse {
	return &FreeSlotsResponse{
		WindowID:        v.WindowID,
		Date:            v.Date.String(),
		DurationMinutes: v.DurationMinutes,
		Slots:           timesToStrings(v.Slots),
	}
}
