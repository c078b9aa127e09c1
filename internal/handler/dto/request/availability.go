package request

import (
	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/usecase/queries"
)

type WindowRequest struct {
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	PriceCents *int64 `json:"price_cents" binding:"required,min=0"`
}

func (r *WindowRequest) ToDomain() (availability.WindowSpec, error) {
	date, err := availability.ParseDate(r.Date)
	if err != nil {
		return availability.WindowSpec{}, err
	}
	start, err := availability.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return availability.WindowSpec{}, err
	}
	end, err := availability.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return availability.WindowSpec{}, err
	}
	return availability.WindowSpec{
		Date:       date,
		Start:      start,
		End:        end,
		PriceCents: *r.PriceCents,
	}, nil
}

type ListWindowsQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q *ListWindowsQuery) ToFilter() (queries.WindowFilter, error) {
	var f queries.WindowFilter
	if q.From != "" {
		d, err := availability.ParseDate(q.From)
		if err != nil {
			return queries.WindowFilter{}, err
		}
		f.From = &d
	}
	if q.To != "" {
		d, err := availability.ParseDate(q.To)
		if err != nil {
			return queries.WindowFilter{}, err
		}
		f.To = &d
	}
	return f, nil
}

type BookSlotRequest struct {
	Time string `json:"time" binding:"required"`
}

func (r *BookSlotRequest) ToDomain() (availability.TimeOfDay, error) {
	return availability.ParseTimeOfDay(r.Time)
}
