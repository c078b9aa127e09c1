//go:build unit || e2e

package builder

import (
	"time"

	"mindcare-booking/internal/domain/availability"
	reqdto "mindcare-booking/internal/handler/dto/request"
	"mindcare-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Reference instant shared by builders: the default window opens one hour later.
var DefaultNow = time.Date(2031, time.March, 10, 8, 0, 0, 0, time.UTC)

func DefaultRules() availability.Rules {
	return availability.Rules{SlotMinutes: 45, Location: time.UTC}
}

type WindowBuilder struct {
	ID             uuid.UUID
	ProfessionalID uuid.UUID
	Date           availability.Date
	Start          availability.TimeOfDay
	End            availability.TimeOfDay
	PriceCents     int64
	Rules          availability.Rules
	Now            time.Time
}

func NewWindowBuilder() *WindowBuilder {
	return &WindowBuilder{
		ID:             uuid.New(),
		ProfessionalID: uuid.New(),
		Date:           availability.DateOf(DefaultNow),
		Start:          availability.MustTimeOfDay("09:00"),
		End:            availability.MustTimeOfDay("12:00"),
		PriceCents:     6000,
		Rules:          DefaultRules(),
		Now:            DefaultNow,
	}
}

func (b *WindowBuilder) With(mutate func(*WindowBuilder)) *WindowBuilder {
	mutate(b)
	return b
}

func (b *WindowBuilder) WithBounds(start, end string) *WindowBuilder {
	b.Start = availability.MustTimeOfDay(start)
	b.End = availability.MustTimeOfDay(end)
	return b
}

func (b *WindowBuilder) Spec() availability.WindowSpec {
	return availability.WindowSpec{
		Date:       b.Date,
		Start:      b.Start,
		End:        b.End,
		PriceCents: b.PriceCents,
	}
}

// Build methods
func (b *WindowBuilder) BuildDomain() (*availability.Window, error) {
	return availability.NewWindow(b.ProfessionalID, b.Spec(), b.Rules, b.Now)
}

// BuildReconstructed skips validation, as when loading from storage.
func (b *WindowBuilder) BuildReconstructed() *availability.Window {
	return availability.ReconstructWindow(b.ID, b.ProfessionalID, b.Date, b.Start, b.End, b.PriceCents, b.Now, b.Now)
}

func (b *WindowBuilder) BuildRequestDTO() reqdto.WindowRequest {
	price := b.PriceCents
	return reqdto.WindowRequest{
		Date:       b.Date.String(),
		StartTime:  b.Start.String(),
		EndTime:    b.End.String(),
		PriceCents: &price,
	}
}

func (b *WindowBuilder) BuildView() *queries.WindowView {
	return &queries.WindowView{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		Date:           b.Date,
		StartTime:      b.Start,
		EndTime:        b.End,
		PriceCents:     b.PriceCents,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}
