package queries

import (
	"context"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/pkg/clock"
	"mindcare-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWindowNotFound = errs.Mark(errs.New("availability window not found"), errs.ErrNotFound)

type WindowReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WindowView, error)
	ListByProfessional(ctx context.Context, professionalID uuid.UUID, filter WindowFilter) ([]*WindowView, error)
}

type AvailabilityQueries interface {
	GetWindow(ctx context.Context, id uuid.UUID) (*WindowView, error)
	ListWindows(ctx context.Context, professionalID uuid.UUID, filter WindowFilter) ([]*WindowView, error)
	// FreeSlots reads without locking; the list may be stale by the time a
	// booking is attempted.
	FreeSlots(ctx context.Context, windowID uuid.UUID) (*FreeSlotsView, error)
}

type availabilityQueriesImpl struct {
	windows      WindowReadStore
	reservations ReservationReadStore
	generator    *availability.Generator
	clock        clock.Clock
}

func NewAvailabilityQueries(
	windows WindowReadStore,
	reservations ReservationReadStore,
	generator *availability.Generator,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		windows:      windows,
		reservations: reservations,
		generator:    generator,
		clock:        clk,
	}
}

func (q *availabilityQueriesImpl) GetWindow(ctx context.Context, id uuid.UUID) (*WindowView, error) {
	w, err := q.windows.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWindowNotFound
		}
		return nil, err
	}
	return w, nil
}

func (q *availabilityQueriesImpl) ListWindows(ctx context.Context, professionalID uuid.UUID, filter WindowFilter) ([]*WindowView, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, errs.Mark(errs.New("date range end is before its start"), errs.ErrValidation)
	}
	return q.windows.ListByProfessional(ctx, professionalID, filter)
}

func (q *availabilityQueriesImpl) FreeSlots(ctx context.Context, windowID uuid.UUID) (*FreeSlotsView, error) {
	v, err := q.GetWindow(ctx, windowID)
	if err != nil {
		return nil, err
	}

	held, err := q.reservations.HeldTimes(ctx, windowID)
	if err != nil {
		return nil, err
	}

	w := availability.ReconstructWindow(v.ID, v.ProfessionalID, v.Date, v.StartTime, v.EndTime, v.PriceCents, v.CreatedAt, v.UpdatedAt)
	free, err := q.generator.FreeSlots(w, heldOccupants(windowID, held), q.clock.Now())
	if err != nil {
		return nil, err
	}

	return &FreeSlotsView{
		WindowID:        windowID,
		Date:            v.Date,
		DurationMinutes: q.generator.Rules().SlotMinutes,
		Slots:           free,
	}, nil
}

type heldSlot struct {
	windowID uuid.UUID
	at       availability.TimeOfDay
}

func (h heldSlot) WindowID() uuid.UUID                   { return h.windowID }
func (h heldSlot) RequestedTime() availability.TimeOfDay { return h.at }
func (h heldSlot) HoldsSlot() bool                       { return true }

func heldOccupants(windowID uuid.UUID, times []availability.TimeOfDay) []availability.Occupant {
	out := make([]availability.Occupant, len(times))
	for i, t := range times {
		out[i] = heldSlot{windowID: windowID, at: t}
	}
	return out
}
