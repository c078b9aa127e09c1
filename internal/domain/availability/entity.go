package availability

import (
	"time"

	"mindcare-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow   = errs.Mark(errs.New("window start time must be before end time"), errs.ErrValidation)
	ErrWindowTooShort  = errs.Mark(errs.New("window is shorter than one consultation"), errs.ErrValidation)
	ErrWindowInPast    = errs.Mark(errs.New("window ends in the past"), errs.ErrValidation)
	ErrNegativePrice   = errs.Mark(errs.New("price cannot be negative"), errs.ErrValidation)
	ErrInvalidDuration = errs.Mark(errs.New("slot duration must be positive"), errs.ErrValidation)
	ErrMissingOwner    = errs.Mark(errs.New("window must belong to a professional"), errs.ErrValidation)
)

// Rules carries the platform settings windows are validated against.
type Rules struct {
	SlotMinutes int
	Location    *time.Location
}

// Window is a span of time a professional declares bookable.
type Window struct {
	id             uuid.UUID
	professionalID uuid.UUID
	date           Date
	start          TimeOfDay
	end            TimeOfDay
	priceCents     int64
	createdAt      time.Time
	updatedAt      time.Time
}

type WindowSpec struct {
	Date       Date
	Start      TimeOfDay
	End        TimeOfDay
	PriceCents int64
}

func NewWindow(professionalID uuid.UUID, spec WindowSpec, rules Rules, now time.Time) (*Window, error) {
	if professionalID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if err := spec.validate(rules, now); err != nil {
		return nil, err
	}
	return &Window{
		id:             uuid.New(),
		professionalID: professionalID,
		date:           spec.Date,
		start:          spec.Start,
		end:            spec.End,
		priceCents:     spec.PriceCents,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructWindow(
	id, professionalID uuid.UUID,
	date Date,
	start, end TimeOfDay,
	priceCents int64,
	createdAt, updatedAt time.Time,
) *Window {
	return &Window{
		id:             id,
		professionalID: professionalID,
		date:           date,
		start:          start,
		end:            end,
		priceCents:     priceCents,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Reschedule replaces date, bounds and price. Whether the window is still free
// of reservations is checked by the caller against the store.
func (w *Window) Reschedule(spec WindowSpec, rules Rules, now time.Time) error {
	if err := spec.validate(rules, now); err != nil {
		return err
	}
	w.date = spec.Date
	w.start = spec.Start
	w.end = spec.End
	w.priceCents = spec.PriceCents
	w.updatedAt = now
	return nil
}

func (s WindowSpec) validate(rules Rules, now time.Time) error {
	if !s.Start.Before(s.End) {
		return ErrInvalidWindow
	}
	if rules.SlotMinutes <= 0 {
		return ErrInvalidDuration
	}
	if s.End.Sub(s.Start) < rules.SlotMinutes {
		return ErrWindowTooShort
	}
	if s.PriceCents < 0 {
		return ErrNegativePrice
	}
	loc := rules.Location
	if loc == nil {
		loc = time.UTC
	}
	if !s.Date.At(s.End, loc).After(now) {
		return ErrWindowInPast
	}
	return nil
}

func (w *Window) OwnedBy(professionalID uuid.UUID) bool {
	return w.professionalID == professionalID
}

// SlotStart is the absolute instant of a sub-slot starting at t.
func (w *Window) SlotStart(t TimeOfDay, loc *time.Location) time.Time {
	return w.date.At(t, loc)
}

func (w *Window) ID() uuid.UUID             { return w.id }
func (w *Window) ProfessionalID() uuid.UUID { return w.professionalID }
func (w *Window) Date() Date                { return w.date }
func (w *Window) Start() TimeOfDay          { return w.start }
func (w *Window) End() TimeOfDay            { return w.end }
func (w *Window) PriceCents() int64         { return w.priceCents }
func (w *Window) CreatedAt() time.Time      { return w.createdAt }
func (w *Window) UpdatedAt() time.Time      { return w.updatedAt }
