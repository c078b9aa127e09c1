package availability

import (
	"time"

	"github.com/google/uuid"
)

// Occupant is an existing reservation as seen by the slot generator.
type Occupant interface {
	WindowID() uuid.UUID
	RequestedTime() TimeOfDay
	HoldsSlot() bool
}

// ComputeFreeSlots lists the bookable sub-slot start times of w, stepping by
// durationMinutes from the window start. A candidate is dropped when a
// slot-holding occupant of the same window sits on it, or when its absolute
// instant (resolved in now's location) is not after now.
//
// The result only depends on the arguments, so calling it twice with the same
// now yields the same slots.
func ComputeFreeSlots(w *Window, occupants []Occupant, durationMinutes int, now time.Time) ([]TimeOfDay, error) {
	if !w.Start().Before(w.End()) {
		return nil, ErrInvalidWindow
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	taken := make(map[int]struct{}, len(occupants))
	for _, o := range occupants {
		if o == nil || !o.HoldsSlot() || o.WindowID() != w.ID() {
			continue
		}
		taken[o.RequestedTime().Minutes()] = struct{}{}
	}

	loc := now.Location()
	free := make([]TimeOfDay, 0, w.End().Sub(w.Start())/durationMinutes)
	for cur := w.Start(); !cur.AddMinutes(durationMinutes).After(w.End()); cur = cur.AddMinutes(durationMinutes) {
		if _, ok := taken[cur.Minutes()]; ok {
			continue
		}
		if !w.SlotStart(cur, loc).After(now) {
			continue
		}
		free = append(free, cur)
	}
	return free, nil
}

// IsFree reports whether t is in the free slot list.
func IsFree(free []TimeOfDay, t TimeOfDay) bool {
	for _, s := range free {
		if s.Equal(t) {
			return true
		}
	}
	return false
}

// Generator binds ComputeFreeSlots to the platform's consultation length and
// time zone.
type Generator struct {
	rules Rules
}

func NewGenerator(rules Rules) *Generator {
	if rules.Location == nil {
		rules.Location = time.UTC
	}
	return &Generator{rules: rules}
}

func (g *Generator) FreeSlots(w *Window, occupants []Occupant, now time.Time) ([]TimeOfDay, error) {
	return ComputeFreeSlots(w, occupants, g.rules.SlotMinutes, now.In(g.rules.Location))
}

func (g *Generator) Rules() Rules {
	return g.rules
}
