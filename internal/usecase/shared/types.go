package shared

import (
	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/pkg/errs"
)

// ErrTxConflict marks a serializable transaction that still conflicted after
// its retry.
var ErrTxConflict = errs.New("transaction conflict after retry")

// Occupants adapts reservations to the slot generator input.
func Occupants(rs []*reservation.Reservation) []availability.Occupant {
	out := make([]availability.Occupant, 0, len(rs))
	for _, r := range rs {
		out = append(out, r)
	}
	return out
}
