package shared

import (
	"context"
	"time"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed write transaction, rows are locked explicitly.
	// Both variants retry once on a serialization failure or deadlock, then
	// mark the error ErrTxConflict and errs.ErrConflict; fn must be rerunnable.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// LockMode selects the row lock taken by a read inside a transaction.
type LockMode int

const (
	LockNone LockMode = iota
	// LockShare lets concurrent bookings proceed while blocking window edits
	LockShare
	LockUpdate
)

type Tx interface {
	Windows() WindowRepository
	Reservations() ReservationRepository
	Consultations() ConsultationRepository
}

type WindowRepository interface {
	Create(ctx context.Context, w *availability.Window) error
	Update(ctx context.Context, w *availability.Window) error
	// Delete hides the window; its reservations stay for history
	Delete(ctx context.Context, id uuid.UUID, at time.Time) error
	FindByID(ctx context.Context, id uuid.UUID, lock LockMode) (*availability.Window, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	// UpdateStatus persists status, payment reference and updated_at
	UpdateStatus(ctx context.Context, r *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListSlotHolding(ctx context.Context, windowID uuid.UUID) ([]*reservation.Reservation, error)
	CountSlotHolding(ctx context.Context, windowID uuid.UUID) (int, error)
	// CountByWindow counts every reservation of the window, terminal ones included
	CountByWindow(ctx context.Context, windowID uuid.UUID) (int, error)
}

type ConsultationRepository interface {
	Create(ctx context.Context, c *consultation.Consultation) error
	Update(ctx context.Context, c *consultation.Consultation) error
	FindByReservationIDForUpdate(ctx context.Context, reservationID uuid.UUID) (*consultation.Consultation, error)
}
