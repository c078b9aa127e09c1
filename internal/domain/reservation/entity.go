package reservation

import (
	"time"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errs.Mark(errs.New("invalid reservation status"), errs.ErrValidation)
	ErrInvalidTransition  = errs.Mark(errs.New("invalid reservation status transition"), errs.ErrConflict)
	ErrSlotInPast         = errs.Mark(errs.New("requested time is not in the future"), errs.ErrSlotUnavailable)
	ErrMissingPaymentRef  = errs.Mark(errs.New("payment reference is required"), errs.ErrValidation)
	ErrPaymentRefMismatch = errs.Mark(errs.New("reservation was paid with a different payment reference"), errs.ErrConflict)
)

type Reservation struct {
	id            uuid.UUID
	windowID      uuid.UUID
	clientID      uuid.UUID
	requestedTime availability.TimeOfDay
	status        Status
	price         Money
	paymentRef    string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation creates a PENDING reservation. Whether the slot is free is
// decided by the booking coordinator; the constructor only refuses instants
// that are not strictly after now.
func NewReservation(
	windowID, clientID uuid.UUID,
	requestedTime availability.TimeOfDay,
	slotStart time.Time,
	price Money,
	now time.Time,
) (*Reservation, error) {
	if !slotStart.After(now) {
		return nil, ErrSlotInPast
	}
	return &Reservation{
		id:            uuid.New(),
		windowID:      windowID,
		clientID:      clientID,
		requestedTime: requestedTime,
		status:        StatusPending,
		price:         price,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructReservation(
	id, windowID, clientID uuid.UUID,
	requestedTime availability.TimeOfDay,
	status Status,
	price Money,
	paymentRef string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		windowID:      windowID,
		clientID:      clientID,
		requestedTime: requestedTime,
		status:        status,
		price:         price,
		paymentRef:    paymentRef,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) Validate(now time.Time) error {
	return r.transition(StatusValidated, now)
}

func (r *Reservation) Refuse(now time.Time) error {
	return r.transition(StatusRefused, now)
}

// Cancel reports whether the reservation was VALIDATED before, in which case
// the caller must invalidate the linked consultation in the same transaction.
func (r *Reservation) Cancel(now time.Time) (wasValidated bool, err error) {
	prev := r.status
	if err := r.transition(StatusCancelled, now); err != nil {
		return false, err
	}
	return prev == StatusValidated, nil
}

// MarkPaid records the payment. Replaying the same payment reference on an
// already PAID reservation is a no-op so redelivered callbacks are harmless.
func (r *Reservation) MarkPaid(paymentRef string, now time.Time) (changed bool, err error) {
	if paymentRef == "" {
		return false, ErrMissingPaymentRef
	}
	if r.status == StatusPaid {
		if r.paymentRef == paymentRef {
			return false, nil
		}
		return false, ErrPaymentRefMismatch
	}
	if err := r.transition(StatusPaid, now); err != nil {
		return false, err
	}
	r.paymentRef = paymentRef
	return true, nil
}

func (r *Reservation) transition(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", r.status, next)
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) BelongsTo(clientID uuid.UUID) bool {
	return r.clientID == clientID
}

func (r *Reservation) HoldsSlot() bool {
	return r.status.HoldsSlot()
}

func (r *Reservation) ID() uuid.UUID                         { return r.id }
func (r *Reservation) WindowID() uuid.UUID                   { return r.windowID }
func (r *Reservation) ClientID() uuid.UUID                   { return r.clientID }
func (r *Reservation) RequestedTime() availability.TimeOfDay { return r.requestedTime }
func (r *Reservation) Status() Status                        { return r.status }
func (r *Reservation) Price() Money                          { return r.price }
func (r *Reservation) PaymentRef() string                    { return r.paymentRef }
func (r *Reservation) CreatedAt() time.Time                  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time                  { return r.updatedAt }
