package commands

import (
	"context"

	"github.com/google/uuid"
)

// Recorder receives booking and lifecycle events for metrics.
type Recorder interface {
	BookingOutcome(outcome string)
	Transition(from, to string)
	PaymentEvent(kind, result string)
}

type CheckoutRequest struct {
	ReservationID uuid.UUID
	AmountCents   int64
	Description   string
}

type CheckoutSession struct {
	SessionID   string
	CheckoutURL string
}

// PaymentGateway is the external payment collaborator.
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}

// PaymentConfirmation is a verified "payment succeeded" notification.
type PaymentConfirmation struct {
	ReservationID uuid.UUID
	PaymentRef    string
}

// PaymentEventVerifier authenticates a raw webhook body. It returns a nil
// confirmation for authentic events that do not confirm a payment.
type PaymentEventVerifier interface {
	Verify(payload []byte, signature string) (*PaymentConfirmation, error)
}
