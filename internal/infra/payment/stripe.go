package payment

import (
	"context"
	"encoding/json"
	"log/slog"

	"mindcare-booking/internal/pkg/config"
	"mindcare-booking/internal/pkg/errs"
	"mindcare-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

var (
	ErrGatewayNotConfigured = errs.New("payment gateway is not configured")
	ErrInvalidSignature     = errs.Mark(errs.New("invalid webhook signature"), errs.ErrValidation)
	ErrMalformedEvent       = errs.Mark(errs.New("malformed webhook event"), errs.ErrValidation)
)

// StripeGateway creates Stripe Checkout sessions. The reservation id travels
// as client_reference_id and comes back in checkout.session.completed.
type StripeGateway struct {
	cfg    config.PaymentConfig
	logger *slog.Logger
}

func NewStripeGateway(cfg config.PaymentConfig, logger *slog.Logger) *StripeGateway {
	if cfg.StripeSecretKey != "" {
		stripe.Key = cfg.StripeSecretKey
	}
	return &StripeGateway{cfg: cfg, logger: logger}
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	if g.cfg.StripeSecretKey == "" {
		return nil, ErrGatewayNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.ReservationID.String()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.cfg.SuccessURL),
		CancelURL:  stripe.String(g.cfg.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("reservation_id", req.ReservationID.String())

	sess, err := session.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe checkout session")
	}
	g.logger.DebugContext(ctx, "checkout session created",
		slog.String("reservation_id", req.ReservationID.String()),
		slog.String("session_id", sess.ID))
	return &commands.CheckoutSession{SessionID: sess.ID, CheckoutURL: sess.URL}, nil
}

type StripeWebhookVerifier struct {
	secret string
}

func NewStripeWebhookVerifier(cfg config.PaymentConfig) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: cfg.StripeWebhookSecret}
}

// Verify only turns checkout.session.completed with a paid status into a
// confirmation. Other authentic events are acknowledged with nil.
func (v *StripeWebhookVerifier) Verify(payload []byte, signature string) (*commands.PaymentConfirmation, error) {
	if v.secret == "" {
		return nil, ErrGatewayNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignature)
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}
	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, nil
	}

	reservationID, err := uuid.Parse(sess.ClientReferenceID)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}

	ref := sess.ID
	if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
		ref = sess.PaymentIntent.ID
	}
	return &commands.PaymentConfirmation{ReservationID: reservationID, PaymentRef: ref}, nil
}
