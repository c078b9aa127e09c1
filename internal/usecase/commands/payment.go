package commands

import (
	"context"
	"fmt"
	"log/slog"

	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/pkg/clock"
	"mindcare-booking/internal/pkg/errs"
	"mindcare-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotPayable = errs.Mark(errs.New("only validated reservations can be paid"), errs.ErrConflict)

type PaymentCommands interface {
	// InitiatePayment opens a checkout for a VALIDATED reservation owned by
	// the calling client. The reservation itself is not modified.
	InitiatePayment(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*CheckoutSession, error)
	// ConfirmPayment marks the reservation PAID. Replays with the same
	// payment reference succeed without changing anything.
	ConfirmPayment(ctx context.Context, reservationID uuid.UUID, paymentRef string) (*reservation.Reservation, error)
	// HandleWebhook verifies a raw gateway notification and confirms the
	// payment it carries, if any.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	verifier PaymentEventVerifier
	clock    clock.Clock
	recorder Recorder
	logger   *slog.Logger
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	verifier PaymentEventVerifier,
	clk clock.Clock,
	recorder Recorder,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		verifier: verifier,
		clock:    clk,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *paymentUseCaseImpl) InitiatePayment(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*CheckoutSession, error) {
	var req CheckoutRequest
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, w, err := loadForTransition(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if !isOwningClient(actor, res) {
			return ErrNotReservationParty
		}
		if res.Status() != reservation.StatusValidated {
			return errs.Wrapf(ErrNotPayable, "status %s", res.Status())
		}
		req = CheckoutRequest{
			ReservationID: res.ID(),
			AmountCents:   res.Price().Cents(),
			Description:   fmt.Sprintf("Consultation %s %s", w.Date(), res.RequestedTime()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Row lock is already released here.
	session, err := uc.gateway.CreateCheckout(ctx, req)
	if err != nil {
		uc.recorder.PaymentEvent("checkout", "error")
		uc.logger.ErrorContext(ctx, "checkout creation failed",
			slog.String("reservation_id", reservationID.String()),
			slog.String("error", err.Error()))
		return nil, errs.Mark(err, ErrPaymentGateway)
	}

	uc.recorder.PaymentEvent("checkout", "ok")
	uc.logger.InfoContext(ctx, "checkout created",
		slog.String("reservation_id", reservationID.String()),
		slog.String("session_id", session.SessionID))
	return session, nil
}

func (uc *paymentUseCaseImpl) ConfirmPayment(ctx context.Context, reservationID uuid.UUID, paymentRef string) (*reservation.Reservation, error) {
	var (
		paid    *reservation.Reservation
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return repoErr(err, ErrReservationNotFound)
		}
		changed, err = res.MarkPaid(paymentRef, uc.clock.Now())
		if err != nil {
			return err
		}
		if changed {
			if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
				return repoErr(err, ErrReservationNotFound)
			}
		}
		paid = res
		return nil
	})
	if err != nil {
		uc.recorder.PaymentEvent("confirmation", "rejected")
		return nil, err
	}

	if !changed {
		uc.recorder.PaymentEvent("confirmation", "duplicate")
		uc.logger.InfoContext(ctx, "payment confirmation replayed",
			slog.String("reservation_id", reservationID.String()),
			slog.String("payment_ref", paymentRef))
		return paid, nil
	}

	uc.recorder.PaymentEvent("confirmation", "ok")
	uc.recorder.Transition(reservation.StatusValidated.String(), reservation.StatusPaid.String())
	uc.logger.InfoContext(ctx, "reservation status changed",
		slog.String("reservation_id", reservationID.String()),
		slog.String("from", reservation.StatusValidated.String()),
		slog.String("to", reservation.StatusPaid.String()),
		slog.String("payment_ref", paymentRef))
	return paid, nil
}

func (uc *paymentUseCaseImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	confirmation, err := uc.verifier.Verify(payload, signature)
	if err != nil {
		uc.recorder.PaymentEvent("webhook", "invalid")
		uc.logger.WarnContext(ctx, "payment webhook rejected", slog.String("error", err.Error()))
		return err
	}
	if confirmation == nil {
		uc.recorder.PaymentEvent("webhook", "ignored")
		return nil
	}

	_, err = uc.ConfirmPayment(ctx, confirmation.ReservationID, confirmation.PaymentRef)
	return err
}
