package commands

import (
	"context"
	"log/slog"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/pkg/clock"
	"mindcare-booking/internal/pkg/errs"
	"mindcare-booking/internal/pkg/metrics"
	"mindcare-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	// BookSlot reserves one sub-slot of a window for the calling client.
	// Concurrent calls for the same slot yield exactly one PENDING
	// reservation; the others get ErrSlotUnavailable.
	BookSlot(ctx context.Context, actor user.Actor, windowID uuid.UUID, at availability.TimeOfDay) (*reservation.Reservation, error)
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	generator *availability.Generator
	clock     clock.Clock
	recorder  Recorder
	logger    *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	generator *availability.Generator,
	clk clock.Clock,
	recorder Recorder,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		generator: generator,
		clock:     clk,
		recorder:  recorder,
		logger:    logger,
	}
}

func (uc *bookingUseCaseImpl) BookSlot(
	ctx context.Context,
	actor user.Actor,
	windowID uuid.UUID,
	at availability.TimeOfDay,
) (*reservation.Reservation, error) {
	if !actor.IsClient() {
		uc.recorder.BookingOutcome(metrics.OutcomeRejected)
		return nil, ErrNotClient
	}

	var created *reservation.Reservation
	err := uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.book(ctx, tx, actor.UserID, windowID, at)
		if err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		err = uc.classify(err)
		uc.recordFailure(ctx, err, windowID, at)
		return nil, err
	}

	uc.recorder.BookingOutcome(metrics.OutcomeBooked)
	uc.logger.InfoContext(ctx, "slot booked",
		slog.String("reservation_id", created.ID().String()),
		slog.String("window_id", windowID.String()),
		slog.String("client_id", actor.UserID.String()),
		slog.String("requested_time", at.String()))
	return created, nil
}

// book runs inside the serializable transaction: the free-slot list is
// recomputed from the rows this transaction sees, never trusted from the
// client.
func (uc *bookingUseCaseImpl) book(
	ctx context.Context,
	tx shared.Tx,
	clientID, windowID uuid.UUID,
	at availability.TimeOfDay,
) (*reservation.Reservation, error) {
	w, err := tx.Windows().FindByID(ctx, windowID, shared.LockShare)
	if err != nil {
		return nil, repoErr(err, ErrWindowNotFound)
	}

	held, err := tx.Reservations().ListSlotHolding(ctx, windowID)
	if err != nil {
		return nil, repoErr(err, nil)
	}

	now := uc.clock.Now()
	free, err := uc.generator.FreeSlots(w, shared.Occupants(held), now)
	if err != nil {
		return nil, err
	}
	if !availability.IsFree(free, at) {
		return nil, ErrSlotNotOffered
	}

	price, err := reservation.NewMoney(w.PriceCents())
	if err != nil {
		return nil, err
	}
	res, err := reservation.NewReservation(w.ID(), clientID, at, w.SlotStart(at, uc.generator.Rules().Location), price, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Reservations().Create(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrSlotUnavailable)
		}
		return nil, repoErr(err, nil)
	}
	return res, nil
}

// classify folds a lost race into ErrSlotUnavailable: either the retry of a
// serialization failure failed again, or the partial unique index fired.
func (uc *bookingUseCaseImpl) classify(err error) error {
	if errs.Is(err, shared.ErrTxConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrSlotUnavailable)
	}
	return err
}

func (uc *bookingUseCaseImpl) recordFailure(ctx context.Context, err error, windowID uuid.UUID, at availability.TimeOfDay) {
	attrs := []any{
		slog.String("window_id", windowID.String()),
		slog.String("requested_time", at.String()),
		slog.String("error", err.Error()),
	}
	switch errs.Kind(err) {
	case errs.ErrSlotUnavailable:
		uc.recorder.BookingOutcome(metrics.OutcomeUnavailable)
		uc.logger.InfoContext(ctx, "slot unavailable", attrs...)
	case errs.ErrValidation, errs.ErrNotFound, errs.ErrForbidden, errs.ErrConflict:
		uc.recorder.BookingOutcome(metrics.OutcomeRejected)
		uc.logger.InfoContext(ctx, "booking rejected", attrs...)
	default:
		uc.recorder.BookingOutcome(metrics.OutcomeError)
		uc.logger.ErrorContext(ctx, "booking failed", attrs...)
	}
}
