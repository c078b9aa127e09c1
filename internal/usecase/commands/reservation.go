package commands

import (
	"context"
	"log/slog"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/pkg/clock"
	"mindcare-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ValidateResult struct {
	Reservation  *reservation.Reservation
	Consultation *consultation.Consultation
}

type ReservationCommands interface {
	// Validate accepts a PENDING reservation and creates its consultation in
	// the same transaction.
	Validate(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*ValidateResult, error)
	Refuse(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*reservation.Reservation, error)
	// Cancel is open to the owning client and the owning professional. A
	// validated reservation takes its consultation down with it.
	Cancel(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	settings consultation.Settings
	clock    clock.Clock
	recorder Recorder
	logger   *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	settings consultation.Settings,
	clk clock.Clock,
	recorder Recorder,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		settings: settings,
		clock:    clk,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *reservationUseCaseImpl) Validate(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*ValidateResult, error) {
	var result ValidateResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, w, err := loadForTransition(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if !isOwningProfessional(actor, w) {
			return ErrNotWindowOwner
		}

		now := uc.clock.Now()
		if err := res.Validate(now); err != nil {
			return err
		}
		c, err := consultation.NewFromReservation(res, w, uc.settings, now)
		if err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return repoErr(err, ErrReservationNotFound)
		}
		// a failed insert rolls the status change back with the transaction
		if err := tx.Consultations().Create(ctx, c); err != nil {
			return repoErr(err, nil)
		}

		result = ValidateResult{Reservation: res, Consultation: c}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.transitioned(ctx, reservationID, reservation.StatusPending, reservation.StatusValidated, actor,
		slog.String("consultation_id", result.Consultation.ID().String()))
	return &result, nil
}

func (uc *reservationUseCaseImpl) Refuse(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*reservation.Reservation, error) {
	var refused *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, w, err := loadForTransition(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if !isOwningProfessional(actor, w) {
			return ErrNotWindowOwner
		}
		if err := res.Refuse(uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return repoErr(err, ErrReservationNotFound)
		}
		refused = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.transitioned(ctx, reservationID, reservation.StatusPending, reservation.StatusRefused, actor)
	return refused, nil
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*reservation.Reservation, error) {
	var (
		cancelled *reservation.Reservation
		from      reservation.Status
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, w, err := loadForTransition(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if !isOwningClient(actor, res) && !isOwningProfessional(actor, w) {
			return ErrNotReservationParty
		}

		from = res.Status()
		now := uc.clock.Now()
		wasValidated, err := res.Cancel(now)
		if err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return repoErr(err, ErrReservationNotFound)
		}

		if wasValidated {
			c, err := tx.Consultations().FindByReservationIDForUpdate(ctx, res.ID())
			if err != nil {
				return repoErr(err, ErrConsultationNotFound)
			}
			c.Invalidate(now)
			if err := tx.Consultations().Update(ctx, c); err != nil {
				return repoErr(err, ErrConsultationNotFound)
			}
		}

		cancelled = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.transitioned(ctx, reservationID, from, reservation.StatusCancelled, actor)
	return cancelled, nil
}

func (uc *reservationUseCaseImpl) transitioned(
	ctx context.Context,
	reservationID uuid.UUID,
	from, to reservation.Status,
	actor user.Actor,
	extra ...any,
) {
	uc.recorder.Transition(from.String(), to.String())
	attrs := append([]any{
		slog.String("reservation_id", reservationID.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("actor_id", actor.UserID.String()),
		slog.String("actor_role", actor.Role.String()),
	}, extra...)
	uc.logger.InfoContext(ctx, "reservation status changed", attrs...)
}

// loadForTransition locks the reservation row so concurrent transitions on
// the same reservation run one after the other.
func loadForTransition(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) (*reservation.Reservation, *availability.Window, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
	if err != nil {
		return nil, nil, repoErr(err, ErrReservationNotFound)
	}
	w, err := tx.Windows().FindByID(ctx, res.WindowID(), shared.LockNone)
	if err != nil {
		return nil, nil, repoErr(err, ErrWindowNotFound)
	}
	return res, w, nil
}

func isOwningProfessional(actor user.Actor, w *availability.Window) bool {
	return actor.IsProfessional() && actor.Is(w.ProfessionalID())
}

func isOwningClient(actor user.Actor, res *reservation.Reservation) bool {
	return actor.IsClient() && actor.UserID != uuid.Nil && res.BelongsTo(actor.UserID)
}
