package commands

import (
	"context"
	"log/slog"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/pkg/clock"
	"mindcare-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityCommands interface {
	CreateWindow(ctx context.Context, actor user.Actor, spec availability.WindowSpec) (*availability.Window, error)
	UpdateWindow(ctx context.Context, actor user.Actor, windowID uuid.UUID, spec availability.WindowSpec) (*availability.Window, error)
	DeleteWindow(ctx context.Context, actor user.Actor, windowID uuid.UUID) error
}

type availabilityUseCaseImpl struct {
	uow    shared.UnitOfWork
	rules  availability.Rules
	clock  clock.Clock
	logger *slog.Logger
}

func NewAvailabilityCommands(uow shared.UnitOfWork, rules availability.Rules, clk clock.Clock, logger *slog.Logger) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow, rules: rules, clock: clk, logger: logger}
}

func (uc *availabilityUseCaseImpl) CreateWindow(ctx context.Context, actor user.Actor, spec availability.WindowSpec) (*availability.Window, error) {
	if !actor.IsProfessional() {
		return nil, ErrNotProfessional
	}

	w, err := availability.NewWindow(actor.UserID, spec, uc.rules, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Windows().Create(ctx, w), nil)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "availability window created",
		slog.String("window_id", w.ID().String()),
		slog.String("professional_id", actor.UserID.String()),
		slog.String("date", w.Date().String()),
		slog.String("start", w.Start().String()),
		slog.String("end", w.End().String()))
	return w, nil
}

func (uc *availabilityUseCaseImpl) UpdateWindow(
	ctx context.Context,
	actor user.Actor,
	windowID uuid.UUID,
	spec availability.WindowSpec,
) (*availability.Window, error) {
	var updated *availability.Window
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// past reservations read their date and times from the window
		w, err := uc.lockOwnedWindow(ctx, tx, actor, windowID, tx.Reservations().CountByWindow)
		if err != nil {
			return err
		}
		if err := w.Reschedule(spec, uc.rules, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Windows().Update(ctx, w); err != nil {
			return repoErr(err, ErrWindowNotFound)
		}
		updated = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "availability window updated", slog.String("window_id", windowID.String()))
	return updated, nil
}

func (uc *availabilityUseCaseImpl) DeleteWindow(ctx context.Context, actor user.Actor, windowID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := uc.lockOwnedWindow(ctx, tx, actor, windowID, tx.Reservations().CountSlotHolding); err != nil {
			return err
		}
		return repoErr(tx.Windows().Delete(ctx, windowID, uc.clock.Now()), ErrWindowNotFound)
	})
	if err != nil {
		return err
	}

	uc.logger.InfoContext(ctx, "availability window deleted", slog.String("window_id", windowID.String()))
	return nil
}

// lockOwnedWindow locks the window against concurrent bookings and rejects
// the change while count reports reservations on it.
func (uc *availabilityUseCaseImpl) lockOwnedWindow(
	ctx context.Context,
	tx shared.Tx,
	actor user.Actor,
	windowID uuid.UUID,
	count func(ctx context.Context, windowID uuid.UUID) (int, error),
) (*availability.Window, error) {
	if !actor.IsProfessional() {
		return nil, ErrNotProfessional
	}

	w, err := tx.Windows().FindByID(ctx, windowID, shared.LockUpdate)
	if err != nil {
		return nil, repoErr(err, ErrWindowNotFound)
	}
	if !w.OwnedBy(actor.UserID) {
		return nil, ErrNotWindowOwner
	}

	n, err := count(ctx, windowID)
	if err != nil {
		return nil, repoErr(err, nil)
	}
	if n > 0 {
		return nil, ErrWindowHasReservations
	}
	return w, nil
}
