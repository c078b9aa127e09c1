package commands

import (
	"context"
	"log/slog"

	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/pkg/clock"
	"mindcare-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConsultationCommands interface {
	SetVideoLink(ctx context.Context, actor user.Actor, reservationID uuid.UUID, link string) (*consultation.Consultation, error)
}

type consultationUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewConsultationCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ConsultationCommands {
	return &consultationUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *consultationUseCaseImpl) SetVideoLink(
	ctx context.Context,
	actor user.Actor,
	reservationID uuid.UUID,
	link string,
) (*consultation.Consultation, error) {
	var updated *consultation.Consultation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, w, err := loadForTransition(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if !isOwningProfessional(actor, w) {
			return ErrNotWindowOwner
		}

		c, err := tx.Consultations().FindByReservationIDForUpdate(ctx, reservationID)
		if err != nil {
			return repoErr(err, ErrConsultationNotFound)
		}
		if err := c.SetVideoLink(link, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Consultations().Update(ctx, c); err != nil {
			return repoErr(err, ErrConsultationNotFound)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "consultation video link updated",
		slog.String("reservation_id", reservationID.String()),
		slog.String("consultation_id", updated.ID().String()))
	return updated, nil
}
