//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/pkg/errs"
	"mindcare-booking/internal/usecase/commands"
	"mindcare-booking/internal/usecase/shared"
	"mindcare-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSettings = consultation.Settings{DurationMinutes: 45, VideoBaseURL: "https://video.example.com"}

func newReservations(h *harness) commands.ReservationCommands {
	return commands.NewReservationCommands(h.uow, testSettings, h.clock, h.recorder, h.logger)
}

// seed returns a window and a reservation in it with the requested status,
// both registered for loadForTransition.
func seed(h *harness, status reservation.Status) (*availability.Window, *reservation.Reservation) {
	w := builder.NewWindowBuilder().BuildReconstructed()
	r := builder.NewReservationBuilder().ForWindow(w, "09:45").WithStatus(status).BuildReconstructed()
	h.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), r.ID()).Return(r, nil)
	h.windows.EXPECT().FindByID(gomock.Any(), w.ID(), shared.LockNone).Return(w, nil)
	return w, r
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the consultation", func(t *testing.T) {
		h := newHarness(t)
		w, r := seed(h, reservation.StatusPending)

		h.reservations.EXPECT().UpdateStatus(gomock.Any(), r).Return(nil)
		h.consultations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *consultation.Consultation) error {
				assert.Equal(t, r.ID(), c.ReservationID())
				return nil
			})
		h.recorder.EXPECT().Transition("pending", "validated")

		got, err := newReservations(h).Validate(ctx, actorOf(w.ProfessionalID(), user.RoleProfessional), r.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusValidated, got.Reservation.Status())
		assert.Equal(t, w.Date(), got.Consultation.Date())
		assert.Equal(t, "09:45", got.Consultation.Time().String())
		assert.Equal(t, 45, got.Consultation.DurationMinutes())
		assert.Equal(t, w.PriceCents(), got.Consultation.PriceCents())
		assert.Equal(t, consultation.StatusActive, got.Consultation.Status())
	})

	t.Run("refused reservation cannot be validated", func(t *testing.T) {
		h := newHarness(t)
		w, r := seed(h, reservation.StatusRefused)

		_, err := newReservations(h).Validate(ctx, actorOf(w.ProfessionalID(), user.RoleProfessional), r.ID())
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, reservation.StatusRefused, r.Status())
	})

	t.Run("consultation insert failure aborts the validation", func(t *testing.T) {
		h := newHarness(t)
		w, r := seed(h, reservation.StatusPending)

		// no Transition expectation: a recorded transition fails the test
		gomock.InOrder(
			h.reservations.EXPECT().UpdateStatus(gomock.Any(), r).Return(nil),
			h.consultations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert consultation: connection reset")),
		)

		got, err := newReservations(h).Validate(ctx, actorOf(w.ProfessionalID(), user.RoleProfessional), r.ID())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.Nil(t, got)
	})

	t.Run("consultation that cannot be built leaves the reservation unwritten", func(t *testing.T) {
		h := newHarness(t)
		w, r := seed(h, reservation.StatusPending)
		broken := commands.NewReservationCommands(h.uow, consultation.Settings{DurationMinutes: 0}, h.clock, h.recorder, h.logger)

		got, err := broken.Validate(ctx, actorOf(w.ProfessionalID(), user.RoleProfessional), r.ID())
		require.Error(t, err)
		assert.ErrorIs(t, err, consultation.ErrInvalidDuration)
		assert.Nil(t, got)
	})

	t.Run("only the owning professional", func(t *testing.T) {
		for _, actor := range []user.Actor{
			actorOf(uuid.New(), user.RoleProfessional),
			actorOf(uuid.New(), user.RoleClient),
			actorOf(uuid.New(), user.RoleAdmin),
		} {
			h := newHarness(t)
			_, r := seed(h, reservation.StatusPending)

			_, err := newReservations(h).Validate(ctx, actor, r.ID())
			assert.ErrorIs(t, err, commands.ErrNotWindowOwner, actor.Role)
			assert.True(t, errs.Is(err, errs.ErrForbidden))
		}
	})

	t.Run("unknown reservation", func(t *testing.T) {
		h := newHarness(t)
		h.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := newReservations(h).Validate(ctx, actorOf(uuid.New(), user.RoleProfessional), uuid.New())
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestRefuse(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to refused", func(t *testing.T) {
		h := newHarness(t)
		w, r := seed(h, reservation.StatusPending)
		h.reservations.EXPECT().UpdateStatus(gomock.Any(), r).Return(nil)
		h.recorder.EXPECT().Transition("pending", "refused")

		got, err := newReservations(h).Refuse(ctx, actorOf(w.ProfessionalID(), user.RoleProfessional), r.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusRefused, got.Status())
		assert.False(t, got.HoldsSlot())
	})

	t.Run("validated cannot be refused", func(t *testing.T) {
		h := newHarness(t)
		w, r := seed(h, reservation.StatusValidated)

		_, err := newReservations(h).Refuse(ctx, actorOf(w.ProfessionalID(), user.RoleProfessional), r.ID())
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("client cancels a pending reservation", func(t *testing.T) {
		h := newHarness(t)
		_, r := seed(h, reservation.StatusPending)
		h.reservations.EXPECT().UpdateStatus(gomock.Any(), r).Return(nil)
		h.recorder.EXPECT().Transition("pending", "cancelled")

		got, err := newReservations(h).Cancel(ctx, actorOf(r.ClientID(), user.RoleClient), r.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, got.Status())
	})

	t.Run("cancelling a validated reservation invalidates its consultation", func(t *testing.T) {
		h := newHarness(t)
		w, r := seed(h, reservation.StatusValidated)
		c := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = r.ID() }).
			BuildConsultation(consultation.StatusActive)

		h.reservations.EXPECT().UpdateStatus(gomock.Any(), r).Return(nil)
		h.consultations.EXPECT().FindByReservationIDForUpdate(gomock.Any(), r.ID()).Return(c, nil)
		h.consultations.EXPECT().Update(gomock.Any(), c).Return(nil)
		h.recorder.EXPECT().Transition("validated", "cancelled")

		_, err := newReservations(h).Cancel(ctx, actorOf(w.ProfessionalID(), user.RoleProfessional), r.ID())
		require.NoError(t, err)
		assert.Equal(t, consultation.StatusCancelled, c.Status())
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		h := newHarness(t)
		_, r := seed(h, reservation.StatusPending)

		_, err := newReservations(h).Cancel(ctx, actorOf(uuid.New(), user.RoleClient), r.ID())
		assert.ErrorIs(t, err, commands.ErrNotReservationParty)
		assert.Equal(t, reservation.StatusPending, r.Status())
	})

	t.Run("client id under another role", func(t *testing.T) {
		h := newHarness(t)
		_, r := seed(h, reservation.StatusPending)

		_, err := newReservations(h).Cancel(ctx, actorOf(r.ClientID(), user.RoleProfessional), r.ID())
		assert.ErrorIs(t, err, commands.ErrNotReservationParty)
	})

	for _, status := range []reservation.Status{reservation.StatusRefused, reservation.StatusCancelled, reservation.StatusPaid} {
		t.Run("terminal "+status.String(), func(t *testing.T) {
			h := newHarness(t)
			_, r := seed(h, status)

			_, err := newReservations(h).Cancel(ctx, actorOf(r.ClientID(), user.RoleClient), r.ID())
			assert.True(t, errs.Is(err, errs.ErrConflict))
			assert.Equal(t, status, r.Status())
		})
	}
}
