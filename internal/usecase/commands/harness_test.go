//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/pkg/clock"
	"mindcare-booking/internal/usecase/shared"
	"mindcare-booking/tests/common/builder"
	commandsmock "mindcare-booking/tests/mock/commands"
	sharedmock "mindcare-booking/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// harness wires a UnitOfWork mock that runs the transaction body straight
// against repository mocks.
type harness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	windows       *sharedmock.MockWindowRepository
	reservations  *sharedmock.MockReservationRepository
	consultations *sharedmock.MockConsultationRepository
	recorder      *commandsmock.MockRecorder
	clock         *clock.MockClock
	logger        *slog.Logger
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	h := &harness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		windows:       sharedmock.NewMockWindowRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		consultations: sharedmock.NewMockConsultationRepository(ctrl),
		recorder:      commandsmock.NewMockRecorder(ctrl),
		clock:         clock.NewMockClock(builder.DefaultNow),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, h.tx)
	}
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	h.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	h.tx.EXPECT().Windows().Return(h.windows).AnyTimes()
	h.tx.EXPECT().Reservations().Return(h.reservations).AnyTimes()
	h.tx.EXPECT().Consultations().Return(h.consultations).AnyTimes()
	return h
}

func notFound() error {
	return infra.RepositoryError{Kind: infra.KindNotFound}
}

func duplicateKey() error {
	return infra.RepositoryError{Kind: infra.KindDuplicateKey}
}

func actorOf(id uuid.UUID, role user.Role) user.Actor {
	return user.NewActor(id, role)
}
