package queries

import (
	"context"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound  = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrConsultationNotFound = errs.Mark(errs.New("consultation not found"), errs.ErrNotFound)
	ErrReservationAccess    = errs.Mark(errs.New("reservation access denied"), errs.ErrForbidden)
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, page Page) ([]*ReservationView, error)
	ListByProfessional(ctx context.Context, professionalID uuid.UUID, page Page) ([]*ReservationView, error)
	ListAll(ctx context.Context, page Page) ([]*ReservationView, error)
	// HeldTimes lists requested times of slot-holding reservations of a window
	HeldTimes(ctx context.Context, windowID uuid.UUID) ([]availability.TimeOfDay, error)
}

type ConsultationReadStore interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*ConsultationView, error)
}

type ReservationQueries interface {
	GetReservation(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	// ListMine returns the client's own reservations, or those on a
	// professional's windows; admins see everything.
	ListMine(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
	GetConsultation(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*ConsultationView, error)
}

type reservationQueriesImpl struct {
	reservations  ReservationReadStore
	consultations ConsultationReadStore
}

func NewReservationQueries(reservations ReservationReadStore, consultations ConsultationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations, consultations: consultations}
}

func (q *reservationQueriesImpl) GetReservation(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	v, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !canSee(actor, v) {
		return nil, ErrReservationAccess
	}
	return v, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	page, err := NewPage(cursor, limit)
	if err != nil {
		return nil, nil, err
	}

	var rows []*ReservationView
	switch {
	case actor.IsClient():
		rows, err = q.reservations.ListByClient(ctx, actor.UserID, page)
	case actor.IsProfessional():
		rows, err = q.reservations.ListByProfessional(ctx, actor.UserID, page)
	case actor.IsAdmin():
		rows, err = q.reservations.ListAll(ctx, page)
	default:
		return nil, nil, ErrReservationAccess
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if size := page.Limit - 1; len(rows) > size {
		last := rows[size-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:size]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) GetConsultation(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*ConsultationView, error) {
	if _, err := q.GetReservation(ctx, actor, reservationID); err != nil {
		return nil, err
	}

	c, err := q.consultations.FindByReservationID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return c, nil
}

func canSee(actor user.Actor, v *ReservationView) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsClient():
		return actor.Is(v.ClientID)
	case actor.IsProfessional():
		return actor.Is(v.ProfessionalID)
	default:
		return false
	}
}
