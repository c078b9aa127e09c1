//go:build unit || e2e

package builder

import (
	"time"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	WindowID       uuid.UUID
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	Date           availability.Date
	RequestedTime  availability.TimeOfDay
	Status         reservation.Status
	PriceCents     int64
	PaymentRef     string
	Now            time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:             uuid.New(),
		WindowID:       uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: uuid.New(),
		Date:           availability.DateOf(DefaultNow),
		RequestedTime:  availability.MustTimeOfDay("09:45"),
		Status:         reservation.StatusPending,
		PriceCents:     6000,
		Now:            DefaultNow,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// ForWindow books into w at the given start time.
func (b *ReservationBuilder) ForWindow(w *availability.Window, at string) *ReservationBuilder {
	b.WindowID = w.ID()
	b.ProfessionalID = w.ProfessionalID()
	b.Date = w.Date()
	b.PriceCents = w.PriceCents()
	b.RequestedTime = availability.MustTimeOfDay(at)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	if s == reservation.StatusPaid && b.PaymentRef == "" {
		b.PaymentRef = "pi_test_" + b.ID.String()[:8]
	}
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	price, err := reservation.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.WindowID, b.ClientID, b.RequestedTime, b.Date.At(b.RequestedTime, time.UTC), price, b.Now)
}

func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	price, _ := reservation.NewMoney(b.PriceCents)
	return reservation.ReconstructReservation(b.ID, b.WindowID, b.ClientID, b.RequestedTime, b.Status, price, b.PaymentRef, b.Now, b.Now)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	v := &queries.ReservationView{
		ID:             b.ID,
		WindowID:       b.WindowID,
		ClientID:       b.ClientID,
		ProfessionalID: b.ProfessionalID,
		Date:           b.Date,
		RequestedTime:  b.RequestedTime,
		Status:         b.Status.String(),
		PriceCents:     b.PriceCents,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
	if b.PaymentRef != "" {
		ref := b.PaymentRef
		v.PaymentRef = &ref
	}
	return v
}

func (b *ReservationBuilder) BuildConsultation(status consultation.Status) *consultation.Consultation {
	return consultation.Reconstruct(uuid.New(), b.ID, b.Date, b.RequestedTime, 45, b.PriceCents, "", status, b.Now, b.Now)
}

func (b *ReservationBuilder) BuildConsultationView() *queries.ConsultationView {
	return &queries.ConsultationView{
		ID:              uuid.New(),
		ReservationID:   b.ID,
		Date:            b.Date,
		Time:            b.RequestedTime,
		DurationMinutes: 45,
		PriceCents:      b.PriceCents,
		Status:          string(consultation.StatusActive),
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}
