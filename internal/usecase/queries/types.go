package queries

import (
	"time"

	"mindcare-booking/internal/domain/availability"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type WindowView struct {
	ID             uuid.UUID              `json:"id"`
	ProfessionalID uuid.UUID              `json:"professional_id"`
	Date           availability.Date      `json:"date"`
	StartTime      availability.TimeOfDay `json:"start_time"`
	EndTime        availability.TimeOfDay `json:"end_time"`
	PriceCents     int64                  `json:"price_cents"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type FreeSlotsView struct {
	WindowID        uuid.UUID                `json:"window_id"`
	Date            availability.Date        `json:"date"`
	DurationMinutes int                      `json:"duration_minutes"`
	Slots           []availability.TimeOfDay `json:"slots"`
}

type ReservationView struct {
	ID             uuid.UUID              `json:"id"`
	WindowID       uuid.UUID              `json:"availability_window_id"`
	ClientID       uuid.UUID              `json:"client_id"`
	ProfessionalID uuid.UUID              `json:"professional_id"`
	Date           availability.Date      `json:"date"`
	RequestedTime  availability.TimeOfDay `json:"requested_time"`
	Status         string                 `json:"status"`
	PriceCents     int64                  `json:"price_cents"`
	PaymentRef     *string                `json:"payment_ref,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type ConsultationView struct {
	ID              uuid.UUID              `json:"id"`
	ReservationID   uuid.UUID              `json:"reservation_id"`
	Date            availability.Date      `json:"date"`
	Time            availability.TimeOfDay `json:"time"`
	DurationMinutes int                    `json:"duration_minutes"`
	PriceCents      int64                  `json:"price_cents"`
	VideoLink       string                 `json:"video_link"`
	Status          string                 `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type WindowFilter struct {
	From *availability.Date
	To   *availability.Date
}
