package response

import (
	"time"

	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/usecase/commands"
	"mindcare-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	WindowID       uuid.UUID  `json:"availability_window_id"`
	ClientID       uuid.UUID  `json:"client_id"`
	ProfessionalID *uuid.UUID `json:"professional_id,omitempty"`
	Date           string     `json:"date,omitempty"`
	RequestedTime  string     `json:"requested_time"`
	Status         string     `json:"status"`
	PriceCents     int64      `json:"price_cents"`
	PaymentRef     *string    `json:"payment_ref,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

type ConsultationResponse struct {
	ID              uuid.UUID `json:"id"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	VideoLink       string    `json:"video_link"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ValidateResponse struct {
	Reservation  *ReservationResponse  `json:"reservation"`
	Consultation *ConsultationResponse `json:"consultation"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// FromReservation maps a freshly written aggregate; window-derived fields
// are left empty and can be read back through GET /reservations/:id.
func FromReservation(r *reservation.Reservation) *ReservationResponse {
	res := &ReservationResponse{
		ID:            r.ID(),
		WindowID:      r.WindowID(),
		ClientID:      r.ClientID(),
		RequestedTime: r.RequestedTime().String(),
		Status:        r.Status().String(),
		PriceCents:    r.Price().Cents(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
	if ref := r.PaymentRef(); ref != "" {
		res.PaymentRef = &ref
	}
	return res
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var res ReservationResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	if v.ProfessionalID != uuid.Nil {
		pid := v.ProfessionalID
		res.ProfessionalID = &pid
	}
	return &res, nil
}

func FromReservationViews(vs []*queries.ReservationView, next *queries.Cursor) (*ReservationListResponse, error) {
	items := make([]*ReservationResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	res := &ReservationListResponse{Items: items}
	if next != nil && next.After != "" {
		res.NextCursor = &next.After
	}
	return res, nil
}

func FromConsultation(c *consultation.Consultation) *ConsultationResponse {
	return &ConsultationResponse{
		ID:              c.ID(),
		ReservationID:   c.ReservationID(),
		Date:            c.Date().String(),
		Time:            c.Time().String(),
		DurationMinutes: c.DurationMinutes(),
		PriceCents:      c.PriceCents(),
		VideoLink:       c.VideoLink(),
		Status:          string(c.Status()),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func FromConsultationView(v *queries.ConsultationView) (*ConsultationResponse, error) {
	var res ConsultationResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromValidateResult(r *commands.ValidateResult) *ValidateResponse {
	return &ValidateResponse{
		Reservation:  FromReservation(r.Reservation),
		Consultation: FromConsultation(r.Consultation),
	}
}

func FromCheckoutSession(s *commands.CheckoutSession) *CheckoutResponse {
	return &CheckoutResponse{SessionID: s.SessionID, CheckoutURL: s.CheckoutURL}
}
