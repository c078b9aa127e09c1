//go:build e2e

package booking_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/handler/dto/request"
	"mindcare-booking/internal/handler/dto/response"
	"mindcare-booking/tests/common/authtest"
	"mindcare-booking/tests/common/dbtest"
	"mindcare-booking/tests/common/httptest"
	"mindcare-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	windowsURL      = "/api/windows"
	slotsURL        = "/api/windows/%s/slots"
	bookingsURL     = "/api/windows/%s/bookings"
	reservationURL  = "/api/reservations/%s"
	validateURL     = "/api/reservations/%s/validate"
	cancelURL       = "/api/reservations/%s/cancel"
	consultationURL = "/api/reservations/%s/consultation"
	webhookURL      = "/api/payments/webhook"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// windowDate keeps every slot in the future regardless of when the suite runs.
func windowDate() string {
	return time.Now().UTC().AddDate(0, 0, 2).Format(time.DateOnly)
}

func (s *BookingSuite) publishWindow(t *testing.T, pro authtest.Actor) uuid.UUID {
	t.Helper()
	price := int64(6000)
	body := request.WindowRequest{Date: windowDate(), StartTime: "09:00", EndTime: "11:15", PriceCents: &price}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, windowsURL, body, pro.Token)
	var created response.WindowResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created.ID
}

func (s *BookingSuite) book(t *testing.T, client authtest.Actor, windowID uuid.UUID, at string) response.ReservationResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, windowID), request.BookSlotRequest{Time: at}, client.Token)
	var res response.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *BookingSuite) signedWebhook(t *testing.T, reservationID uuid.UUID, paymentIntent string) *nethttptest.ResponseRecorder {
	t.Helper()
	payload := []byte(fmt.Sprintf(`{
		"id": "evt_e2e",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_e2e",
			"object": "checkout.session",
			"client_reference_id": %q,
			"payment_status": "paid",
			"payment_intent": %q
		}}
	}`, reservationID, paymentIntent))

	now := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(s.Config.Payment.StripeWebhookSecret))
	_, _ = fmt.Fprintf(mac, "%d.%s", now, payload)
	signature := fmt.Sprintf("t=%d,v1=%s", now, hex.EncodeToString(mac.Sum(nil)))

	return postWebhook(s, payload, signature)
}

func postWebhook(s *BookingSuite, payload []byte, signature string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodPost, webhookURL, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", signature)
	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// TestBookingLifecycle - window to paid consultation
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: booked slot disappears, validation links a consultation, webhook pays", func() {
		t := s.T()
		pro := s.jwt.NewActor(t, user.RoleProfessional)
		client := s.jwt.NewActor(t, user.RoleClient)
		windowID := s.publishWindow(t, pro)

		res := s.book(t, client, windowID, "09:45")
		require.Equal(t, "pending", res.Status)
		require.Equal(t, int64(6000), res.PriceCents)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, windowID), nil, "")
		var slots response.FreeSlotsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &slots)
		if diff := cmp.Diff([]string{"09:00", "10:30"}, slots.Slots); diff != "" {
			t.Errorf("free slots mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(validateURL, res.ID), nil, pro.Token)
		var validated response.ValidateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &validated)
		assert.Equal(t, "validated", validated.Reservation.Status)
		assert.Equal(t, "09:45", validated.Consultation.Time)
		assert.Equal(t, 45, validated.Consultation.DurationMinutes)
		assert.Equal(t, "active", validated.Consultation.Status)

		w = s.signedWebhook(t, res.ID, "pi_e2e_1")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "paid", dbtest.ReservationStatus(t, s.DB, res.ID))

		// the provider retries deliveries
		w = s.signedWebhook(t, res.ID, "pi_e2e_1")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, res.ID), nil, client.Token)
		var got response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "paid", got.Status)
		require.NotNil(t, got.PaymentRef)
		assert.Equal(t, "pi_e2e_1", *got.PaymentRef)
	})

	s.Run("Cancelling a validated reservation invalidates the consultation and frees the slot", func() {
		t := s.T()
		pro := s.jwt.NewActor(t, user.RoleProfessional)
		client := s.jwt.NewActor(t, user.RoleClient)
		windowID := s.publishWindow(t, pro)
		res := s.book(t, client, windowID, "09:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(validateURL, res.ID), nil, pro.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, res.ID), nil, client.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		assert.Equal(t, "cancelled", dbtest.ReservationStatus(t, s.DB, res.ID))
		assert.Equal(t, "cancelled", dbtest.ConsultationStatus(t, s.DB, res.ID))
		assert.Equal(t, 0, dbtest.CountSlotHolding(t, s.DB, windowID))

		again := s.book(t, s.jwt.NewActor(t, user.RoleClient), windowID, "09:00")
		assert.Equal(t, "pending", again.Status)
	})

	s.Run("Error case: webhook for a pending reservation is rejected", func() {
		t := s.T()
		pro := s.jwt.NewActor(t, user.RoleProfessional)
		client := s.jwt.NewActor(t, user.RoleClient)
		windowID := s.publishWindow(t, pro)
		res := s.book(t, client, windowID, "10:30")

		w := s.signedWebhook(t, res.ID, "pi_e2e_2")
		httptest.AssertErrorCode(t, w, http.StatusConflict, "conflict")
		assert.Equal(t, "pending", dbtest.ReservationStatus(t, s.DB, res.ID))
	})

	s.Run("Error case: slots of a past window cannot be booked", func() {
		t := s.T()
		pro := s.jwt.NewActor(t, user.RoleProfessional)
		windowID := dbtest.InsertWindow(t, s.DB, pro.User.UserID, time.Now().UTC().AddDate(0, 0, -1), "09:00", "11:15", 6000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, windowID), request.BookSlotRequest{Time: "09:00"}, s.jwt.NewActor(t, user.RoleClient).Token)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "slot_unavailable")
		assert.Equal(t, 0, dbtest.CountSlotHolding(t, s.DB, windowID))
	})

	s.Run("Error case: forged webhook signature", func() {
		t := s.T()
		w := postWebhook(s, []byte(`{"type":"checkout.session.completed"}`), "t=1,v1=deadbeef")
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "validation")
	})
}

// =============================================================================
// TestConcurrentBooking - one sub-slot, many clients
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Exactly one of the concurrent requests for a slot succeeds", func() {
		t := s.T()
		pro := s.jwt.NewActor(t, user.RoleProfessional)
		windowID := s.publishWindow(t, pro)

		const clients = 8
		tokens := make([]string, clients)
		for i := range tokens {
			tokens[i] = s.jwt.NewActor(t, user.RoleClient).Token
		}

		codes := make([]int, clients)
		bodies := make([]string, clients)
		var wg sync.WaitGroup
		for i := range clients {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				req := nethttptest.NewRequest(http.MethodPost, fmt.Sprintf(bookingsURL, windowID), bytes.NewBufferString(`{"time":"09:45"}`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+tokens[i])
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				codes[i] = w.Code
				bodies[i] = w.Body.String()
			}(i)
		}
		wg.Wait()

		created := 0
		for i, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				assert.Contains(t, bodies[i], "slot_unavailable")
			default:
				t.Errorf("unexpected status %d: %s", code, bodies[i])
			}
		}
		assert.Equal(t, 1, created)
		assert.Equal(t, 1, dbtest.CountSlotHolding(t, s.DB, windowID))
	})
}

// =============================================================================
// TestWindowEditing - reservations pin their window
// =============================================================================

func (s *BookingSuite) TestWindowEditing() {
	s.Run("Error case: window with an active reservation cannot be edited or deleted", func() {
		t := s.T()
		pro := s.jwt.NewActor(t, user.RoleProfessional)
		windowID := s.publishWindow(t, pro)
		s.book(t, s.jwt.NewActor(t, user.RoleClient), windowID, "09:00")

		price := int64(7000)
		body := request.WindowRequest{Date: windowDate(), StartTime: "10:00", EndTime: "12:00", PriceCents: &price}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, windowsURL+"/"+windowID.String(), body, pro.Token)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "conflict")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, windowsURL+"/"+windowID.String(), nil, pro.Token)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "conflict")
	})

	s.Run("Error case: a cancelled reservation still pins the window times but not its deletion", func() {
		t := s.T()
		pro := s.jwt.NewActor(t, user.RoleProfessional)
		client := s.jwt.NewActor(t, user.RoleClient)
		windowID := s.publishWindow(t, pro)
		res := s.book(t, client, windowID, "09:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, res.ID), nil, client.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		price := int64(7000)
		body := request.WindowRequest{Date: windowDate(), StartTime: "10:00", EndTime: "12:00", PriceCents: &price}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, windowsURL+"/"+windowID.String(), body, pro.Token)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "conflict")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, windowsURL+"/"+windowID.String(), nil, pro.Token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		assert.Equal(t, "cancelled", dbtest.ReservationStatus(t, s.DB, res.ID))
	})

	s.Run("Normal case: an empty window can be deleted and stops offering slots", func() {
		t := s.T()
		pro := s.jwt.NewActor(t, user.RoleProfessional)
		windowID := s.publishWindow(t, pro)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, windowsURL+"/"+windowID.String(), nil, pro.Token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, windowID), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "not_found")
	})

	s.Run("Error case: another professional cannot edit the window", func() {
		t := s.T()
		windowID := s.publishWindow(t, s.jwt.NewActor(t, user.RoleProfessional))
		other := s.jwt.NewActor(t, user.RoleProfessional)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, windowsURL+"/"+windowID.String(), nil, other.Token)
		httptest.AssertErrorCode(t, w, http.StatusForbidden, "forbidden")
	})
}

func (s *BookingSuite) TestConsultationAccess() {
	s.Run("Error case: consultation is absent until validation", func() {
		t := s.T()
		pro := s.jwt.NewActor(t, user.RoleProfessional)
		client := s.jwt.NewActor(t, user.RoleClient)
		res := s.book(t, client, s.publishWindow(t, pro), "09:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(consultationURL, res.ID), nil, client.Token)
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "not_found")
	})
}
