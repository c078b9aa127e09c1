//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mindcare-booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("counters are isolated per instance", func(t *testing.T) {
		a := metrics.New("booking")
		b := metrics.New("booking")

		a.BookingOutcome(metrics.OutcomeBooked)
		a.BookingOutcome(metrics.OutcomeBooked)
		a.BookingOutcome(metrics.OutcomeUnavailable)

		n, err := testutil.GatherAndCount(a.Registry(), "booking_slot_bookings_total")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = testutil.GatherAndCount(b.Registry(), "booking_slot_bookings_total")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("handler exposes registered series", func(t *testing.T) {
		m := metrics.New("booking")
		m.Transition("pending", "validated")
		m.PaymentEvent("checkout", "ok")
		m.ObserveHTTP("GET", "/api/windows/:id/slots", "200", 15*time.Millisecond)

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.Contains(body, `booking_reservation_transitions_total{from="pending",to="validated"} 1`))
		assert.True(t, strings.Contains(body, `booking_payment_events_total{kind="checkout",result="ok"} 1`))
		assert.True(t, strings.Contains(body, "booking_http_request_duration_seconds_bucket"))
	})
}
