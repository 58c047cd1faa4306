package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Booking(t *testing.T) {
	m := New("test")
	m.Booking(BookingCreated)
	m.Booking(BookingCreated)
	m.Booking(BookingConflict)
	m.BookingsCleared(3)
	m.BookingsCleared(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookings.WithLabelValues(BookingCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues(BookingConflict)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.bookings.WithLabelValues(BookingsCleared)))
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := New("test")
	m.ObserveHTTP(http.MethodPost, "/api/v1/bookings", http.StatusCreated, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodPost, "/api/v1/bookings", "201")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("test")
	m.Booking(BookingConfirmed)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `turfly_booking_events_total{outcome="confirmed",service="test"} 1`))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.Booking(BookingCreated)
	m.BookingsCleared(2)
	m.ObserveHTTP(http.MethodGet, "/", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}
