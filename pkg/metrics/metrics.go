package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Booking lifecycle outcomes counted by Metrics.Booking.
const (
	BookingCreated   = "created"
	BookingConflict  = "conflict"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingsCleared  = "cleared"
)

// Metrics owns a private registry so several instances can coexist in tests.
// All methods are safe on a nil receiver, which disables collection.
type Metrics struct {
	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	bookings     *prometheus.CounterVec
	kafka        *prometheus.CounterVec
}

func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "turfly",
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, route and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "turfly",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "turfly",
			Name:        "booking_events_total",
			Help:        "Booking lifecycle outcomes.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		kafka: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "turfly",
			Name:        "kafka_messages_total",
			Help:        "Kafka messages by direction and result.",
			ConstLabels: labels,
		}, []string{"direction", "result"}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookings,
		m.kafka,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) Booking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) BookingsCleared(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.bookings.WithLabelValues(BookingsCleared).Add(float64(n))
}

// KafkaMessage counts a produced or consumed message. direction is
// "publish" or "consume".
func (m *Metrics) KafkaMessage(direction string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.kafka.WithLabelValues(direction, result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
