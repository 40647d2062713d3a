package metrics

import (
	"net/http"
	"strconv"
	"time"

	"push-delivery-engine/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const resultSent = "sent"

// Metrics implements ports.DeliveryMetrics and records HTTP request metrics.
type Metrics struct {
	gatherer prometheus.Gatherer

	sendAttempts   *prometheus.CounterVec
	fanouts        *prometheus.CounterVec
	fanoutDuration *prometheus.HistogramVec
	deduped        *prometheus.CounterVec
	invalidated    *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	httpErrors     *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		sendAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "push_send_attempts_total",
				Help: "Final outcome of each subscription delivery within a fan-out",
			},
			[]string{"role", "result", "kind"},
		),
		fanouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "push_fanout_total",
				Help: "Completed fan-outs by terminal status",
			},
			[]string{"role", "status"},
		),
		fanoutDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "push_fanout_duration_seconds",
				Help:    "Wall time of a fan-out from reservation to finalize",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"role"},
		),
		deduped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "push_deliveries_deduped_total",
				Help: "Fan-outs suppressed because the event was already reserved",
			},
			[]string{"role"},
		),
		invalidated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "push_subscriptions_invalidated_total",
				Help: "Subscriptions invalidated after a dead endpoint response",
			},
			[]string{"role", "status_code"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests received",
			},
			[]string{"endpoint", "status", "method"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "method"},
		),
		httpErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of failed HTTP requests (4xx/5xx)",
			},
			[]string{"endpoint", "status", "method"},
		),
	}

	reg.MustRegister(
		m.sendAttempts, m.fanouts, m.fanoutDuration, m.deduped, m.invalidated,
		m.httpRequests, m.httpDuration, m.httpErrors,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveAttempt(role domain.Role, sent bool, kind domain.FailureKind) {
	result := resultSent
	if !sent {
		result = "failed"
	}
	m.sendAttempts.WithLabelValues(string(role), result, string(kind)).Inc()
}

func (m *Metrics) ObserveFanout(role domain.Role, status domain.ReservationStatus, elapsed time.Duration) {
	m.fanouts.WithLabelValues(string(role), string(status)).Inc()
	m.fanoutDuration.WithLabelValues(string(role)).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveDeduped(role domain.Role) {
	m.deduped.WithLabelValues(string(role)).Inc()
}

func (m *Metrics) ObserveInvalidated(role domain.Role, statusCode int, count int64) {
	if count <= 0 {
		return
	}
	m.invalidated.WithLabelValues(string(role), strconv.Itoa(statusCode)).Add(float64(count))
}

// ObserveRequest records one served HTTP request. endpoint is the route pattern.
func (m *Metrics) ObserveRequest(endpoint, method string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(endpoint, code, method).Inc()
	m.httpDuration.WithLabelValues(endpoint, method).Observe(elapsed.Seconds())
	if status >= http.StatusBadRequest {
		m.httpErrors.WithLabelValues(endpoint, code, method).Inc()
	}
}
