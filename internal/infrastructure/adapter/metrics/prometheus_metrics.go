package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "affiliate"

// Metrics holds the Prometheus collectors of the service and implements core.Metrics
type Metrics struct {
	registry *prometheus.Registry

	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	registrations *prometheus.CounterVec
	logins        *prometheus.CounterVec
	payments      *prometheus.CounterVec
	followUps     *prometheus.CounterVec
}

// NewMetrics creates the collectors on a private registry together with
// the Go runtime and process collectors
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		registrations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Registrations by payment method and result",
			},
			[]string{"payment_method", "result"},
		),
		logins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Login attempts by result",
			},
			[]string{"result"},
		),
		payments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_total",
				Help:      "Payment events by kind and result",
			},
			[]string{"kind", "result"},
		),
		followUps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "followups_total",
				Help:      "Best-effort follow-ups by name and result",
			},
			[]string{"name", "result"},
		),
	}
}

// RegisterDBStats exports connection pool statistics of db
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegistrationCompleted implements core.Metrics
func (m *Metrics) RegistrationCompleted(paymentMethod, result string) {
	m.registrations.WithLabelValues(paymentMethod, result).Inc()
}

// LoginAttempted implements core.Metrics
func (m *Metrics) LoginAttempted(result string) {
	m.logins.WithLabelValues(result).Inc()
}

// PaymentProcessed implements core.Metrics
func (m *Metrics) PaymentProcessed(kind, result string) {
	m.payments.WithLabelValues(kind, result).Inc()
}

// FollowUpFinished implements core.Metrics
func (m *Metrics) FollowUpFinished(name, result string) {
	m.followUps.WithLabelValues(name, result).Inc()
}
