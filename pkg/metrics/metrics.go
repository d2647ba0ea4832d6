package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome значения label "outcome" для запросов к backend
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BackendFetchesTotal *prometheus.CounterVec
	AvailabilityChecks  *prometheus.CounterVec
}

// New регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		BackendFetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "gym_backend_fetches_total",
				Help:        "Trainer schedule fetches against the gym backend by outcome",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
		AvailabilityChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_checks_total",
				Help:        "Trainer availability decisions by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BackendFetchesTotal,
		m.AvailabilityChecks,
	)

	return m
}

// ObserveFetch фиксирует результат запроса расписания тренера
// Безопасен для nil (метрики выключены)
func (m *Metrics) ObserveFetch(outcome string) {
	if m == nil {
		return
	}
	m.BackendFetchesTotal.WithLabelValues(outcome).Inc()
}

// ObserveAvailability фиксирует решение о доступности
func (m *Metrics) ObserveAvailability(available bool) {
	if m == nil {
		return
	}
	result := "busy"
	if available {
		result = "available"
	}
	m.AvailabilityChecks.WithLabelValues(result).Inc()
}
