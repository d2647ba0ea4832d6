package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveFetch(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveFetch(OutcomeSuccess)
	m.ObserveFetch(OutcomeSuccess)
	m.ObserveFetch(OutcomeTimeout)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BackendFetchesTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendFetchesTotal.WithLabelValues(OutcomeTimeout)))
}

func TestObserveAvailability(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveAvailability(true)
	m.ObserveAvailability(false)
	m.ObserveAvailability(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AvailabilityChecks.WithLabelValues("available")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AvailabilityChecks.WithLabelValues("busy")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveFetch(OutcomeError)
		m.ObserveAvailability(true)
	})
}
