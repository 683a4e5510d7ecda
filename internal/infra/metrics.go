package infra

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the counters the wizard reports.
type Metrics struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	degraded    *prometheus.CounterVec
	records     prometheus.Counter
}

// NewMetrics registers the service collectors on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bannerval",
			Name:      "validations_total",
			Help:      "Banner uploads by validation outcome.",
		}, []string{"outcome"}),
		degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bannerval",
			Name:      "extraction_degraded_total",
			Help:      "Text extractions that fell back to empty text, by reason.",
		}, []string{"reason"}),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bannerval",
			Name:      "datalayer_records_total",
			Help:      "Data layer records generated.",
		}),
	}
	reg.MustRegister(
		m.validations,
		m.degraded,
		m.records,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ValidationOutcome counts one upload. outcome is "valid", "mismatch" or "error".
func (m *Metrics) ValidationOutcome(outcome string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(outcome).Inc()
}

// ExtractionDegraded counts one fallback to empty text.
func (m *Metrics) ExtractionDegraded(reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "unknown"
	}
	m.degraded.WithLabelValues(reason).Inc()
}

// RecordsGenerated adds n produced data layer records.
func (m *Metrics) RecordsGenerated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.records.Add(float64(n))
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
