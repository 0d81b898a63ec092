// Package metrics exposes Prometheus instrumentation of the shortcut pipeline.
package metrics

import (
	"strconv"
	"time"

	"navshortcut/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "navshortcut"

// PipelineMetrics implements service.PipelineMetrics on a Prometheus registry.
type PipelineMetrics struct {
	requests        *prometheus.CounterVec
	resolveDuration *prometheus.HistogramVec
	composeDuration prometheus.Histogram
	fetchesInFlight prometheus.Gauge
}

var _ service.PipelineMetrics = (*PipelineMetrics)(nil)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewPipelineMetrics creates the pipeline collectors and registers them with registry.
func NewPipelineMetrics(registry prometheus.Registerer) *PipelineMetrics {
	m := &PipelineMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shortcut",
			Name:      "requests_total",
			Help:      "Shortcut requests by outcome",
		}, []string{"outcome"}),
		resolveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "shortcut",
			Name:      "resolve_duration_seconds",
			Help:      "Time spent fetching an address and its photo from the store",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"found"}),
		composeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "shortcut",
			Name:      "compose_duration_seconds",
			Help:      "Time spent rendering a shortcut icon on the interactive loop",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		fetchesInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "shortcut",
			Name:      "fetches_in_flight",
			Help:      "Address fetches currently running in the background pool",
		}),
	}

	registry.MustRegister(
		m.requests,
		m.resolveDuration,
		m.composeDuration,
		m.fetchesInFlight,
	)

	return m
}

// ObserveResolve records one address fetch.
func (m *PipelineMetrics) ObserveResolve(found bool, elapsed time.Duration) {
	m.resolveDuration.WithLabelValues(strconv.FormatBool(found)).Observe(elapsed.Seconds())
}

// ObserveCompose records one icon composition.
func (m *PipelineMetrics) ObserveCompose(elapsed time.Duration) {
	m.composeDuration.Observe(elapsed.Seconds())
}

// CountOutcome counts a finished shortcut request.
func (m *PipelineMetrics) CountOutcome(outcome string) {
	m.requests.WithLabelValues(outcome).Inc()
}

// FetchStarted marks a background fetch as running.
func (m *PipelineMetrics) FetchStarted() {
	m.fetchesInFlight.Inc()
}

// FetchFinished marks a background fetch as done.
func (m *PipelineMetrics) FetchFinished() {
	m.fetchesInFlight.Dec()
}
