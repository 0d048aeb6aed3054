// Package metrics provides Prometheus metrics for the feedback engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the feedback engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Feedback generation outcomes.
	feedbackGenerated *prometheus.CounterVec // by tier
	issuesEmitted     *prometheus.CounterVec // by category

	// Input quality.
	canonicalizeFallbacks prometheus.Counter
	unrecognizedInputs    prometheus.Counter

	// Score distribution and generation cost.
	finalScore        prometheus.Histogram
	generationLatency prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "sori",
		subsystem:        "feedback",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.feedbackGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "generated_total",
		Help:      "Total number of feedback results generated, by tier",
	}, []string{"tier"})

	m.issuesEmitted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "issues_emitted_total",
		Help:      "Total number of coaching issues surfaced, by rule category",
	}, []string{"category"})

	m.canonicalizeFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "canonicalize_fallbacks_total",
		Help:      "Total number of raw payloads that degraded to the all-default model",
	})

	m.unrecognizedInputs = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unrecognized_inputs_total",
		Help:      "Total number of generate calls that fell back to the fixed default result",
	})

	m.finalScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "final_score",
		Help:      "Distribution of rounded final scores",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})

	m.generationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "generation_latency_milliseconds",
		Help:      "Histogram of end-to-end feedback generation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordFeedbackGenerated increments the per-tier generation counter.
func RecordFeedbackGenerated(tier string) {
	globalManager.feedbackGenerated.WithLabelValues(tier).Inc()
}

// RecordIssueEmitted increments the per-category issue counter.
func RecordIssueEmitted(category string) {
	globalManager.issuesEmitted.WithLabelValues(category).Inc()
}

// RecordCanonicalizeFallback increments the degraded-payload counter.
func RecordCanonicalizeFallback() {
	globalManager.canonicalizeFallbacks.Inc()
}

// RecordUnrecognizedInput increments the fallback-result counter.
func RecordUnrecognizedInput() {
	globalManager.unrecognizedInputs.Inc()
}

// ObserveFinalScore records a rounded final score.
func ObserveFinalScore(score float64) {
	globalManager.finalScore.Observe(score)
}

// RecordGenerationLatency records feedback generation latency.
func RecordGenerationLatency(latencyMs float64) {
	globalManager.generationLatency.Observe(latencyMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
