package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/frond-ui/frond/pkg/dom"
	"github.com/frond-ui/frond/pkg/lifecycle"
)

// MetricsConfig configures the Prometheus lifecycle metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "frond").
	Namespace string

	// Subsystem is the metrics subsystem (default: "lifecycle").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for batch duration seconds.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus lifecycle metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the batch-duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics counts lifecycle activity. It implements lifecycle.Hook.
type Metrics struct {
	mounts        prometheus.Counter
	batches       prometheus.Counter
	removalsSeen  prometheus.Counter
	movesSkipped  prometheus.Counter
	nodesCleaned  prometheus.Counter
	cleanupsRun   prometheus.Counter
	cleanupPanics prometheus.Counter
	mountedRoots  prometheus.Gauge
	batchDuration prometheus.Histogram

	mu    sync.Mutex
	roots map[*dom.Node]struct{}
}

// NewMetrics creates and registers the lifecycle metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := MetricsConfig{
		Namespace: "frond",
		Subsystem: "lifecycle",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: cfg.ConstLabels,
		})
	}

	return &Metrics{
		mounts:        counter("mounts_total", "Mount operations performed."),
		batches:       counter("mutation_batches_total", "Mutation batches processed by the detector."),
		removalsSeen:  counter("removals_seen_total", "Nodes reported as removed, before the connectivity check."),
		movesSkipped:  counter("moves_skipped_total", "Removed nodes found reconnected at delivery time."),
		nodesCleaned:  counter("nodes_cleaned_total", "Nodes that had at least one cleanup run."),
		cleanupsRun:   counter("cleanups_run_total", "Cleanup callbacks invoked."),
		cleanupPanics: counter("cleanup_panics_total", "Cleanup callbacks that panicked and were recovered."),
		mountedRoots: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "mounted_roots",
			Help:        "Distinct roots mounted so far.",
			ConstLabels: cfg.ConstLabels,
		}),
		roots: make(map[*dom.Node]struct{}),
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "batch_duration_seconds",
			Help:        "Time spent processing one mutation batch.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
	}
}

// MountStarted implements lifecycle.Hook. The gauge rises on the
// first mount of each root; repeat mounts only count as operations.
func (m *Metrics) MountStarted(root *dom.Node) func() {
	return func() {
		m.mounts.Inc()

		m.mu.Lock()
		_, known := m.roots[root]
		if !known {
			m.roots[root] = struct{}{}
		}
		m.mu.Unlock()
		if !known {
			m.mountedRoots.Inc()
		}
	}
}

// BatchStarted implements lifecycle.Hook.
func (m *Metrics) BatchStarted(records int) func(lifecycle.BatchStats) {
	start := time.Now()
	return func(s lifecycle.BatchStats) {
		m.batches.Inc()
		m.removalsSeen.Add(float64(s.RemovalsSeen))
		m.movesSkipped.Add(float64(s.MovesSkipped))
		m.nodesCleaned.Add(float64(s.NodesCleaned))
		m.cleanupsRun.Add(float64(s.CleanupsRun))
		m.cleanupPanics.Add(float64(s.Recovered))
		m.batchDuration.Observe(time.Since(start).Seconds())
	}
}
