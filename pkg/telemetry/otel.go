package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/frond-ui/frond/pkg/dom"
	"github.com/frond-ui/frond/pkg/lifecycle"
)

// defaultTracerName is the tracer name used when none is configured.
const defaultTracerName = "frond"

// TracerConfig configures the OpenTelemetry lifecycle tracer.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "frond").
	TracerName string

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TracerOption configures the OpenTelemetry lifecycle tracer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// Tracer emits spans for mounts, navigations, and detector batches.
// It implements lifecycle.Hook and plugs into Router.OnNavigate.
//
// The tracer uses the global OpenTelemetry tracer provider; configure
// an exporter in main() before building the UI.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a lifecycle tracer.
func NewTracer(opts ...TracerOption) *Tracer {
	cfg := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.Tracer(cfg.TracerName)
	}
	return &Tracer{tracer: cfg.tracer}
}

// MountStarted implements lifecycle.Hook.
func (t *Tracer) MountStarted(root *dom.Node) func() {
	_, span := t.tracer.Start(context.Background(), "frond.mount",
		trace.WithAttributes(attribute.String("frond.root.tag", root.Tag())))
	return func() {
		span.End()
	}
}

// BatchStarted implements lifecycle.Hook.
func (t *Tracer) BatchStarted(records int) func(lifecycle.BatchStats) {
	_, span := t.tracer.Start(context.Background(), "frond.detector.batch",
		trace.WithAttributes(attribute.Int("frond.batch.records", records)))
	return func(s lifecycle.BatchStats) {
		span.SetAttributes(
			attribute.Int("frond.batch.removals_seen", s.RemovalsSeen),
			attribute.Int("frond.batch.moves_skipped", s.MovesSkipped),
			attribute.Int("frond.batch.nodes_cleaned", s.NodesCleaned),
			attribute.Int("frond.batch.cleanups_run", s.CleanupsRun),
			attribute.Int("frond.batch.cleanup_panics", s.Recovered),
		)
		span.End()
	}
}

// NavigateStarted wraps a router navigation in a span. Install with
// Router.OnNavigate.
func (t *Tracer) NavigateStarted(path string) func() {
	_, span := t.tracer.Start(context.Background(), "frond.router.navigate",
		trace.WithAttributes(attribute.String("frond.route.path", path)))
	return func() {
		span.End()
	}
}
