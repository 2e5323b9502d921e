// Package telemetry provides optional observability for frond's
// lifecycle subsystem: Prometheus metrics and OpenTelemetry tracing.
//
// Both types implement lifecycle.Hook. The core never logs or counts
// on its own; installing a hook is the only way to watch detector
// activity:
//
//	m := telemetry.NewMetrics(telemetry.WithNamespace("myapp"))
//	lc.Use(m)
//
//	tr := telemetry.NewTracer()
//	lc.Use(tr)
//	r.OnNavigate(tr.NavigateStarted)
package telemetry
