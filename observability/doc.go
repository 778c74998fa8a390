// Package observability wires OpenTelemetry tracing and metrics for gwkit.
//
// Telemetry is off unless Config.Enabled is set; with it off, spans and
// instruments fall back to the global no-op providers.
//
//	tel, err := observability.Init(ctx, "gwutil", version.GetShortVersion(), cfg.Telemetry)
//	defer tel.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanACLCheck)
//	defer span.End()
//
//	metrics, err := observability.NewMetrics(observability.Meter("gwkit"))
//	metrics.RecordDecision(ctx, "deny")
package observability
