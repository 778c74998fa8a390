package observability

import (
	"context"
	"fmt"

	"github.com/kbukum/gwkit/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// InitMeter installs a global meter provider exporting to the OTLP HTTP
// endpoint every cfg.Interval.
func InitMeter(ctx context.Context, res *resource.Resource, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Debug("meter initialized", logger.Fields(
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricACLDecisions             = "acl.decisions"
	MetricDialPrefixNormalizations = "dialprefix.normalizations"
	MetricWireDecodes              = "wire.decodes"
	MetricErrorTotal               = "error.total"
)

// Metrics holds the gwkit counters. A nil *Metrics records nothing.
type Metrics struct {
	decisions      metric.Int64Counter
	normalizations metric.Int64Counter
	decodes        metric.Int64Counter
	errorTotal     metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	decisions, err := meter.Int64Counter(MetricACLDecisions,
		metric.WithDescription("Access policy decisions by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricACLDecisions, err)
	}

	normalizations, err := meter.Int64Counter(MetricDialPrefixNormalizations,
		metric.WithDescription("Dial prefix normalizations by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricDialPrefixNormalizations, err)
	}

	decodes, err := meter.Int64Counter(MetricWireDecodes,
		metric.WithDescription("Varint decodes by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricWireDecodes, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrorTotal,
		metric.WithDescription("Total errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrorTotal, err)
	}

	return &Metrics{
		decisions:      decisions,
		normalizations: normalizations,
		decodes:        decodes,
		errorTotal:     errorTotal,
	}, nil
}

// RecordDecision counts one access policy decision.
func (m *Metrics) RecordDecision(ctx context.Context, decision string) {
	if m == nil {
		return
	}
	m.decisions.Add(ctx, 1, metric.WithAttributes(attribute.String("decision", decision)))
}

// RecordNormalization counts one normalization; outcome is "rewritten",
// "canonical" or "passthrough".
func (m *Metrics) RecordNormalization(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.normalizations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordDecode counts one varint decode with its status ("ok" or an error code).
func (m *Metrics) RecordDecode(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.decodes.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordError records an error by type and component.
func (m *Metrics) RecordError(ctx context.Context, errType, component string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
