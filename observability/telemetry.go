package observability

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Telemetry owns the tracer and meter providers installed by Init.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
}

// Init installs global tracer and meter providers exporting to
// cfg.Endpoint. With cfg.Enabled false it installs nothing and returns an
// empty Telemetry whose Shutdown is a no-op.
func Init(ctx context.Context, serviceName, serviceVersion string, cfg Config) (*Telemetry, error) {
	cfg.ApplyDefaults()
	if !cfg.Enabled {
		return &Telemetry{}, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := newResource(ctx, serviceName, serviceVersion)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tp, err := InitTracer(ctx, res, cfg)
	if err != nil {
		return nil, err
	}
	mp, err := InitMeter(ctx, res, cfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	return &Telemetry{TracerProvider: tp, MeterProvider: mp}, nil
}

// Shutdown flushes and stops the providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var errs []error
	if t.TracerProvider != nil {
		errs = append(errs, t.TracerProvider.Shutdown(ctx))
	}
	if t.MeterProvider != nil {
		errs = append(errs, t.MeterProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// newResource describes the service without pinning a semconv schema, so it
// merges cleanly with the SDK's default resource.
func newResource(ctx context.Context, serviceName, serviceVersion string) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			attribute.String(AttrServiceName, serviceName),
			attribute.String(AttrServiceVersion, serviceVersion),
		),
	)
}
