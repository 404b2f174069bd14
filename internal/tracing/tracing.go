// Package tracing sets up optional OTLP span export for demo operations.
//
// When an endpoint is configured each simulated operation becomes a span, so
// the widget lifecycle (show, final, outcome) is observable in any OTLP
// backend. Without an endpoint everything is a no-op.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Tracing holds the provider and tracer for one program.
type Tracing struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Init builds an OTLP HTTP exporter against endpoint. An empty endpoint
// returns a disabled instance whose tracer is a no-op.
func Init(ctx context.Context, endpoint, service string) (*Tracing, error) {
	if endpoint == "" {
		return &Tracing{tracer: noop.NewTracerProvider().Tracer(service)}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(service),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Tracing{
		provider: provider,
		tracer:   provider.Tracer(service),
	}, nil
}

// Tracer returns the tracer for wrapping operations in spans.
func (t *Tracing) Tracer() oteltrace.Tracer {
	return t.tracer
}

// Shutdown flushes pending spans. Safe on a disabled instance.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
