// Package pagingtrace wraps the otel tracer name the subsystem's spans
// share, so call sites read the span name instead of repeating the
// tracer name.
//
// Grounded on internal/dmr/calltracker/call_tracker.go's
// otel.Tracer("DMRHub").Start(ctx, "<Type>.<Method>") calls at the top of
// every exported method.
package pagingtrace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "pager"

// Start opens a span named name under the pager tracer.
func Start(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name)
}

// Init registers a batching OTLP/gRPC TracerProvider exporting to endpoint
// and returns its Shutdown func for the caller to defer. Without calling
// Init, Start resolves against the global no-op tracer, which is valid
// (tracing is additive, never load-bearing) but produces no spans.
func Init(ctx context.Context, endpoint string) (func(context.Context) error, error) {
	exporter, err := otlptrace.New(
		ctx,
		otlptracegrpc.NewClient(
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithEndpoint(endpoint),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("paging tracer: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", tracerName),
		attribute.String("library.language", "go"),
	))
	if err != nil {
		return nil, fmt.Errorf("paging tracer: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
