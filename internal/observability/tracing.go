// Package observability sets up OpenTelemetry tracing for the pipeline.
package observability

import (
	"context"
	"strings"
	"time"

	"shulelink/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.uber.org/zap"
)

// TracerName is the instrumentation scope used by the content pipeline.
const TracerName = "shulelink/pipeline"

// InitTracing installs a global TracerProvider when tracing is enabled and
// returns its shutdown function. When disabled the global no-op provider
// stays in place and the returned function does nothing.
func InitTracing(ctx context.Context, cfg config.TracingConfig, logger *zap.Logger) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled {
		return noop, nil
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "shulelink"
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String(serviceName)))
	if err != nil {
		logger.Warn("otel resource init failed (continuing)", zap.Error(err))
	}

	exporter, err := newExporter(ctx, cfg.Exporter)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("otel tracing initialized",
		zap.String("service", serviceName),
		zap.String("exporter", cfg.Exporter))
	return tp.Shutdown, nil
}

// newExporter builds the span exporter. "otlp" reads the standard
// OTEL_EXPORTER_OTLP_* environment variables; anything else prints to stdout.
func newExporter(ctx context.Context, kind string) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "otlp":
		return otlptracehttp.New(ctx)
	default:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
}
