// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/canonical/caseflow/internal/logging"
)

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer bootstraps the global otel provider. When tracing is disabled a
// noop tracer is installed so that instrumented code paths stay cheap.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)
	t.logger = cfg.Logger

	if !cfg.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer("caseflow")
		return t
	}

	exporter, err := newExporter(cfg)
	if err != nil {
		cfg.Logger.Errorf("failed to create otel exporter, falling back to stdout: %v", err)
		exporter, _ = stdouttrace.New()
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaeger.Jaeger{},
		),
	)

	t.tracer = provider.Tracer("caseflow")

	return t
}

func newExporter(cfg *Config) (sdktrace.SpanExporter, error) {
	if cfg.OtelGRPCEndpoint != "" {
		return otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	}

	return otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint),
		otlptracehttp.WithInsecure(),
	)
}

func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer: noop.NewTracerProvider().Tracer("caseflow"),
		logger: logging.NewNoopLogger(),
	}
}
