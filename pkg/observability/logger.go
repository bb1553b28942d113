// Package observability builds the structured logger seqstat hosts use,
// correlating log records with the OpenTelemetry span active in the context.
package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
)

// TracingHandler lets a host line up seqstat's debug records (such as the
// "sample described" line) with the sample.describe span that produced them.
type TracingHandler struct {
	inner slog.Handler
}

// NewTracingHandler wraps inner. A non-empty service is attached before any
// group is opened, so it always lands at the top level of the record.
func NewTracingHandler(inner slog.Handler, service string) *TracingHandler {
	if service != "" {
		inner = inner.WithAttrs([]slog.Attr{slog.String(attrService, service)})
	}

	return &TracingHandler{inner: inner}
}

// Enabled follows the wrapped handler.
func (th *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return th.inner.Enabled(ctx, level)
}

// Handle stamps trace_id and span_id when ctx carries a valid span.
func (th *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	if sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	err := th.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("tracing handler: %w", err)
	}

	return nil
}

// WithAttrs keeps the trace stamping on derived loggers.
func (th *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{inner: th.inner.WithAttrs(attrs)}
}

// WithGroup is WithAttrs for groups.
func (th *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{inner: th.inner.WithGroup(name)}
}
