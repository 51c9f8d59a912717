package internal

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	genv "github.com/blong14/scratch/internal/environment"
)

// Trace starts a span when tracing is enabled; otherwise it returns the
// span already on the context. The caller owns ending the span.
func Trace(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	attrs ...attribute.KeyValue,
) (context.Context, trace.Span) {
	span := trace.SpanFromContext(ctx)
	if genv.TraceEnabled() {
		ctx, span = tracer.Start(ctx, name)
		span.SetAttributes(attrs...)
	}
	return ctx, span
}
