// Package tracing provides a shared OTel tracer helper for the domain packages.
//
// When no TracerProvider is registered (tests, local dev) the global no-op
// provider is used and every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "fokus"

// Start creates a span as a child of the span in ctx, or a root span when ctx
// carries none. The caller must call span.End().
//
//	ctx, span := tracing.Start(ctx, "chat.analyze",
//	    attribute.Int("fokus.chat.input_chars", len(input)),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// RecordError marks span as failed with err. A nil err is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
