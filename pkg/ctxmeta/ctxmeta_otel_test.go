//go:build otel

package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/wb_l2/pkg/ctxmeta"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Сборка с otel: trace/span достаются из активного спана.
func TestTraceMeta_FromActiveSpan(t *testing.T) {
	// Локальный TracerProvider — глобальный не трогаем.
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	traceID, ok := ctxmeta.TraceIDFromContext(ctx)
	if !ok || traceID != span.SpanContext().TraceID().String() {
		t.Fatalf("traceID=%q ok=%v, want %q", traceID, ok, span.SpanContext().TraceID())
	}
	spanID, ok := ctxmeta.SpanIDFromContext(ctx)
	if !ok || spanID != span.SpanContext().SpanID().String() {
		t.Fatalf("spanID=%q ok=%v, want %q", spanID, ok, span.SpanContext().SpanID())
	}
}

func TestTraceMeta_NoSpanInContext(t *testing.T) {
	if id, ok := ctxmeta.TraceIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("want empty trace id without span, got %q ok=%v", id, ok)
	}
	if id, ok := ctxmeta.SpanIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("want empty span id without span, got %q ok=%v", id, ok)
	}
}
