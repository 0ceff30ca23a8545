//go:build otel && !gopls

package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Сборка с тегом `otel`: идентификаторы берутся из активного спана.

// TraceIDFromContext — trace id активного спана в виде строки для логов.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String(), true
	}
	return "", false
}

// SpanIDFromContext — span id активного спана в виде строки для логов.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.SpanID().String(), true
	}
	return "", false
}
