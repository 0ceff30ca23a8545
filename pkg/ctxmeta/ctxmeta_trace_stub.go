//go:build !otel || gopls

package ctxmeta

import "context"

// Сборка без тега `otel`: трейсинга нет, идентификаторы всегда пустые.

func TraceIDFromContext(context.Context) (string, bool) { return "", false }

func SpanIDFromContext(context.Context) (string, bool) { return "", false }
