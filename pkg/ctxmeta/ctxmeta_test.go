package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/wb_l2/pkg/ctxmeta"
)

func TestRequestID_RoundTrip(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	if got, ok := ctxmeta.RequestIDFromContext(ctx); !ok || got != "req-123" {
		t.Fatalf("want req-123, got %q ok=%v", got, ok)
	}

	// Родительский контекст не затрагивается.
	if _, ok := ctxmeta.RequestIDFromContext(parent); ok {
		t.Fatalf("parent context must not carry request_id")
	}
}

func TestIdempotencyToken_RoundTrip(t *testing.T) {
	ctx := ctxmeta.WithIdempotencyToken(context.Background(), "token-1")
	if got, ok := ctxmeta.IdempotencyTokenFromContext(ctx); !ok || got != "token-1" {
		t.Fatalf("want token-1, got %q ok=%v", got, ok)
	}

	// Ключи независимы: request_id из того же контекста не достаётся.
	if _, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		t.Fatalf("token must not leak into request_id")
	}
}

func TestWith_EmptyValue_ReturnsSameContext(t *testing.T) {
	parent := context.Background()

	if ctx := ctxmeta.WithRequestID(parent, ""); ctx != parent {
		t.Fatalf("WithRequestID with empty value must be a no-op")
	}
	if ctx := ctxmeta.WithIdempotencyToken(parent, ""); ctx != parent {
		t.Fatalf("WithIdempotencyToken with empty value must be a no-op")
	}
}

func TestWith_NilContext(t *testing.T) {
	var nilCtx context.Context

	if ctx := ctxmeta.WithRequestID(nilCtx, "req-1"); ctx != nil {
		t.Fatalf("WithRequestID(nil, ...) must return nil")
	}
	if ctx := ctxmeta.WithIdempotencyToken(nilCtx, "token-1"); ctx != nil {
		t.Fatalf("WithIdempotencyToken(nil, ...) must return nil")
	}
}

func TestFromContext_Absent(t *testing.T) {
	if id, ok := ctxmeta.RequestIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("empty ctx: got id=%q ok=%v", id, ok)
	}
	if token, ok := ctxmeta.IdempotencyTokenFromContext(context.Background()); ok || token != "" {
		t.Fatalf("empty ctx: got token=%q ok=%v", token, ok)
	}
}

func TestFromContext_EmptyStoredValue(t *testing.T) {
	// Пустое значение под верным ключом считаем отсутствующим.
	ctx := context.WithValue(context.Background(), ctxmeta.KeyRequestID, "")
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok || id != "" {
		t.Fatalf("empty stored value must be absent, got id=%q ok=%v", id, ok)
	}
}

func TestFromContext_ForeignKeyIgnored(t *testing.T) {
	// Значение под чужим ключом не распознаётся: пакет использует
	// собственный неэкспортируемый тип ключа.
	type otherKey struct{}
	ctx := context.WithValue(context.Background(), otherKey{}, "req-xyz")
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok || id != "" {
		t.Fatalf("foreign key must not be recognized, got id=%q ok=%v", id, ok)
	}
}
