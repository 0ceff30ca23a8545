package logger

import (
	"context"

	"github.com/Gunvolt24/wb_l2/internal/ports"
	"github.com/Gunvolt24/wb_l2/pkg/ctxmeta"
	"go.uber.org/zap"
)

// Проверка, что ZapLogger удовлетворяет интерфейсу Logger.
var _ ports.Logger = (*ZapLogger)(nil)

// ZapLogger — реализация ports.Logger поверх zap.
// Каждая строка обогащается метаданными запроса из контекста:
// request_id, токен идемпотентности и trace/span (в сборке с тегом otel).
type ZapLogger struct {
	base *zap.Logger
}

// NewZapLogger — логгер в dev- или prod-конфигурации и функция его закрытия.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	cfg := zap.NewDevelopmentConfig()
	if isProd {
		cfg = zap.NewProductionConfig()
	}
	cfg.DisableStacktrace = true

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, nil, err
	}

	z := &ZapLogger{base: base}
	cleanup := func() error { return base.Sync() }
	return z, cleanup, nil
}

// withMeta — sugar-логгер с полями, извлечёнными из контекста.
func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	s := z.base.Sugar()
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		s = s.With("request_id", rid)
	}
	if token, ok := ctxmeta.IdempotencyTokenFromContext(ctx); ok {
		s = s.With("idempotency_token", token)
	}
	if tr, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		s = s.With("trace_id", tr)
	}
	if sp, ok := ctxmeta.SpanIDFromContext(ctx); ok {
		s = s.With("span_id", sp)
	}
	return s
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

// Base — доступ к сырому zap-логгеру (для библиотек, которым он нужен напрямую).
func (z *ZapLogger) Base() *zap.Logger { return z.base }
