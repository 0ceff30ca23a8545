package ports

import "context"

// Logger — контракт логгера для всех слоёв сервиса. Контекст несёт
// метаданные запроса (request_id, токен идемпотентности), которые
// реализация добавляет к каждой строке.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
