package ports

import (
	"context"
	"time"
)

// KVStore — контракт внешнего key-value хранилища с TTL на ключ (Redis).
// Требования к реализации: потокобезопасность; отсутствие ключа — это (nil, nil),
// а не ошибка; MGet сохраняет порядок входных ключей (nil для промахов).
type KVStore interface {
	// Get — значение по ключу; (nil, nil) при отсутствии.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set — запись значения; ttl <= 0 означает ключ без срока жизни.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// SetNX — атомарная запись "если ключа нет" с TTL.
	// Возвращает true, если ключ записан этим вызовом.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// Delete — удаление ключа; удаление отсутствующего ключа — успешный no-op.
	Delete(ctx context.Context, key string) error

	// KeysWithPrefix — все ключи с данным префиксом.
	KeysWithPrefix(ctx context.Context, prefix string) ([]string, error)

	// MGet — значения для списка ключей; порядок совпадает со входным,
	// промахи представлены nil.
	MGet(ctx context.Context, keys []string) ([][]byte, error)
}
