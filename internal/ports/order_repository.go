package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/wb_l2/internal/domain"
)

// OrderRepository — ключевое пространство заказов поверх KVStore:
// сериализация, построение ключей и связка "токен идемпотентности -> заказ".
type OrderRepository interface {
	// Save — upsert заказа по его id (перезапись без merge).
	Save(ctx context.Context, order *domain.Order) error

	// GetByID — заказ по id; (nil, nil), если записи нет.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// List — все заказы; ключи идемпотентности никогда не попадают в выдачу.
	List(ctx context.Context) ([]*domain.Order, error)

	// Delete — удаление заказа; отсутствие записи — не ошибка.
	Delete(ctx context.Context, id string) error

	// ReserveToken — атомарно связывает токен с заказом на время ttl.
	// Возвращает false, если токен уже занят (повторный запрос).
	ReserveToken(ctx context.Context, token string, order *domain.Order, ttl time.Duration) (bool, error)

	// GetByToken — заказ, связанный с токеном; (nil, nil), если связки нет
	// (истёк TTL или токен никогда не использовался).
	GetByToken(ctx context.Context, token string) (*domain.Order, error)

	// ReleaseToken — снимает связку токена (откат при неудачной записи заказа).
	ReleaseToken(ctx context.Context, token string) error
}
