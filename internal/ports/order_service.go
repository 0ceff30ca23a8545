package ports

import (
	"context"

	"github.com/Gunvolt24/wb_l2/internal/domain"
)

// OrderService — прикладной сервис заказов, используется HTTP-слоем.
type OrderService interface {
	// CreateOrder — идемпотентное создание: replay=true, если токен уже
	// связан с заказом (payload повторного запроса игнорируется).
	CreateOrder(ctx context.Context, token string, order domain.Order) (*domain.Order, bool, error)

	// GetOrder — заказ по id; (nil, nil), если записи нет.
	GetOrder(ctx context.Context, id string) (*domain.Order, error)

	// ListOrders — все заказы.
	ListOrders(ctx context.Context) ([]*domain.Order, error)

	// UpdateOrder — безусловная перезапись заказа по id; токен обязателен,
	// но на повтор не проверяется.
	UpdateOrder(ctx context.Context, id, token string, order domain.Order) (*domain.Order, error)

	// DeleteOrder — удаление; отсутствие записи — не ошибка.
	DeleteOrder(ctx context.Context, id string) error
}
