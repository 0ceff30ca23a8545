package ports

import (
	"context"

	"github.com/Gunvolt24/wb_l2/internal/domain"
)

// OrderValidator — доменная валидация заказа перед записью в хранилище.
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
