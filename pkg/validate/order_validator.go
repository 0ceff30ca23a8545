package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_l2/internal/domain"
	"github.com/Gunvolt24/wb_l2/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — структура для валидации заказа.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
// Поле id не проверяется: при создании оно генерируется после валидации.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if order.Product == "" {
		return fmt.Errorf("%w: product обязателен", ErrInvalidOrder)
	}
	if order.Quantity < 1 {
		return fmt.Errorf("%w: quantity должен быть >= 1", ErrInvalidOrder)
	}
	return nil
}
