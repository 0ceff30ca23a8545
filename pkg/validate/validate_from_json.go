package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_l2/internal/domain"
	"github.com/Gunvolt24/wb_l2/internal/ports"
)

// ValidateOrderFromJSON — разбор и доменная валидация одной записи заказа.
// Декодер строгий: неизвестные поля и данные после объекта — ошибка.
func ValidateOrderFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.Order, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var order domain.Order
	if err := dec.Decode(&order); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if dec.More() {
		return nil, errors.New("invalid json: trailing data")
	}

	if err := validator.Validate(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// writeCanonical — одна запись компактным JSON с переводом строки.
func writeCanonical(ow io.Writer, order *domain.Order) error {
	line, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.ID, err)
	}
	if _, err := ow.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write order %s: %w", order.ID, err)
	}
	return nil
}
