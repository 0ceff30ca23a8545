//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/wb_l2/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного заказа
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		ID:       "ord-" + UniqSuffix(),
		Product:  "laptop",
		Quantity: 1,
	}

	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithProduct(p string) func(*domain.Order) {
	return func(o *domain.Order) { o.Product = p }
}

func WithQuantity(q int) func(*domain.Order) {
	return func(o *domain.Order) { o.Quantity = q }
}
