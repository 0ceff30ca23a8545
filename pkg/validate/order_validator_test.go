package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/wb_l2/internal/domain"
)

func TestValidate_OK(t *testing.T) {
	v := NewOrderValidator()

	err := v.Validate(context.Background(), &domain.Order{Product: "Laptop", Quantity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	v := NewOrderValidator()

	cases := []struct {
		name  string
		order *domain.Order
	}{
		{"nil order", nil},
		{"empty product", &domain.Order{Product: "", Quantity: 1}},
		{"zero quantity", &domain.Order{Product: "Laptop", Quantity: 0}},
		{"negative quantity", &domain.Order{Product: "Laptop", Quantity: -5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tc.order)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidOrder) {
				t.Fatalf("want wrapped ErrInvalidOrder, got %v", err)
			}
		})
	}
}
