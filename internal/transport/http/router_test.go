package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/wb_l2/internal/domain"
	"github.com/Gunvolt24/wb_l2/internal/ports/mocks"
	rest "github.com/Gunvolt24/wb_l2/internal/transport/http"
	"github.com/Gunvolt24/wb_l2/pkg/validate"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type createResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func newTestRouter(t *testing.T) (*mocks.MockOrderService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockOrderService(ctrl)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	return svc, rest.NewRouter(h, "")
}

func TestCreateOrder_Created(t *testing.T) {
	svc, r := newTestRouter(t)

	want := &domain.Order{ID: "order-1", Product: "laptop", Quantity: 2}
	svc.EXPECT().
		CreateOrder(gomock.Any(), "token-1", domain.Order{Product: "laptop", Quantity: 2}).
		Return(want, false, nil)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"product":"laptop","quantity":2}`))
	req.Header.Set("Idempotency-Key", "token-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
	var got createResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Message != "Order created" || got.Order == nil || got.Order.ID != "order-1" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestCreateOrder_Replay(t *testing.T) {
	svc, r := newTestRouter(t)

	want := &domain.Order{ID: "order-1", Product: "laptop", Quantity: 2}
	svc.EXPECT().
		CreateOrder(gomock.Any(), "token-1", gomock.Any()).
		Return(want, true, nil)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"product":"phone","quantity":9}`))
	req.Header.Set("Idempotency-Key", "token-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200 on replay, got %d, body=%s", w.Code, w.Body.String())
	}
	var got createResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Message != "Order already processed" || got.Order == nil || got.Order.ID != "order-1" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestCreateOrder_MissingHeader(t *testing.T) {
	svc, r := newTestRouter(t)

	// Без токена до сервиса дело не доходит.
	svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"product":"laptop","quantity":2}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
	var got errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Success || got.Error != "Missing Idempotency-Key header" {
		t.Fatalf("unexpected error envelope: %+v", got)
	}
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{`))
	req.Header.Set("Idempotency-Key", "token-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateOrder_ValidationError(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().
		CreateOrder(gomock.Any(), "token-1", gomock.Any()).
		Return(nil, false, validate.ErrInvalidOrder)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"product":"","quantity":0}`))
	req.Header.Set("Idempotency-Key", "token-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetOrder_Found(t *testing.T) {
	svc, r := newTestRouter(t)

	want := &domain.Order{ID: "order-1", Product: "laptop", Quantity: 2}
	svc.EXPECT().GetOrder(gomock.Any(), "order-1").Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/order-1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "order-1" || got.Product != "laptop" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().GetOrder(gomock.Any(), "missing").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/missing", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
	var got errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Success || got.Error != "Order not found" {
		t.Fatalf("unexpected error envelope: %+v", got)
	}
}

func TestListOrders_OK(t *testing.T) {
	svc, r := newTestRouter(t)

	ret := []*domain.Order{
		{ID: "order-1", Product: "laptop", Quantity: 1},
		{ID: "order-2", Product: "phone", Quantity: 2},
	}
	svc.EXPECT().ListOrders(gomock.Any()).Return(ret, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*domain.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].ID != "order-1" || got[1].ID != "order-2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListOrders_Paginated(t *testing.T) {
	svc, r := newTestRouter(t)

	ret := []*domain.Order{
		{ID: "order-1", Product: "laptop", Quantity: 1},
		{ID: "order-2", Product: "phone", Quantity: 2},
		{ID: "order-3", Product: "tablet", Quantity: 3},
	}
	svc.EXPECT().ListOrders(gomock.Any()).Return(ret, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders?limit=1&offset=1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*domain.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].ID != "order-2" {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestListOrders_Empty(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().ListOrders(gomock.Any()).Return([]*domain.Order{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	// Пустой список сериализуется как [], а не null.
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("want [], got %s", w.Body.String())
	}
}

func TestUpdateOrder_OK(t *testing.T) {
	svc, r := newTestRouter(t)

	want := &domain.Order{ID: "order-1", Product: "phone", Quantity: 3}
	svc.EXPECT().
		UpdateOrder(gomock.Any(), "order-1", "token-2", domain.Order{Product: "phone", Quantity: 3}).
		Return(want, nil)

	req := httptest.NewRequest(http.MethodPut, "/orders/order-1", strings.NewReader(`{"product":"phone","quantity":3}`))
	req.Header.Set("Idempotency-Key", "token-2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got createResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Message != "Order updated" || got.Order == nil || got.Order.Product != "phone" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestUpdateOrder_MissingHeader(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().UpdateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPut, "/orders/order-1", strings.NewReader(`{"product":"phone","quantity":3}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteOrder_NoContent(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().DeleteOrder(gomock.Any(), "order-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/orders/order-1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Fatalf("want empty body, got %s", w.Body.String())
	}
}

func TestDeleteOrder_InternalError(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().DeleteOrder(gomock.Any(), "order-1").Return(errors.New("redis: connection refused"))

	req := httptest.NewRequest(http.MethodDelete, "/orders/order-1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
	var got errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Success || got.Error != "Internal Server Error" {
		t.Fatalf("unexpected error envelope: %+v", got)
	}
}

func TestPing(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want pong, got %d %s", w.Code, w.Body.String())
	}
}
