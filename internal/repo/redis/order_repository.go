package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_l2/internal/domain"
	"github.com/Gunvolt24/wb_l2/internal/ports"
	"github.com/Gunvolt24/wb_l2/pkg/metrics"
)

// Префиксы ключей. Заказ живёт под order:<id> без TTL,
// связка токена идемпотентности — под idempotency:<token> с TTL.
const (
	orderKeyPrefix       = "order:"
	idempotencyKeyPrefix = "idempotency:"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов поверх KVStore:
// построение ключей, (де)сериализация JSON и связка токен -> заказ.
type OrderRepository struct {
	kv  ports.KVStore
	log ports.Logger
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(kv ports.KVStore, log ports.Logger) *OrderRepository {
	return &OrderRepository{kv: kv, log: log}
}

// KeyFor — ключ заказа по id.
func KeyFor(id string) string { return orderKeyPrefix + id }

// TokenKeyFor — ключ связки токена идемпотентности.
func TokenKeyFor(token string) string { return idempotencyKeyPrefix + token }

// Save — upsert заказа по id (перезапись без merge, без TTL).
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}

	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.ID, err)
	}

	return r.kv.Set(ctx, KeyFor(order.ID), data, 0)
}

// GetByID — заказ по id; (nil, nil), если записи нет.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	raw, err := r.kv.Get(ctx, KeyFor(id))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("unmarshal order %s: %w", id, err)
	}
	return &order, nil
}

// List — все заказы по префиксу order:. Ключи идемпотентности отфильтровываются,
// битые записи пропускаются с warn-логом (доступность важнее строгости).
func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	keys, err := r.kv.KeysWithPrefix(ctx, orderKeyPrefix)
	if err != nil {
		return nil, err
	}

	// Подстраховка: связки токенов не должны попадать в выдачу,
	// даже если чей-то токен начинается с "order:".
	orderKeys := keys[:0]
	for _, k := range keys {
		if strings.Contains(k, idempotencyKeyPrefix) {
			continue
		}
		orderKeys = append(orderKeys, k)
	}
	if len(orderKeys) == 0 {
		return []*domain.Order{}, nil
	}

	vals, err := r.kv.MGet(ctx, orderKeys)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(vals))
	for i, raw := range vals {
		if raw == nil {
			// Ключ исчез между SCAN и MGET — не ошибка.
			continue
		}
		var order domain.Order
		if umErr := json.Unmarshal(raw, &order); umErr != nil {
			r.log.Warnf(ctx, "skip corrupted order key=%s err=%v", orderKeys[i], umErr)
			continue
		}
		orders = append(orders, &order)
	}

	metrics.OrdersTotal.Set(float64(len(orders)))
	return orders, nil
}

// Delete — удаление заказа; отсутствие записи — успешный no-op.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.kv.Delete(ctx, KeyFor(id))
}

// ReserveToken — атомарно связывает токен с заказом на ttl (SETNX).
// false означает, что токен уже занят другим (или этим же) заказом.
func (r *OrderRepository) ReserveToken(ctx context.Context, token string, order *domain.Order, ttl time.Duration) (bool, error) {
	if token == "" {
		return false, domain.ErrMissingIdempotencyKey
	}

	data, err := json.Marshal(order)
	if err != nil {
		return false, fmt.Errorf("marshal order for token: %w", err)
	}

	return r.kv.SetNX(ctx, TokenKeyFor(token), data, ttl)
}

// GetByToken — заказ, связанный с токеном; (nil, nil), если связки нет.
func (r *OrderRepository) GetByToken(ctx context.Context, token string) (*domain.Order, error) {
	raw, err := r.kv.Get(ctx, TokenKeyFor(token))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("unmarshal token association %s: %w", token, err)
	}
	return &order, nil
}

// ReleaseToken — снимает связку токена (используется для отката).
func (r *OrderRepository) ReleaseToken(ctx context.Context, token string) error {
	return r.kv.Delete(ctx, TokenKeyFor(token))
}
