package redisrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_l2/internal/ports"
	"github.com/Gunvolt24/wb_l2/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// Проверка, что KVStore удовлетворяет интерфейсу KVStore.
var _ ports.KVStore = (*KVStore)(nil)

// KVStore — реализация ports.KVStore на go-redis.
type KVStore struct {
	client *redis.Client
}

// NewKVStore — конструктор KVStore.
func NewKVStore(client *redis.Client) *KVStore { return &KVStore{client: client} }

// Get — значение по ключу; redis.Nil переводится в (nil, nil).
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.StoreOps.WithLabelValues("get", "miss").Inc()
			return nil, nil
		}
		metrics.StoreOps.WithLabelValues("get", "error").Inc()
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	metrics.StoreOps.WithLabelValues("get", "ok").Inc()
	return val, nil
}

// Set — запись значения; ttl <= 0 — ключ без срока жизни.
func (s *KVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		metrics.StoreOps.WithLabelValues("set", "error").Inc()
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	metrics.StoreOps.WithLabelValues("set", "ok").Inc()
	return nil
}

// SetNX — атомарная запись "если ключа нет" с TTL.
func (s *KVStore) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		metrics.StoreOps.WithLabelValues("setnx", "error").Inc()
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	metrics.StoreOps.WithLabelValues("setnx", "ok").Inc()
	return ok, nil
}

// Delete — удаление ключа; отсутствие ключа — не ошибка (DEL вернёт 0).
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		metrics.StoreOps.WithLabelValues("del", "error").Inc()
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	metrics.StoreOps.WithLabelValues("del", "ok").Inc()
	return nil
}

// KeysWithPrefix — перечисление ключей через SCAN (не блокируем Redis командой KEYS).
func (s *KVStore) KeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		metrics.StoreOps.WithLabelValues("scan", "error").Inc()
		return nil, fmt.Errorf("redis scan %s*: %w", prefix, err)
	}

	metrics.StoreOps.WithLabelValues("scan", "ok").Inc()
	return keys, nil
}

// MGet — значения для списка ключей; порядок входа сохраняется, промахи — nil.
func (s *KVStore) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		metrics.StoreOps.WithLabelValues("mget", "error").Inc()
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	out := make([][]byte, len(vals))
	for i, v := range vals {
		switch tv := v.(type) {
		case string:
			out[i] = []byte(tv)
		case []byte:
			out[i] = tv
		default: // nil — промах
			out[i] = nil
		}
	}

	metrics.StoreOps.WithLabelValues("mget", "ok").Inc()
	return out, nil
}
