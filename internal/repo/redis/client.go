package redisrepo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ClientOptions — параметры подключения к Redis (зеркалят config.Redis).
type ClientOptions struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewClient — создаёт клиента Redis по заданным параметрам.
// В конце выполняем Ping для fail-fast (раньше узнаем о проблемах подключения).
func NewClient(ctx context.Context, opts ClientOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})

	// Проверка соединения.
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
