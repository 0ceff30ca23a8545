package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_store_operations_total",
			Help: "Redis store operations by op and outcome",
		},
		[]string{"op", "outcome"}, // op: get|set|setnx|del|scan|mget; outcome: ok|miss|error
	)
	IdempotencyOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idempotency_create_outcomes_total",
			Help: "Create outcomes by idempotency decision",
		},
		[]string{"outcome"}, // new|replay|failed
	)
	OrdersTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "orders_total",
			Help: "Number of order keys seen by the last list scan",
		},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует все метрики сервиса. Повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(StoreOps, IdempotencyOutcomes, OrdersTotal)
	})
}
