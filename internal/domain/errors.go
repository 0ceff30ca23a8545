package domain

import "errors"

// Сентинельные ошибки доменного слоя. Транспорт сопоставляет их с HTTP-кодами,
// ядро никогда не ретраит их самостоятельно.
var (
	// ErrMissingIdempotencyKey — запись/обновление без токена идемпотентности.
	ErrMissingIdempotencyKey = errors.New("missing idempotency key")
)
