package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_l2/internal/domain"
	"github.com/Gunvolt24/wb_l2/internal/ports"
	"github.com/Gunvolt24/wb_l2/pkg/metrics"
	"github.com/google/uuid"
)

// Проверка, что OrderService удовлетворяет интерфейсу OrderService.
var _ ports.OrderService = (*OrderService)(nil)

// OrderService — прикладная логика заказов и координатор идемпотентности
// (без знаний о транспорте).
type OrderService struct {
	repo      ports.OrderRepository // прямой доступ к хранилищу
	log       ports.Logger          // прямой доступ к логгеру
	validator ports.OrderValidator  // прямой доступ к валидатору
	tokenTTL  time.Duration         // окно идемпотентности
	newID     func() string         // генерация id заказа (подменяется в тестах)
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	log ports.Logger,
	validator ports.OrderValidator,
	tokenTTL time.Duration,
) *OrderService {
	return &OrderService{
		repo:      repo,
		log:       log,
		validator: validator,
		tokenTTL:  tokenTTL,
		newID:     uuid.NewString,
	}
}

// CreateOrder — идемпотентное создание заказа.
// Шаги:
//  1. токен обязателен (ErrMissingIdempotencyKey до любых обращений к хранилищу);
//  2. доменная валидация payload'а (вернёт validate.ErrInvalidOrder при проблемах);
//  3. атомарная резервация токена (SETNX с TTL) — ровно один победитель при гонке;
//  4. победитель пишет заказ под order:<id>; при неудаче связка токена снимается
//     и создание считается несостоявшимся;
//  5. проигравший читает заказ победителя и возвращает его как replay
//     (payload повторного запроса игнорируется — first-writer-wins).
func (s *OrderService) CreateOrder(ctx context.Context, token string, payload domain.Order) (*domain.Order, bool, error) {
	if token == "" {
		return nil, false, domain.ErrMissingIdempotencyKey
	}

	if err := s.validator.Validate(ctx, &payload); err != nil {
		s.log.Warnf(ctx, "validation failed token=%s err=%v", token, err)
		return nil, false, err
	}

	// Две попытки: повтор нужен только на редкой гонке,
	// когда связка токена истекает между SETNX и GET.
	for attempt := 0; attempt < 2; attempt++ {
		candidate := &domain.Order{
			ID:       s.newID(),
			Product:  payload.Product,
			Quantity: payload.Quantity,
		}

		reserved, err := s.repo.ReserveToken(ctx, token, candidate, s.tokenTTL)
		if err != nil {
			s.log.Errorf(ctx, "repo.ReserveToken failed token=%s err=%v", token, err)
			return nil, false, err
		}

		if reserved {
			// Обе записи (order:<id> и idempotency:<token>) должны состояться;
			// иначе откатываем связку, чтобы клиент мог повторить запрос.
			if err := s.repo.Save(ctx, candidate); err != nil {
				s.log.Errorf(ctx, "repo.Save failed id=%s err=%v", candidate.ID, err)
				if relErr := s.repo.ReleaseToken(ctx, token); relErr != nil {
					s.log.Warnf(ctx, "repo.ReleaseToken failed token=%s err=%v", token, relErr)
				}
				metrics.IdempotencyOutcomes.WithLabelValues("failed").Inc()
				return nil, false, err
			}

			metrics.IdempotencyOutcomes.WithLabelValues("new").Inc()
			s.log.Infof(ctx, "order created id=%s token=%s", candidate.ID, token)
			return candidate, false, nil
		}

		existing, err := s.repo.GetByToken(ctx, token)
		if err != nil {
			s.log.Errorf(ctx, "repo.GetByToken failed token=%s err=%v", token, err)
			return nil, false, err
		}
		if existing != nil {
			metrics.IdempotencyOutcomes.WithLabelValues("replay").Inc()
			s.log.Infof(ctx, "order replayed id=%s token=%s", existing.ID, token)
			return existing, true, nil
		}

		// Связка исчезла между SETNX и GET (истёк TTL) — пробуем ещё раз.
		s.log.Warnf(ctx, "token association vanished, retrying token=%s", token)
	}

	metrics.IdempotencyOutcomes.WithLabelValues("failed").Inc()
	return nil, false, fmt.Errorf("idempotency token contention: %s", token)
}

// GetOrder — получить заказ по id. Возвращает (*Order, nil) или (nil, nil), если записи нет.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed id=%s err=%v", id, err)
		return nil, err
	}
	return order, nil
}

// ListOrders — все заказы (связки токенов никогда не попадают в выдачу).
func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	start := time.Now()
	orders, err := s.repo.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.List failed err=%v", err)
		return nil, err
	}
	s.log.Infof(ctx, "orders listed count=%d took=%s", len(orders), time.Since(start))
	return orders, nil
}

// UpdateOrder — безусловная перезапись заказа по id.
// Токен обязателен для симметрии с созданием, но на повтор не проверяется:
// каждое обновление мутирует запись.
func (s *OrderService) UpdateOrder(ctx context.Context, id, token string, payload domain.Order) (*domain.Order, error) {
	if token == "" {
		return nil, domain.ErrMissingIdempotencyKey
	}

	if err := s.validator.Validate(ctx, &payload); err != nil {
		s.log.Warnf(ctx, "validation failed id=%s err=%v", id, err)
		return nil, err
	}

	order := &domain.Order{
		ID:       id,
		Product:  payload.Product,
		Quantity: payload.Quantity,
	}
	if err := s.repo.Save(ctx, order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed id=%s err=%v", id, err)
		return nil, err
	}

	s.log.Infof(ctx, "order updated id=%s", id)
	return order, nil
}

// DeleteOrder — удаление заказа; удаление отсутствующей записи — успешный no-op.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Errorf(ctx, "repo.Delete failed id=%s err=%v", id, err)
		return err
	}
	s.log.Infof(ctx, "order deleted id=%s", id)
	return nil
}
