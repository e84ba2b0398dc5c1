package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/pkg/errors"
)

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entity.Order
	order  []string
}

func NewMemoryOrderRepository() repository.OrderRepository {
	return &memoryOrderRepository{
		orders: make(map[string]entity.Order),
	}
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; !ok {
		r.order = append(r.order, order.ID)
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *memoryOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return &order, nil
}

func (r *memoryOrderRepository) ListByCustomerID(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.list(func(o entity.Order) bool { return o.CustomerID == customerID }, limit, offset)
}

func (r *memoryOrderRepository) ListByTailorID(ctx context.Context, tailorID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.list(func(o entity.Order) bool { return o.TailorID == tailorID }, limit, offset)
}

func (r *memoryOrderRepository) list(match func(entity.Order) bool, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*entity.Order, 0)
	for _, id := range r.order {
		if match(r.orders[id]) {
			order := r.orders[id]
			matched = append(matched, &order)
		}
	}

	total := int64(len(matched))

	if offset >= len(matched) {
		return []*entity.Order{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memoryOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}
