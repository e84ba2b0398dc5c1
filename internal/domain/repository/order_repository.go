package repository

import (
	"context"

	"tailorlink/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByCustomerID(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, int64, error)
	ListByTailorID(ctx context.Context, tailorID string, limit, offset int) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
}
