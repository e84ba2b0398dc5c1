package repository

import (
	"context"

	"tailorlink/internal/domain/entity"
)

type TailorRepository interface {
	Create(ctx context.Context, tailor *entity.TailorProfile) error
	GetByID(ctx context.Context, id string) (*entity.TailorProfile, error)
	GetByUserID(ctx context.Context, userID string) (*entity.TailorProfile, error)
	// List returns the full tailor collection; filtering, sorting and
	// pagination happen in memory above this layer.
	List(ctx context.Context) ([]*entity.TailorProfile, error)
	Update(ctx context.Context, tailor *entity.TailorProfile) error
}
