package repository

import (
	"context"

	"tailorlink/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	// ListByTailorID returns every review for the tailor, never nil.
	ListByTailorID(ctx context.Context, tailorID string) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
}
