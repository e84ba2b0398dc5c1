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

type memoryReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]entity.Review
	order   []string
}

func NewMemoryReviewRepository() repository.ReviewRepository {
	return &memoryReviewRepository{
		reviews: make(map[string]entity.Review),
	}
}

func (r *memoryReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	now := time.Now()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[review.ID]; !ok {
		r.order = append(r.order, review.ID)
	}
	r.reviews[review.ID] = *review
	return nil
}

func (r *memoryReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return &review, nil
}

func (r *memoryReviewRepository) ListByTailorID(ctx context.Context, tailorID string) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]*entity.Review, 0)
	for _, id := range r.order {
		if r.reviews[id].TailorID == tailorID {
			review := r.reviews[id]
			reviews = append(reviews, &review)
		}
	}
	return reviews, nil
}

func (r *memoryReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[review.ID]; !ok {
		return errors.NotFound("Review", nil)
	}
	review.UpdatedAt = time.Now()
	r.reviews[review.ID] = *review
	return nil
}
