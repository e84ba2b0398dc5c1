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

// memoryTailorRepository keeps tailors in a map guarded by an RWMutex and
// preserves insertion order for listing, so unsorted discovery results are
// deterministic.
type memoryTailorRepository struct {
	mu      sync.RWMutex
	tailors map[string]entity.TailorProfile
	order   []string
}

func NewMemoryTailorRepository() repository.TailorRepository {
	return &memoryTailorRepository{
		tailors: make(map[string]entity.TailorProfile),
	}
}

func (r *memoryTailorRepository) Create(ctx context.Context, tailor *entity.TailorProfile) error {
	if tailor.ID == "" {
		tailor.ID = uuid.New().String()
	}

	now := time.Now()
	if tailor.CreatedAt.IsZero() {
		tailor.CreatedAt = now
	}
	tailor.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tailors[tailor.ID]; !ok {
		r.order = append(r.order, tailor.ID)
	}
	r.tailors[tailor.ID] = *tailor
	return nil
}

func (r *memoryTailorRepository) GetByID(ctx context.Context, id string) (*entity.TailorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tailor, ok := r.tailors[id]
	if !ok {
		return nil, errors.NotFound("Tailor", nil)
	}
	return &tailor, nil
}

func (r *memoryTailorRepository) GetByUserID(ctx context.Context, userID string) (*entity.TailorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.tailors[id].UserID == userID {
			tailor := r.tailors[id]
			return &tailor, nil
		}
	}
	return nil, errors.NotFound("Tailor", nil)
}

func (r *memoryTailorRepository) List(ctx context.Context) ([]*entity.TailorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tailors := make([]*entity.TailorProfile, 0, len(r.order))
	for _, id := range r.order {
		tailor := r.tailors[id]
		tailors = append(tailors, &tailor)
	}
	return tailors, nil
}

func (r *memoryTailorRepository) Update(ctx context.Context, tailor *entity.TailorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tailors[tailor.ID]; !ok {
		return errors.NotFound("Tailor", nil)
	}
	tailor.UpdatedAt = time.Now()
	r.tailors[tailor.ID] = *tailor
	return nil
}
