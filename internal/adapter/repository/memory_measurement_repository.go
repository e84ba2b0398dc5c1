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

type memoryMeasurementRepository struct {
	mu           sync.RWMutex
	measurements map[string]entity.Measurement
	order        []string
}

func NewMemoryMeasurementRepository() repository.MeasurementRepository {
	return &memoryMeasurementRepository{
		measurements: make(map[string]entity.Measurement),
	}
}

func (r *memoryMeasurementRepository) Create(ctx context.Context, measurement *entity.Measurement) error {
	if measurement.ID == "" {
		measurement.ID = uuid.New().String()
	}

	now := time.Now()
	if measurement.CreatedAt.IsZero() {
		measurement.CreatedAt = now
	}
	measurement.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.measurements[measurement.ID]; !ok {
		r.order = append(r.order, measurement.ID)
	}
	r.measurements[measurement.ID] = *measurement
	return nil
}

func (r *memoryMeasurementRepository) GetByID(ctx context.Context, id string) (*entity.Measurement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	measurement, ok := r.measurements[id]
	if !ok {
		return nil, errors.NotFound("Measurement", nil)
	}
	return &measurement, nil
}

func (r *memoryMeasurementRepository) ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Measurement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	measurements := make([]*entity.Measurement, 0)
	for _, id := range r.order {
		if r.measurements[id].CustomerID == customerID {
			measurement := r.measurements[id]
			measurements = append(measurements, &measurement)
		}
	}
	return measurements, nil
}

func (r *memoryMeasurementRepository) Update(ctx context.Context, measurement *entity.Measurement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.measurements[measurement.ID]; !ok {
		return errors.NotFound("Measurement", nil)
	}
	measurement.UpdatedAt = time.Now()
	r.measurements[measurement.ID] = *measurement
	return nil
}

func (r *memoryMeasurementRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.measurements[id]; !ok {
		return errors.NotFound("Measurement", nil)
	}
	delete(r.measurements, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
