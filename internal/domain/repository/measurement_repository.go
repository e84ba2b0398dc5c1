package repository

import (
	"context"

	"tailorlink/internal/domain/entity"
)

type MeasurementRepository interface {
	Create(ctx context.Context, measurement *entity.Measurement) error
	GetByID(ctx context.Context, id string) (*entity.Measurement, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Measurement, error)
	Update(ctx context.Context, measurement *entity.Measurement) error
	Delete(ctx context.Context, id string) error
}
