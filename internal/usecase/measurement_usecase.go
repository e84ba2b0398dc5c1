package usecase

import (
	"context"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/pkg/errors"
)

type MeasurementUseCase struct {
	measurementRepo repository.MeasurementRepository
}

func NewMeasurementUseCase(measurementRepo repository.MeasurementRepository) *MeasurementUseCase {
	return &MeasurementUseCase{
		measurementRepo: measurementRepo,
	}
}

type MeasurementInput struct {
	Name   string
	Values map[string]float64
	Notes  string
}

func (uc *MeasurementUseCase) Create(ctx context.Context, customerID string, input MeasurementInput) (*entity.Measurement, error) {
	measurement := &entity.Measurement{
		CustomerID: customerID,
		Name:       input.Name,
		Values:     input.Values,
		Notes:      input.Notes,
	}

	if err := uc.measurementRepo.Create(ctx, measurement); err != nil {
		return nil, err
	}

	return measurement, nil
}

func (uc *MeasurementUseCase) List(ctx context.Context, customerID string) ([]*entity.Measurement, error) {
	return uc.measurementRepo.ListByCustomerID(ctx, customerID)
}

func (uc *MeasurementUseCase) Update(ctx context.Context, customerID, id string, input MeasurementInput) (*entity.Measurement, error) {
	measurement, err := uc.owned(ctx, customerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		measurement.Name = input.Name
	}
	if input.Values != nil {
		measurement.Values = input.Values
	}
	if input.Notes != "" {
		measurement.Notes = input.Notes
	}

	if err := uc.measurementRepo.Update(ctx, measurement); err != nil {
		return nil, err
	}

	return measurement, nil
}

func (uc *MeasurementUseCase) Delete(ctx context.Context, customerID, id string) error {
	if _, err := uc.owned(ctx, customerID, id); err != nil {
		return err
	}
	return uc.measurementRepo.Delete(ctx, id)
}

func (uc *MeasurementUseCase) owned(ctx context.Context, customerID, id string) (*entity.Measurement, error) {
	measurement, err := uc.measurementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if measurement.CustomerID != customerID {
		return nil, errors.Forbidden("You don't have access to this measurement", nil)
	}
	return measurement, nil
}
