package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/pkg/errors"

	"github.com/google/uuid"
)

type firestoreMeasurementRepository struct {
	client *firestore.Client
}

func NewFirestoreMeasurementRepository(client *firestore.Client) repository.MeasurementRepository {
	return &firestoreMeasurementRepository{
		client: client,
	}
}

func (r *firestoreMeasurementRepository) Create(ctx context.Context, measurement *entity.Measurement) error {
	if measurement.ID == "" {
		measurement.ID = uuid.New().String()
	}

	now := time.Now()
	measurement.CreatedAt = now
	measurement.UpdatedAt = now

	_, err := r.client.Collection("measurements").Doc(measurement.ID).Set(ctx, measurement)
	if err != nil {
		return errors.Internal("Failed to create measurement", err)
	}

	return nil
}

func (r *firestoreMeasurementRepository) GetByID(ctx context.Context, id string) (*entity.Measurement, error) {
	doc, err := r.client.Collection("measurements").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Measurement", err)
		}
		return nil, errors.Internal("Failed to get measurement", err)
	}

	var measurement entity.Measurement
	if err := doc.DataTo(&measurement); err != nil {
		return nil, errors.Internal("Failed to parse measurement data", err)
	}

	return &measurement, nil
}

func (r *firestoreMeasurementRepository) ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Measurement, error) {
	query := r.client.Collection("measurements").Where("customerId", "==", customerID).OrderBy("createdAt", firestore.Asc)
	iter := query.Documents(ctx)

	measurements := make([]*entity.Measurement, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate measurements", err)
		}
		var measurement entity.Measurement
		if err := doc.DataTo(&measurement); err != nil {
			return nil, errors.Internal("Failed to parse measurement data", err)
		}
		measurements = append(measurements, &measurement)
	}

	return measurements, nil
}

func (r *firestoreMeasurementRepository) Update(ctx context.Context, measurement *entity.Measurement) error {
	measurement.UpdatedAt = time.Now()

	_, err := r.client.Collection("measurements").Doc(measurement.ID).Set(ctx, measurement)
	if err != nil {
		return errors.Internal("Failed to update measurement", err)
	}

	return nil
}

func (r *firestoreMeasurementRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("measurements").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete measurement", err)
	}

	return nil
}
