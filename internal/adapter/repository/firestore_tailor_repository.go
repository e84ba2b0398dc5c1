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
)

type firestoreTailorRepository struct {
	client *firestore.Client
}

func NewFirestoreTailorRepository(client *firestore.Client) repository.TailorRepository {
	return &firestoreTailorRepository{
		client: client,
	}
}

func (r *firestoreTailorRepository) Create(ctx context.Context, tailor *entity.TailorProfile) error {
	if tailor.ID == "" {
		doc := r.client.Collection("tailors").NewDoc()
		tailor.ID = doc.ID
	}

	now := time.Now()
	if tailor.CreatedAt.IsZero() {
		tailor.CreatedAt = now
	}
	tailor.UpdatedAt = now

	_, err := r.client.Collection("tailors").Doc(tailor.ID).Set(ctx, tailor)
	if err != nil {
		return errors.Internal("Failed to create tailor profile", err)
	}

	return nil
}

func (r *firestoreTailorRepository) GetByID(ctx context.Context, id string) (*entity.TailorProfile, error) {
	doc, err := r.client.Collection("tailors").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Tailor", err)
		}
		return nil, errors.Internal("Failed to get tailor profile", err)
	}

	var tailor entity.TailorProfile
	if err := doc.DataTo(&tailor); err != nil {
		return nil, errors.Internal("Failed to parse tailor data", err)
	}

	return &tailor, nil
}

func (r *firestoreTailorRepository) GetByUserID(ctx context.Context, userID string) (*entity.TailorProfile, error) {
	query := r.client.Collection("tailors").Where("userId", "==", userID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()

	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Tailor", nil)
		}
		return nil, errors.Internal("Failed to query tailor profile", err)
	}

	var tailor entity.TailorProfile
	if err := doc.DataTo(&tailor); err != nil {
		return nil, errors.Internal("Failed to parse tailor data", err)
	}

	return &tailor, nil
}

func (r *firestoreTailorRepository) List(ctx context.Context) ([]*entity.TailorProfile, error) {
	// Discovery filters on specialties, substrings and price ranges, none of
	// which Firestore can index for us, so the whole collection is fetched
	// and narrowed in memory.
	query := r.client.Collection("tailors").OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	var tailors []*entity.TailorProfile

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate tailors", err)
		}
		var tailor entity.TailorProfile
		if err := doc.DataTo(&tailor); err != nil {
			return nil, errors.Internal("Failed to parse tailor data", err)
		}
		tailors = append(tailors, &tailor)
	}

	return tailors, nil
}

func (r *firestoreTailorRepository) Update(ctx context.Context, tailor *entity.TailorProfile) error {
	tailor.UpdatedAt = time.Now()

	_, err := r.client.Collection("tailors").Doc(tailor.ID).Set(ctx, tailor)
	if err != nil {
		return errors.Internal("Failed to update tailor profile", err)
	}

	return nil
}
