package usecase

import (
	"context"
	"time"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	tailorRepo repository.TailorRepository
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	tailorUC   *TailorUseCase
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	tailorRepo repository.TailorRepository,
	orderRepo  repository.OrderRepository,
	userRepo repository.UserRepository,
	tailorUC *TailorUseCase,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		tailorRepo: tailorRepo,
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		tailorUC:   tailorUC,
	}
}

// ListTailorReviews returns a tailor's reviews with the derived summary.
// The tailor's stored aggregate is re-synced first so every observation of
// rating/reviewCount reflects the current review collection.
func (uc *ReviewUseCase) ListTailorReviews(ctx context.Context, tailorID string) ([]*entity.Review, *entity.ReviewSummary, error) {
	if _, err := uc.tailorRepo.GetByID(ctx, tailorID); err != nil {
		return nil, nil, err
	}

	if err := uc.tailorUC.SyncTailorAggregate(ctx, tailorID); err != nil {
		return nil, nil, err
	}

	reviews, err := uc.reviewRepo.ListByTailorID(ctx, tailorID)
	if err != nil {
		return nil, nil, err
	}

	pending := 0
	for _, review := range reviews {
		if review.Response == nil {
			pending++
		}
	}

	summary := &entity.ReviewSummary{
		TotalReviews:     len(reviews),
		AverageRating:    averageRating(reviews),
		PendingResponses: pending,
	}

	return reviews, summary, nil
}

type CreateReviewInput struct {
	Rating      float64
	Comment     string
	OrderType   string
	OrderAmount *float64
	Images      []string
}

// CreateReview lets a customer review a tailor they have a completed order
// with. Customer name and avatar are snapshotted onto the review.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, customerID, tailorID string, input CreateReviewInput) (*entity.Review, error) {
	if _, err := uc.tailorRepo.GetByID(ctx, tailorID); err != nil {
		return nil, err
	}

	orders, _, err := uc.orderRepo.ListByCustomerID(ctx, customerID, 0, 0)
	if err != nil {
		return nil, err
	}
	eligible := false
	for _, order := range orders {
		if order.TailorID == tailorID && order.Status == entity.OrderStatusCompleted {
			eligible = true
			break
		}
	}
	if !eligible {
		return nil, errors.Forbidden("Only customers with a completed order can review this tailor", nil)
	}

	customer, err := uc.userRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		TailorID:       tailorID,
		CustomerID:     customerID,
		CustomerName:   customer.FullName,
		CustomerAvatar: customer.AvatarURL,
		Rating:         input.Rating,
		Comment:        input.Comment,
		OrderType:      input.OrderType,
		OrderAmount:    input.OrderAmount,
		Images:         input.Images,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.tailorUC.SyncTailorAggregate(ctx, tailorID); err != nil {
		return nil, err
	}
	uc.tailorUC.InvalidateDiscoveryCache(ctx)

	return review, nil
}

// RespondToReview records the tailor's reply. Responding again replaces the
// previous response; it never appends and never changes the review count.
func (uc *ReviewUseCase) RespondToReview(ctx context.Context, callerUID, tailorID, reviewID, message string) (*entity.Review, error) {
	tailor, err := uc.tailorRepo.GetByID(ctx, tailorID)
	if err != nil {
		return nil, err
	}

	if tailor.UserID != callerUID {
		return nil, errors.Forbidden("Only the reviewed tailor may respond", nil)
	}

	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.TailorID != tailorID {
		return nil, errors.NotFound("Review", nil)
	}

	review.Response = &entity.ReviewResponse{
		Message:     message,
		ResponderID: callerUID,
		RespondedAt: time.Now(),
	}

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.tailorUC.SyncTailorAggregate(ctx, tailorID); err != nil {
		return nil, err
	}
	uc.tailorUC.InvalidateDiscoveryCache(ctx)

	return review, nil
}
