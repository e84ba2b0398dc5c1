package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "tailorlink/internal/adapter/repository"
	"tailorlink/internal/domain/entity"
	"tailorlink/pkg/errors"
)

type reviewFixture struct {
	uc         *ReviewUseCase
	tailorUC   *TailorUseCase
	tailor     *entity.TailorProfile
	customerID string
}

// newReviewFixture seeds one customer, one tailor and one completed order
// between them, which is the precondition for writing a review.
func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	ctx := context.Background()

	tailorRepo := memrepo.NewMemoryTailorRepository()
	reviewRepo := memrepo.NewMemoryReviewRepository()
	orderRepo := memrepo.NewMemoryOrderRepository()
	userRepo := memrepo.NewMemoryUserRepository()

	tailorUC := NewTailorUseCase(tailorRepo, reviewRepo, nil)
	uc := NewReviewUseCase(reviewRepo, tailorRepo, orderRepo, userRepo, tailorUC)

	customer := &entity.User{
		ID:       "customer-1",
		Email:    "amira@example.com",
		FullName: "Amira Hassan",
		Role:     entity.RoleCustomer,
	}
	require.NoError(t, userRepo.Create(ctx, customer))

	tailor := &entity.TailorProfile{
		UserID:       "tailor-user-1",
		BusinessName: "Suit Studio",
	}
	require.NoError(t, tailorRepo.Create(ctx, tailor))

	require.NoError(t, orderRepo.Create(ctx, &entity.Order{
		CustomerID: customer.ID,
		TailorID:   tailor.ID,
		Status:     entity.OrderStatusCompleted,
	}))

	return &reviewFixture{
		uc:         uc,
		tailorUC:   tailorUC,
		tailor:     tailor,
		customerID: customer.ID,
	}
}

func TestCreateReviewRequiresCompletedOrder(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	// The seeded customer has a completed order, so the review goes through.
	review, err := f.uc.CreateReview(ctx, f.customerID, f.tailor.ID, CreateReviewInput{
		Rating:  5,
		Comment: "Perfect fit",
	})
	require.NoError(t, err)
	assert.Equal(t, "Amira Hassan", review.CustomerName)

	// A stranger with no order history is rejected.
	_, err = f.uc.CreateReview(ctx, "stranger", f.tailor.ID, CreateReviewInput{
		Rating:  1,
		Comment: "Never ordered",
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreateReviewUpdatesTailorAggregate(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	_, err := f.uc.CreateReview(ctx, f.customerID, f.tailor.ID, CreateReviewInput{
		Rating:  4,
		Comment: "Good work",
	})
	require.NoError(t, err)

	tailor, err := f.tailorUC.GetTailor(ctx, f.tailor.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, tailor.ReviewCount)
	assert.Equal(t, 4.0, tailor.Rating)
}

func TestRespondToReviewReplacesPreviousResponse(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	review, err := f.uc.CreateReview(ctx, f.customerID, f.tailor.ID, CreateReviewInput{
		Rating:  3,
		Comment: "Took a while",
	})
	require.NoError(t, err)

	first, err := f.uc.RespondToReview(ctx, "tailor-user-1", f.tailor.ID, review.ID, "Sorry for the delay")
	require.NoError(t, err)
	require.NotNil(t, first.Response)

	second, err := f.uc.RespondToReview(ctx, "tailor-user-1", f.tailor.ID, review.ID, "We have sped up since")
	require.NoError(t, err)
	require.NotNil(t, second.Response)
	assert.Equal(t, "We have sped up since", second.Response.Message)

	// Responding never duplicates the review.
	reviews, summary, err := f.uc.ListTailorReviews(ctx, f.tailor.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, 1, summary.TotalReviews)
}

func TestRespondToReviewOnlyByReviewedTailor(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	review, err := f.uc.CreateReview(ctx, f.customerID, f.tailor.ID, CreateReviewInput{
		Rating:  2,
		Comment: "Loose seams",
	})
	require.NoError(t, err)

	_, err = f.uc.RespondToReview(ctx, "someone-else", f.tailor.ID, review.ID, "Not my review")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestListTailorReviewsSummaryTracksPendingResponses(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	review, err := f.uc.CreateReview(ctx, f.customerID, f.tailor.ID, CreateReviewInput{
		Rating:  5,
		Comment: "Excellent",
	})
	require.NoError(t, err)

	_, summary, err := f.uc.ListTailorReviews(ctx, f.tailor.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PendingResponses)

	_, err = f.uc.RespondToReview(ctx, "tailor-user-1", f.tailor.ID, review.ID, "Thank you!")
	require.NoError(t, err)

	_, summary, err = f.uc.ListTailorReviews(ctx, f.tailor.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.PendingResponses)
	assert.Equal(t, 1, summary.TotalReviews)
	assert.Equal(t, 5.0, summary.AverageRating)
}

func TestListTailorReviewsUnknownTailor(t *testing.T) {
	f := newReviewFixture(t)
	_, _, err := f.uc.ListTailorReviews(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
