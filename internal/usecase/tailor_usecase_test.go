package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "tailorlink/internal/adapter/repository"
	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
)

func newTailorUseCaseForTest(t *testing.T) (*TailorUseCase, repository.TailorRepository, repository.ReviewRepository) {
	t.Helper()
	tailorRepo := memrepo.NewMemoryTailorRepository()
	reviewRepo := memrepo.NewMemoryReviewRepository()
	return NewTailorUseCase(tailorRepo, reviewRepo, nil), tailorRepo, reviewRepo
}

func seedTailor(t *testing.T, repo repository.TailorRepository, tailor *entity.TailorProfile) *entity.TailorProfile {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), tailor))
	return tailor
}

func TestSyncTailorAggregateDerivesRatingAndCount(t *testing.T) {
	ctx := context.Background()
	uc, tailorRepo, reviewRepo := newTailorUseCaseForTest(t)

	tailor := seedTailor(t, tailorRepo, &entity.TailorProfile{BusinessName: "Suit Studio"})

	for _, rating := range []float64{5, 4, 5, 3} {
		require.NoError(t, reviewRepo.Create(ctx, &entity.Review{
			TailorID: tailor.ID,
			Rating:   rating,
			Comment:  "ok",
		}))
	}

	require.NoError(t, uc.SyncTailorAggregate(ctx, tailor.ID))

	stored, err := tailorRepo.GetByID(ctx, tailor.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.ReviewCount)
	// mean 4.25 rounds half away from zero to one decimal
	assert.Equal(t, 4.3, stored.Rating)
}

func TestSyncTailorAggregateZeroReviews(t *testing.T) {
	ctx := context.Background()
	uc, tailorRepo, _ := newTailorUseCaseForTest(t)

	tailor := seedTailor(t, tailorRepo, &entity.TailorProfile{
		BusinessName: "Fresh Start",
		Rating:       4.9, // stale value, must be overwritten
		ReviewCount:  12,
	})

	require.NoError(t, uc.SyncTailorAggregate(ctx, tailor.ID))

	stored, err := tailorRepo.GetByID(ctx, tailor.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.ReviewCount)
	assert.Equal(t, 0.0, stored.Rating)
}

func TestSyncTailorAggregateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, tailorRepo, reviewRepo := newTailorUseCaseForTest(t)

	tailor := seedTailor(t, tailorRepo, &entity.TailorProfile{BusinessName: "Suit Studio"})
	require.NoError(t, reviewRepo.Create(ctx, &entity.Review{TailorID: tailor.ID, Rating: 4}))

	require.NoError(t, uc.SyncTailorAggregate(ctx, tailor.ID))
	first, err := tailorRepo.GetByID(ctx, tailor.ID)
	require.NoError(t, err)

	require.NoError(t, uc.SyncTailorAggregate(ctx, tailor.ID))
	second, err := tailorRepo.GetByID(ctx, tailor.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Rating, second.Rating)
	assert.Equal(t, first.ReviewCount, second.ReviewCount)
}

func TestSyncTailorAggregateMissingTailorIsNoOp(t *testing.T) {
	uc, _, _ := newTailorUseCaseForTest(t)
	assert.NoError(t, uc.SyncTailorAggregate(context.Background(), "does-not-exist"))
}

func TestAverageRatingRounding(t *testing.T) {
	cases := []struct {
		ratings []float64
		want    float64
	}{
		{nil, 0},
		{[]float64{5}, 5},
		{[]float64{5, 4, 5, 3}, 4.3},
		{[]float64{4, 4, 5}, 4.3},
		{[]float64{1, 2}, 1.5},
		{[]float64{3, 4}, 3.5},
	}

	for _, tc := range cases {
		reviews := make([]*entity.Review, 0, len(tc.ratings))
		for _, r := range tc.ratings {
			reviews = append(reviews, &entity.Review{Rating: r})
		}
		assert.Equal(t, tc.want, averageRating(reviews), "ratings %v", tc.ratings)
	}
}

func TestListTailorsPagination(t *testing.T) {
	ctx := context.Background()
	uc, tailorRepo, _ := newTailorUseCaseForTest(t)

	for i := 0; i < 45; i++ {
		seedTailor(t, tailorRepo, &entity.TailorProfile{
			BusinessName: fmt.Sprintf("Tailor %02d", i),
		})
	}

	page, total, err := uc.ListTailors(ctx, TailorQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 45, total)
	assert.Len(t, page, 20)

	page, total, err = uc.ListTailors(ctx, TailorQuery{Page: 3, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 45, total)
	assert.Len(t, page, 5)

	// A page past the end is empty, not an error, and total is unchanged.
	page, total, err = uc.ListTailors(ctx, TailorQuery{Page: 4, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 45, total)
	assert.Empty(t, page)
}

func TestListTailorsTotalCountsAllMatchesBeforePagination(t *testing.T) {
	ctx := context.Background()
	uc, tailorRepo, _ := newTailorUseCaseForTest(t)

	for i := 0; i < 7; i++ {
		seedTailor(t, tailorRepo, &entity.TailorProfile{
			BusinessName: fmt.Sprintf("Formal Tailor %d", i),
			Specialties:  []string{"Formal"},
		})
	}
	seedTailor(t, tailorRepo, &entity.TailorProfile{
		BusinessName: "Casual Corner",
		Specialties:  []string{"Casual"},
	})

	page, total, err := uc.ListTailors(ctx, TailorQuery{Specialties: "formal", Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Len(t, page, 3)
}

func TestRemovePortfolioItem(t *testing.T) {
	ctx := context.Background()
	uc, tailorRepo, _ := newTailorUseCaseForTest(t)

	seedTailor(t, tailorRepo, &entity.TailorProfile{
		UserID:       "user-1",
		BusinessName: "Suit Studio",
	})

	updated, err := uc.AddPortfolioItem(ctx, "user-1", PortfolioItemInput{
		MediaURL: "https://example.com/1.jpg",
		Title:    "Navy suit",
	})
	require.NoError(t, err)
	require.Len(t, updated.Portfolio, 1)

	itemID := updated.Portfolio[0].ID

	updated, err = uc.RemovePortfolioItem(ctx, "user-1", itemID)
	require.NoError(t, err)
	assert.Empty(t, updated.Portfolio)

	_, err = uc.RemovePortfolioItem(ctx, "user-1", itemID)
	assert.Error(t, err)
}
