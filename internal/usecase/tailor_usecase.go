package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/internal/infrastructure/cache"
	"tailorlink/pkg/errors"
	"tailorlink/pkg/logger"
	"tailorlink/pkg/utils"
)

const tailorCacheKey = "tailors:all"

type TailorUseCase struct {
	tailorRepo repository.TailorRepository
	reviewRepo repository.ReviewRepository
	cache      *cache.Cache
}

func NewTailorUseCase(
	tailorRepo repository.TailorRepository,
	reviewRepo repository.ReviewRepository,
	cache *cache.Cache,
) *TailorUseCase {
	return &TailorUseCase{
		tailorRepo: tailorRepo,
		reviewRepo: reviewRepo,
		cache:      cache,
	}
}

// ListTailors answers the discovery query: filter, sort, paginate. The full
// collection is aggregate-synced before filtering so rating/reviewCount are
// never stale. Returns the page plus the pre-pagination total.
func (uc *TailorUseCase) ListTailors(ctx context.Context, query TailorQuery) ([]*entity.TailorProfile, int, error) {
	var tailors []*entity.TailorProfile

	hit, err := uc.cache.Get(ctx, tailorCacheKey, &tailors)
	if err != nil {
		logger.Warn("Tailor cache read failed: %v", err)
		hit = false
	}

	if !hit {
		tailors, err = uc.tailorRepo.List(ctx)
		if err != nil {
			return nil, 0, err
		}
		for _, tailor := range tailors {
			if err := uc.syncAggregate(ctx, tailor); err != nil {
				return nil, 0, err
			}
		}
		if err := uc.cache.Set(ctx, tailorCacheKey, tailors); err != nil {
			logger.Warn("Tailor cache write failed: %v", err)
		}
	}

	filtered := filterTailors(tailors, query)
	total := len(filtered)
	page := utils.Paginate(filtered, query.Page, query.PageSize)

	return page, total, nil
}

// GetTailor returns one tailor with a freshly derived aggregate.
func (uc *TailorUseCase) GetTailor(ctx context.Context, id string) (*entity.TailorProfile, error) {
	tailor, err := uc.tailorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.syncAggregate(ctx, tailor); err != nil {
		return nil, err
	}
	return tailor, nil
}

func (uc *TailorUseCase) GetTailorByUserID(ctx context.Context, userID string) (*entity.TailorProfile, error) {
	tailor, err := uc.tailorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.syncAggregate(ctx, tailor); err != nil {
		return nil, err
	}
	return tailor, nil
}

// SyncTailorAggregate re-derives the tailor's rating and reviewCount from its
// review collection and stores them. A missing tailor is a silent no-op: the
// aggregate is re-derivable, so there is nothing to repair.
func (uc *TailorUseCase) SyncTailorAggregate(ctx context.Context, tailorID string) error {
	tailor, err := uc.tailorRepo.GetByID(ctx, tailorID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}
	return uc.syncAggregate(ctx, tailor)
}

// syncAggregate computes the summary for one tailor, mutates the passed
// struct and persists it. Idempotent: with no intervening review mutation a
// second call stores identical values.
func (uc *TailorUseCase) syncAggregate(ctx context.Context, tailor *entity.TailorProfile) error {
	reviews, err := uc.reviewRepo.ListByTailorID(ctx, tailor.ID)
	if err != nil {
		return err
	}

	tailor.ReviewCount = len(reviews)
	tailor.Rating = averageRating(reviews)

	return uc.tailorRepo.Update(ctx, tailor)
}

// averageRating is 0 for an empty list, otherwise the mean rounded
// half-away-from-zero to one decimal.
func averageRating(reviews []*entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}
	return math.Round(sum/float64(len(reviews))*10) / 10
}

type UpdateTailorProfileInput struct {
	BusinessName   string
	Description    string
	AvatarURL      string
	Specialties    []string
	Location       *entity.Location
	PriceRange     *entity.PriceRange
	TurnaroundTime string
}

// UpdateProfile edits the caller's own tailor profile. Rating and reviewCount
// are derived fields and cannot be set here.
func (uc *TailorUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateTailorProfileInput) (*entity.TailorProfile, error) {
	tailor, err := uc.tailorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.BusinessName != "" {
		tailor.BusinessName = input.BusinessName
	}
	if input.Description != "" {
		tailor.Description = input.Description
	}
	if input.AvatarURL != "" {
		tailor.AvatarURL = input.AvatarURL
	}
	if input.Specialties != nil {
		tailor.Specialties = input.Specialties
	}
	if input.Location != nil {
		tailor.Location = *input.Location
	}
	if input.PriceRange != nil {
		tailor.PriceRange = *input.PriceRange
	}
	if input.TurnaroundTime != "" {
		tailor.TurnaroundTime = input.TurnaroundTime
	}

	if err := uc.tailorRepo.Update(ctx, tailor); err != nil {
		return nil, err
	}

	uc.InvalidateDiscoveryCache(ctx)
	return tailor, nil
}

type PortfolioItemInput struct {
	MediaURL string
	Title    string
	Category string
	Price    *int
}

func (uc *TailorUseCase) AddPortfolioItem(ctx context.Context, userID string, input PortfolioItemInput) (*entity.TailorProfile, error) {
	tailor, err := uc.tailorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tailor.Portfolio = append(tailor.Portfolio, entity.PortfolioItem{
		ID:       uuid.New().String(),
		MediaURL: input.MediaURL,
		Title:    input.Title,
		Category: input.Category,
		Price:    input.Price,
	})

	if err := uc.tailorRepo.Update(ctx, tailor); err != nil {
		return nil, err
	}

	uc.InvalidateDiscoveryCache(ctx)
	return tailor, nil
}

func (uc *TailorUseCase) RemovePortfolioItem(ctx context.Context, userID, itemID string) (*entity.TailorProfile, error) {
	tailor, err := uc.tailorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	kept := tailor.Portfolio[:0]
	for _, item := range tailor.Portfolio {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, errors.NotFound("Portfolio item", nil)
	}
	tailor.Portfolio = kept

	if err := uc.tailorRepo.Update(ctx, tailor); err != nil {
		return nil, err
	}

	uc.InvalidateDiscoveryCache(ctx)
	return tailor, nil
}

// InvalidateDiscoveryCache drops the cached tailor collection after any
// mutation that can change what discovery returns.
func (uc *TailorUseCase) InvalidateDiscoveryCache(ctx context.Context) {
	if err := uc.cache.Del(ctx, tailorCacheKey); err != nil {
		logger.Warn("Tailor cache invalidation failed: %v", err)
	}
}
