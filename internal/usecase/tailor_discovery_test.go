package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tailorlink/internal/domain/entity"
)

func discoveryFixture() []*entity.TailorProfile {
	return []*entity.TailorProfile{
		{
			ID:           "t1",
			BusinessName: "Suit Studio",
			Description:  "Bespoke suits and formal wear",
			Specialties:  []string{"Suits", "Formal"},
			Rating:       4.8,
			ReviewCount:  120,
			PriceRange:   entity.PriceRange{Min: 500, Max: 2000},
		},
		{
			ID:           "t2",
			BusinessName: "Quick Alterations",
			Description:  "Same day alterations",
			Specialties:  []string{"Alterations"},
			Rating:       4.2,
			ReviewCount:  300,
			PriceRange:   entity.PriceRange{Min: 50, Max: 200},
		},
		{
			ID:           "t3",
			BusinessName: "Bridal House",
			Description:  "Wedding dresses and gowns",
			Specialties:  []string{"Bridal", "Formal"},
			Rating:       5.0,
			ReviewCount:  45,
			PriceRange:   entity.PriceRange{Min: 1000, Max: 5000},
		},
		{
			ID:           "t4",
			BusinessName: "Corner Tailor",
			Description:  "Everyday repairs and suits",
			Specialties:  []string{"Suits", "Alterations", "Formal"},
			Rating:       3.9,
			ReviewCount:  80,
			PriceRange:   entity.PriceRange{Min: 150, Max: 1500},
		},
	}
}

func ids(tailors []*entity.TailorProfile) []string {
	out := make([]string, 0, len(tailors))
	for _, t := range tailors {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterTailorsNoQueryReturnsAll(t *testing.T) {
	result := filterTailors(discoveryFixture(), TailorQuery{})
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, ids(result))
}

func TestFilterTailorsSpecialtiesRequireEveryToken(t *testing.T) {
	// Single token matches every tailor carrying it.
	result := filterTailors(discoveryFixture(), TailorQuery{Specialties: "suits"})
	assert.Equal(t, []string{"t1", "t4"}, ids(result))

	// Multiple tokens are AND, not OR: only t4 has both.
	result = filterTailors(discoveryFixture(), TailorQuery{Specialties: "suits,alterations"})
	assert.Equal(t, []string{"t4"}, ids(result))

	// Matching is case-insensitive and tolerates whitespace.
	result = filterTailors(discoveryFixture(), TailorQuery{Specialties: " SUITS , Formal "})
	assert.Equal(t, []string{"t1", "t4"}, ids(result))
}

func TestFilterTailorsMinRatingIsInclusive(t *testing.T) {
	result := filterTailors(discoveryFixture(), TailorQuery{MinRating: "4.2"})
	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(result))

	// Unparseable rating disables the filter instead of erroring.
	result = filterTailors(discoveryFixture(), TailorQuery{MinRating: "high"})
	assert.Len(t, result, 4)
}

func TestFilterTailorsSearchMatchesNameDescriptionAndSpecialties(t *testing.T) {
	// Business name.
	result := filterTailors(discoveryFixture(), TailorQuery{Search: "bridal"})
	assert.Equal(t, []string{"t3"}, ids(result))

	// Description.
	result = filterTailors(discoveryFixture(), TailorQuery{Search: "wedding"})
	assert.Equal(t, []string{"t3"}, ids(result))

	// Specialty, case-insensitive.
	result = filterTailors(discoveryFixture(), TailorQuery{Search: "ALTER"})
	assert.Equal(t, []string{"t2", "t4"}, ids(result))

	result = filterTailors(discoveryFixture(), TailorQuery{Search: "no-such-tailor"})
	assert.Empty(t, result)
}

func TestFilterTailorsPriceRangeIsContainment(t *testing.T) {
	// t4 (150-1500) is not inside 0-1000 even though the ranges overlap.
	result := filterTailors(discoveryFixture(), TailorQuery{PriceRange: "0-1000"})
	assert.Equal(t, []string{"t2"}, ids(result))

	result = filterTailors(discoveryFixture(), TailorQuery{PriceRange: "0-2000"})
	assert.Equal(t, []string{"t1", "t2", "t4"}, ids(result))

	// Malformed range strings disable the filter.
	for _, raw := range []string{"cheap", "100", "100-abc", ""} {
		result = filterTailors(discoveryFixture(), TailorQuery{PriceRange: raw})
		assert.Len(t, result, 4, "priceRange %q should be ignored", raw)
	}
}

func TestFilterTailorsSorting(t *testing.T) {
	result := filterTailors(discoveryFixture(), TailorQuery{SortBy: SortPopular})
	assert.Equal(t, []string{"t2", "t1", "t4", "t3"}, ids(result))

	result = filterTailors(discoveryFixture(), TailorQuery{SortBy: SortHighestRated})
	assert.Equal(t, []string{"t3", "t1", "t2", "t4"}, ids(result))

	result = filterTailors(discoveryFixture(), TailorQuery{SortBy: SortPriceLowHigh})
	assert.Equal(t, []string{"t2", "t4", "t1", "t3"}, ids(result))

	result = filterTailors(discoveryFixture(), TailorQuery{SortBy: SortPriceHighLow})
	assert.Equal(t, []string{"t3", "t1", "t4", "t2"}, ids(result))
}

func TestFilterTailorsUnknownSortLeavesOrderUntouched(t *testing.T) {
	for _, sortBy := range []string{"", "popular", "rating-desc", "newest"} {
		result := filterTailors(discoveryFixture(), TailorQuery{SortBy: sortBy})
		assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, ids(result), "sortBy %q", sortBy)
	}
}

func TestFilterTailorsStagesCompose(t *testing.T) {
	result := filterTailors(discoveryFixture(), TailorQuery{
		Specialties: "formal",
		MinRating:   "4.0",
		SortBy:      SortHighestRated,
	})
	assert.Equal(t, []string{"t3", "t1"}, ids(result))
}
