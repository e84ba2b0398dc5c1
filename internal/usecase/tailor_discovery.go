package usecase

import (
	"sort"
	"strconv"
	"strings"

	"tailorlink/internal/domain/entity"
)

// Sort labels accepted by the discovery endpoint. Anything else leaves the
// upstream order untouched.
const (
	SortPopular      = "Popular"
	SortHighestRated = "Highest Rated"
	SortPriceLowHigh = "Price: Low to High"
	SortPriceHighLow = "Price: High to Low"
)

// TailorQuery carries the raw discovery parameters. Every field is optional;
// a field that is empty or fails to parse skips its filter stage rather than
// producing an error, so discovery never fails on malformed input.
type TailorQuery struct {
	Specialties string
	MinRating   string
	Search      string
	PriceRange  string
	SortBy      string
	Page        int
	PageSize    int
}

// filterTailors narrows and orders the tailor collection per query. Each stage
// filters the previous stage's survivors; sorting changes order only, never
// membership.
func filterTailors(tailors []*entity.TailorProfile, q TailorQuery) []*entity.TailorProfile {
	result := tailors

	if tokens := parseSpecialties(q.Specialties); len(tokens) > 0 {
		result = filterBySpecialties(result, tokens)
	}

	if minRating, err := strconv.ParseFloat(q.MinRating, 64); q.MinRating != "" && err == nil {
		result = filterByMinRating(result, minRating)
	}

	if q.Search != "" {
		result = filterBySearch(result, strings.ToLower(q.Search))
	}

	if min, max, ok := parsePriceRange(q.PriceRange); ok {
		result = filterByPriceRange(result, min, max)
	}

	sortTailors(result, q.SortBy)

	return result
}

func parseSpecialties(raw string) []string {
	if raw == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// filterBySpecialties keeps tailors whose specialty list covers every
// requested token (AND semantics).
func filterBySpecialties(tailors []*entity.TailorProfile, tokens []string) []*entity.TailorProfile {
	matched := make([]*entity.TailorProfile, 0)
	for _, tailor := range tailors {
		have := make(map[string]bool, len(tailor.Specialties))
		for _, s := range tailor.Specialties {
			have[strings.ToLower(s)] = true
		}

		ok := true
		for _, token := range tokens {
			if !have[token] {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, tailor)
		}
	}
	return matched
}

func filterByMinRating(tailors []*entity.TailorProfile, minRating float64) []*entity.TailorProfile {
	matched := make([]*entity.TailorProfile, 0)
	for _, tailor := range tailors {
		if tailor.Rating >= minRating {
			matched = append(matched, tailor)
		}
	}
	return matched
}

// filterBySearch keeps tailors whose business name, description or any
// specialty contains the lowercased query as a substring.
func filterBySearch(tailors []*entity.TailorProfile, query string) []*entity.TailorProfile {
	matched := make([]*entity.TailorProfile, 0)
	for _, tailor := range tailors {
		if strings.Contains(strings.ToLower(tailor.BusinessName), query) ||
			strings.Contains(strings.ToLower(tailor.Description), query) {
			matched = append(matched, tailor)
			continue
		}
		for _, s := range tailor.Specialties {
			if strings.Contains(strings.ToLower(s), query) {
				matched = append(matched, tailor)
				break
			}
		}
	}
	return matched
}

// parsePriceRange parses a "min-max" string. Either half failing to parse
// disables the filter.
func parsePriceRange(raw string) (min, max int, ok bool) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, errMin := strconv.Atoi(strings.TrimSpace(parts[0]))
	max, errMax := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errMin != nil || errMax != nil {
		return 0, 0, false
	}
	return min, max, true
}

// filterByPriceRange keeps tailors whose own price range lies fully inside the
// requested range. This is containment, not overlap: a tailor priced 150-1500
// does not match a 0-1000 query.
func filterByPriceRange(tailors []*entity.TailorProfile, min, max int) []*entity.TailorProfile {
	matched := make([]*entity.TailorProfile, 0)
	for _, tailor := range tailors {
		if tailor.PriceRange.Min >= min && tailor.PriceRange.Max <= max {
			matched = append(matched, tailor)
		}
	}
	return matched
}

func sortTailors(tailors []*entity.TailorProfile, sortBy string) {
	switch sortBy {
	case SortPopular:
		sort.SliceStable(tailors, func(i, j int) bool {
			return tailors[i].ReviewCount > tailors[j].ReviewCount
		})
	case SortHighestRated:
		sort.SliceStable(tailors, func(i, j int) bool {
			return tailors[i].Rating > tailors[j].Rating
		})
	case SortPriceLowHigh:
		sort.SliceStable(tailors, func(i, j int) bool {
			return tailors[i].PriceRange.Min < tailors[j].PriceRange.Min
		})
	case SortPriceHighLow:
		sort.SliceStable(tailors, func(i, j int) bool {
			return tailors[i].PriceRange.Max > tailors[j].PriceRange.Max
		})
	}
}
