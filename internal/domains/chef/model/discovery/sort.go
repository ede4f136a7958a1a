package discovery

import (
	"cmp"
	"fmt"
	"slices"
)

type SortKey string

const (
	SortRating    SortKey = "rating"
	SortReviews   SortKey = "reviews"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortRecency   SortKey = "recency"
)

// ParseSortKey defaults to rating for an empty value.
func ParseSortKey(value string) (SortKey, error) {
	switch key := SortKey(value); key {
	case "":
		return SortRating, nil
	case SortRating, SortReviews, SortPriceAsc, SortPriceDesc, SortRecency:
		return key, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", value)
	}
}

// Sort returns a sorted copy. Prices order by the lower bound of the range; ties fall back to ID.
func Sort(listings []Listing, key SortKey) []Listing {
	sorted := slices.Clone(listings)

	slices.SortStableFunc(sorted, func(a, b Listing) int {
		var c int

		switch key {
		case SortReviews:
			c = cmp.Compare(b.ReviewCount, a.ReviewCount)
		case SortPriceAsc:
			c = cmp.Compare(a.PriceRange.Min, b.PriceRange.Min)
		case SortPriceDesc:
			c = cmp.Compare(b.PriceRange.Min, a.PriceRange.Min)
		case SortRecency:
			c = b.CreatedAt.Compare(a.CreatedAt)
		default:
			c = cmp.Compare(b.Rating, a.Rating)
		}

		if c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return sorted
}
