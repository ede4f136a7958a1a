// Package discovery filters and orders chef listings for the search page.
// Everything here is pure and safe for concurrent use.
package discovery

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

type EventType string

const (
	EventAll       EventType = "all"
	EventPersonal  EventType = "personal"
	EventCorporate EventType = "corporate"
)

// Range is a closed interval.
type Range[T cmp.Ordered] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

// Overlaps reports whether the two closed intervals share at least one point.
func (r Range[T]) Overlaps(o Range[T]) bool {
	return r.Min <= o.Max && o.Min <= r.Max
}

func (r Range[T]) IsZero() bool {
	var zero T

	return r.Min == zero && r.Max == zero
}

var (
	DefaultPriceRange = Range[float64]{Min: 0, Max: 1000}
	DefaultGuestRange = Range[int]{Min: 1, Max: 100}
)

type Listing struct {
	ID          string
	Name        string
	Location    string
	Specialties []string
	Rating      float64
	ReviewCount int
	PriceRange  Range[float64]
	GuestRange  *Range[int]
	EventTypes  []EventType
	CreatedAt   time.Time
}

type Criteria struct {
	Locations       []string
	PriceRange      Range[float64]
	MinRating       float64
	Cuisines        []string
	EventType       EventType
	GuestCountRange Range[int]
}

// DefaultCriteria matches every listing.
func DefaultCriteria() Criteria {
	return Criteria{
		PriceRange:      DefaultPriceRange,
		EventType:       EventAll,
		GuestCountRange: DefaultGuestRange,
	}
}

// Normalize fills unset facets with their defaults.
func (c Criteria) Normalize() Criteria {
	if c.PriceRange.IsZero() {
		c.PriceRange = DefaultPriceRange
	}

	if c.GuestCountRange.IsZero() {
		c.GuestCountRange = DefaultGuestRange
	}

	if c.EventType == "" {
		c.EventType = EventAll
	}

	return c
}

// Matches is the conjunction of every facet. Facets at their default always pass.
func Matches(l Listing, c Criteria, query string) bool {
	c = c.Normalize()

	return matchesQuery(l, query) &&
		matchesLocation(l, c.Locations) &&
		l.Rating >= c.MinRating &&
		matchesCuisine(l, c.Cuisines) &&
		matchesEventType(l, c.EventType) &&
		matchesGuests(l, c.GuestCountRange) &&
		matchesPrice(l, c.PriceRange)
}

// Filter keeps the listings that match, preserving order.
func Filter(listings []Listing, c Criteria, query string) []Listing {
	result := make([]Listing, 0, len(listings))

	for _, l := range listings {
		if Matches(l, c, query) {
			result = append(result, l)
		}
	}

	return result
}

// ActiveFilterCount counts facets that differ from their default. The free-text query is not a facet.
func ActiveFilterCount(c Criteria) int {
	c = c.Normalize()
	count := 0

	if len(c.Locations) > 0 {
		count++
	}

	if c.PriceRange != DefaultPriceRange {
		count++
	}

	if c.MinRating > 0 {
		count++
	}

	if len(c.Cuisines) > 0 {
		count++
	}

	if c.EventType != EventAll {
		count++
	}

	if c.GuestCountRange != DefaultGuestRange {
		count++
	}

	return count
}

func matchesQuery(l Listing, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(l.Name), query) || strings.Contains(strings.ToLower(l.Location), query) {
		return true
	}

	return slices.ContainsFunc(l.Specialties, func(s string) bool {
		return strings.Contains(strings.ToLower(s), query)
	})
}

func matchesLocation(l Listing, locations []string) bool {
	if len(locations) == 0 {
		return true
	}

	return slices.ContainsFunc(locations, func(loc string) bool {
		return strings.EqualFold(strings.TrimSpace(loc), l.Location)
	})
}

func matchesCuisine(l Listing, cuisines []string) bool {
	if len(cuisines) == 0 {
		return true
	}

	return slices.ContainsFunc(l.Specialties, func(s string) bool {
		return slices.ContainsFunc(cuisines, func(c string) bool { return strings.EqualFold(c, s) })
	})
}

func matchesEventType(l Listing, eventType EventType) bool {
	if eventType == EventAll {
		return true
	}

	return slices.Contains(l.EventTypes, eventType)
}

// a listing without a declared guest range is not excluded by the guest facet
func matchesGuests(l Listing, guests Range[int]) bool {
	if guests == DefaultGuestRange || l.GuestRange == nil {
		return true
	}

	return l.GuestRange.Overlaps(guests)
}

func matchesPrice(l Listing, price Range[float64]) bool {
	if price == DefaultPriceRange {
		return true
	}

	return l.PriceRange.Overlaps(price)
}
