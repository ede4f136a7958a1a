package discovery_test

import (
	"testing"
	"time"

	"chefbook/internal/domains/chef/model/discovery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []discovery.Listing {
	return []discovery.Listing{
		{
			ID: "c1", Name: "Marco Rossi", Location: "Lisbon",
			Specialties: []string{"Italian", "Seafood"}, Rating: 4.8, ReviewCount: 120,
			PriceRange: discovery.Range[float64]{Min: 80, Max: 150},
			GuestRange: &discovery.Range[int]{Min: 2, Max: 12},
			EventTypes: []discovery.EventType{discovery.EventPersonal},
			CreatedAt:  time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "c2", Name: "Aiko Tanaka", Location: "Porto",
			Specialties: []string{"Japanese"}, Rating: 4.9, ReviewCount: 40,
			PriceRange: discovery.Range[float64]{Min: 120, Max: 300},
			GuestRange: &discovery.Range[int]{Min: 10, Max: 60},
			EventTypes: []discovery.EventType{discovery.EventPersonal, discovery.EventCorporate},
			CreatedAt:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "c3", Name: "Lena Vogel", Location: "Lisbon",
			Specialties: []string{"Vegan", "Mediterranean"}, Rating: 4.2, ReviewCount: 300,
			PriceRange: discovery.Range[float64]{Min: 40, Max: 90},
			EventTypes: []discovery.EventType{discovery.EventCorporate},
			CreatedAt:  time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func ids(listings []discovery.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}

	return out
}

func TestMatches_DefaultCriteriaMatchesEverything(t *testing.T) {
	for _, criteria := range []discovery.Criteria{discovery.DefaultCriteria(), {}} {
		assert.Equal(t, []string{"c1", "c2", "c3"}, ids(discovery.Filter(catalog(), criteria, "")))
		assert.Zero(t, discovery.ActiveFilterCount(criteria))
	}
}

func TestMatches_Facets(t *testing.T) {
	tests := []struct {
		name     string
		criteria discovery.Criteria
		query    string
		want     []string
	}{
		{"query by name", discovery.Criteria{}, "aiko", []string{"c2"}},
		{"query by specialty", discovery.Criteria{}, "SEAFOOD", []string{"c1"}},
		{"query by location", discovery.Criteria{}, " porto ", []string{"c2"}},
		{"location", discovery.Criteria{Locations: []string{"lisbon"}}, "", []string{"c1", "c3"}},
		{"min rating", discovery.Criteria{MinRating: 4.5}, "", []string{"c1", "c2"}},
		{"cuisine", discovery.Criteria{Cuisines: []string{"vegan", "japanese"}}, "", []string{"c2", "c3"}},
		{"event type", discovery.Criteria{EventType: discovery.EventCorporate}, "", []string{"c2", "c3"}},
		{"price overlap", discovery.Criteria{PriceRange: discovery.Range[float64]{Min: 0, Max: 85}}, "", []string{"c1", "c3"}},
		{"price overlap at boundary", discovery.Criteria{PriceRange: discovery.Range[float64]{Min: 300, Max: 500}}, "", []string{"c2"}},
		{"guest overlap keeps undeclared", discovery.Criteria{GuestCountRange: discovery.Range[int]{Min: 40, Max: 50}}, "", []string{"c2", "c3"}},
		{
			"conjunction",
			discovery.Criteria{Locations: []string{"Lisbon"}, MinRating: 4.5, Cuisines: []string{"Italian"}},
			"marco",
			[]string{"c1"},
		},
		{"nothing", discovery.Criteria{Locations: []string{"Madrid"}}, "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(discovery.Filter(catalog(), tt.criteria, tt.query)))
		})
	}
}

func TestActiveFilterCount(t *testing.T) {
	criteria := discovery.Criteria{
		Locations:       []string{"Lisbon"},
		PriceRange:      discovery.Range[float64]{Min: 50, Max: 200},
		MinRating:       4,
		Cuisines:        []string{"Italian"},
		EventType:       discovery.EventPersonal,
		GuestCountRange: discovery.Range[int]{Min: 2, Max: 8},
	}

	assert.Equal(t, 6, discovery.ActiveFilterCount(criteria))

	criteria.EventType = discovery.EventAll
	criteria.PriceRange = discovery.DefaultPriceRange
	assert.Equal(t, 4, discovery.ActiveFilterCount(criteria))
}

func TestRangeOverlaps(t *testing.T) {
	r := discovery.Range[int]{Min: 5, Max: 10}

	assert.True(t, r.Overlaps(discovery.Range[int]{Min: 10, Max: 20}))
	assert.True(t, r.Overlaps(discovery.Range[int]{Min: 6, Max: 7}))
	assert.False(t, r.Overlaps(discovery.Range[int]{Min: 11, Max: 20}))
	assert.False(t, r.Overlaps(discovery.Range[int]{Min: 1, Max: 4}))
}

func TestSort(t *testing.T) {
	tests := []struct {
		key  discovery.SortKey
		want []string
	}{
		{discovery.SortRating, []string{"c2", "c1", "c3"}},
		{discovery.SortReviews, []string{"c3", "c1", "c2"}},
		{discovery.SortPriceAsc, []string{"c3", "c1", "c2"}},
		{discovery.SortPriceDesc, []string{"c2", "c1", "c3"}},
		{discovery.SortRecency, []string{"c2", "c1", "c3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			input := catalog()
			before := ids(input)

			assert.Equal(t, tt.want, ids(discovery.Sort(input, tt.key)))
			assert.Equal(t, before, ids(input))
		})
	}
}

func TestSort_TiesBreakByID(t *testing.T) {
	listings := []discovery.Listing{
		{ID: "b", Rating: 4},
		{ID: "c", Rating: 5},
		{ID: "a", Rating: 4},
	}

	assert.Equal(t, []string{"c", "a", "b"}, ids(discovery.Sort(listings, discovery.SortRating)))
}

func TestParseSortKey(t *testing.T) {
	key, err := discovery.ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, discovery.SortRating, key)

	key, err = discovery.ParseSortKey("price_desc")
	require.NoError(t, err)
	assert.Equal(t, discovery.SortPriceDesc, key)

	_, err = discovery.ParseSortKey("cheapest")
	assert.Error(t, err)
}
