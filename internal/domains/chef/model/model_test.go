package model_test

import (
	"testing"

	"chefbook/internal/domains/chef/model"
	"chefbook/internal/domains/chef/model/discovery"

	"github.com/stretchr/testify/assert"
)

func TestChef_ToListing(t *testing.T) {
	minGuests, maxGuests := 2, 10

	chef := model.Chef{
		ID:          "c1",
		Name:        "Marco",
		Specialties: []string{"Italian"},
		PriceMin:    50,
		PriceMax:    90,
		GuestMin:    &minGuests,
		GuestMax:    &maxGuests,
		EventTypes:  []string{"personal"},
	}

	listing := chef.ToListing()

	assert.Equal(t, discovery.Range[float64]{Min: 50, Max: 90}, listing.PriceRange)
	assert.Equal(t, &discovery.Range[int]{Min: 2, Max: 10}, listing.GuestRange)
	assert.Equal(t, []discovery.EventType{discovery.EventPersonal}, listing.EventTypes)

	chef.GuestMax = nil
	assert.Nil(t, chef.ToListing().GuestRange)
}
