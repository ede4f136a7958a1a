package model

import (
	"chefbook/internal/domains/chef/model/discovery"
	"chefbook/shared/constant"
	"chefbook/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "chefs"
	EntityName = "chef"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldMobile      = "mobile"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldLocation    = "location"
	FieldBio         = "bio"
	FieldSpecialties = "specialties"
	FieldRating      = "rating"
	FieldReviewCount = "review_count"
	FieldPriceMin    = "price_min"
	FieldPriceMax    = "price_max"
	FieldGuestMin    = "guest_min"
	FieldGuestMax    = "guest_max"
	FieldEventTypes  = "event_types"
	FieldPhotos      = "photos"
)

// PublicColumns excludes the password hash.
var PublicColumns = []string{
	FieldID, FieldEmail, FieldMobile, FieldName, FieldLocation, FieldBio, FieldSpecialties,
	FieldRating, FieldReviewCount, FieldPriceMin, FieldPriceMax, FieldGuestMin, FieldGuestMax,
	FieldEventTypes, FieldPhotos,
	constant.FieldCreatedAt, constant.FieldModifiedAt, constant.FieldCreatedBy, constant.FieldModifiedBy,
}

type Chef struct {
	ID          string         `db:"id"`
	Email       string         `db:"email"`
	Mobile      string         `db:"mobile"`
	Password    string         `db:"password"`
	Name        string         `db:"name"`
	Location    string         `db:"location"`
	Bio         string         `db:"bio"`
	Specialties pq.StringArray `db:"specialties"`
	Rating      float64        `db:"rating"`
	ReviewCount int            `db:"review_count"`
	PriceMin    float64        `db:"price_min"`
	PriceMax    float64        `db:"price_max"`
	GuestMin    *int           `db:"guest_min"`
	GuestMax    *int           `db:"guest_max"`
	EventTypes  pq.StringArray `db:"event_types"`
	Photos      pq.StringArray `db:"photos"`
	model.Metadata
}

func (c Chef) ToListing() discovery.Listing {
	listing := discovery.Listing{
		ID:          c.ID,
		Name:        c.Name,
		Location:    c.Location,
		Specialties: c.Specialties,
		Rating:      c.Rating,
		ReviewCount: c.ReviewCount,
		PriceRange:  discovery.Range[float64]{Min: c.PriceMin, Max: c.PriceMax},
		CreatedAt:   c.CreatedAt,
	}

	if c.GuestMin != nil && c.GuestMax != nil {
		listing.GuestRange = &discovery.Range[int]{Min: *c.GuestMin, Max: *c.GuestMax}
	}

	for _, e := range c.EventTypes {
		listing.EventTypes = append(listing.EventTypes, discovery.EventType(e))
	}

	return listing
}
