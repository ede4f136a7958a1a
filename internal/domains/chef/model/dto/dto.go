package dto

import (
	"chefbook/infras/jwt"
	"chefbook/internal/domains/chef/model"
	"chefbook/internal/domains/chef/model/discovery"
	"chefbook/shared"
	gDto "chefbook/shared/dto"
	gModel "chefbook/shared/model"
	"chefbook/shared/timezone"

	"github.com/google/uuid"
)

const maxSearchLimit = 100

type PriceRange struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gtefield=Min"`
}

type GuestRange struct {
	Min int `json:"min" validate:"gte=1"`
	Max int `json:"max" validate:"gtefield=Min"`
}

// SearchRequest is the filter panel payload plus the free-text query, sort key and paging.
type SearchRequest struct {
	Query           string      `json:"query"             validate:"max=200"`
	Locations       []string    `json:"locations"         validate:"omitempty,dive,max=100"`
	PriceRange      *PriceRange `json:"price_range"`
	MinRating       float64     `json:"min_rating"        validate:"gte=0,lte=5"`
	Cuisines        []string    `json:"cuisines"          validate:"omitempty,dive,max=100"`
	EventType       string      `json:"event_type"        validate:"omitempty,oneof=all personal corporate"`
	GuestCountRange *GuestRange `json:"guest_count_range"`
	Sort            string      `json:"sort"              validate:"omitempty,oneof=rating reviews price_asc price_desc recency"`
	Page            int         `json:"page"              validate:"gte=0"`
	Limit           int         `json:"limit"             validate:"gte=0,lte=100"`
}

func (s SearchRequest) ToCriteria() discovery.Criteria {
	criteria := discovery.Criteria{
		Locations: s.Locations,
		MinRating: s.MinRating,
		Cuisines:  s.Cuisines,
		EventType: discovery.EventType(s.EventType),
	}

	if s.PriceRange != nil {
		criteria.PriceRange = discovery.Range[float64]{Min: s.PriceRange.Min, Max: s.PriceRange.Max}
	}

	if s.GuestCountRange != nil {
		criteria.GuestCountRange = discovery.Range[int]{Min: s.GuestCountRange.Min, Max: s.GuestCountRange.Max}
	}

	return criteria.Normalize()
}

func (s SearchRequest) QueryParams() gDto.QueryParams {
	params := gDto.QueryParams{Page: s.Page, Limit: s.Limit}
	params.ApplyDefaults()

	if params.Limit > maxSearchLimit {
		params.Limit = maxSearchLimit
	}

	return params
}

type ChefResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Bio         string      `json:"bio"`
	Specialties []string    `json:"specialties"`
	Rating      float64     `json:"rating"`
	ReviewCount int         `json:"review_count"`
	PriceRange  PriceRange  `json:"price_range"`
	GuestRange  *GuestRange `json:"guest_range,omitempty"`
	EventTypes  []string    `json:"event_types"`
	Photos      []string    `json:"photos"`
	gDto.Metadata
}

func (r *ChefResponse) FromModel(m model.Chef) {
	r.ID = m.ID
	r.Name = m.Name
	r.Location = m.Location
	r.Bio = m.Bio
	r.Specialties = m.Specialties
	r.Rating = m.Rating
	r.ReviewCount = m.ReviewCount
	r.PriceRange = PriceRange{Min: m.PriceMin, Max: m.PriceMax}
	r.EventTypes = m.EventTypes
	r.Photos = m.Photos

	if m.GuestMin != nil && m.GuestMax != nil {
		r.GuestRange = &GuestRange{Min: *m.GuestMin, Max: *m.GuestMax}
	}

	r.Metadata.FromModel(m.Metadata)
}

type SearchResponse struct {
	Chefs         []ChefResponse `json:"chefs"`
	ActiveFilters int            `json:"active_filters"`
	TotalPage     int            `json:"total_page"`
	TotalData     int            `json:"total_data"`
}

func (r *SearchResponse) FromModels(models []model.Chef, activeFilters, totalData, limit int) {
	r.ActiveFilters = activeFilters
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Chefs = make([]ChefResponse, len(models))
	for i, m := range models {
		r.Chefs[i].FromModel(m)
	}
}

// RegisterRequest is assembled by the chef signup wizard.
type RegisterRequest struct {
	Email       string   `json:"email"       validate:"required,email"`
	Mobile      string   `json:"mobile"      validate:"required,min=6,max=20"`
	Password    string   `json:"password"    validate:"required,min=8,max=72"`
	Name        string   `json:"name"        validate:"required,max=255"`
	Location    string   `json:"location"    validate:"required,max=255"`
	Bio         string   `json:"bio"         validate:"max=2000"`
	Specialties []string `json:"specialties" validate:"required,min=1,dive,required"`
	PriceMin    float64  `json:"price_min"   validate:"gte=0"`
	PriceMax    float64  `json:"price_max"   validate:"gtefield=PriceMin"`
	GuestMin    int      `json:"guest_min"   validate:"gte=1"`
	GuestMax    int      `json:"guest_max"   validate:"gtefield=GuestMin"`
	EventTypes  []string `json:"event_types" validate:"omitempty,dive,oneof=personal corporate"`
	Photos      []string `json:"photos"      validate:"required,min=1,dive,url"`
}

func (r RegisterRequest) ToModel(hashedPassword string) model.Chef {
	id := uuid.NewString()
	guestMin, guestMax := r.GuestMin, r.GuestMax

	eventTypes := r.EventTypes
	if len(eventTypes) == 0 {
		eventTypes = []string{string(discovery.EventPersonal)}
	}

	return model.Chef{
		ID:          id,
		Email:       r.Email,
		Mobile:      r.Mobile,
		Password:    hashedPassword,
		Name:        r.Name,
		Location:    r.Location,
		Bio:         r.Bio,
		Specialties: r.Specialties,
		PriceMin:    r.PriceMin,
		PriceMax:    r.PriceMax,
		GuestMin:    &guestMin,
		GuestMax:    &guestMax,
		EventTypes:  eventTypes,
		Photos:      r.Photos,
		Metadata:    gModel.NewMetadata(id, timezone.Now()),
	}
}

type RegisterResponse struct {
	Chef  ChefResponse `json:"chef"`
	Token jwt.Token    `json:"token"`
}
