package model

import (
	"time"

	"chefbook/internal/domains/booking/model/lifecycle"
	"chefbook/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldCustomerID       = "customer_id"
	FieldChefID           = "chef_id"
	FieldServiceType      = "service_type"
	FieldMealTypes        = "meal_types"
	FieldDates            = "dates"
	FieldTimeSlot         = "time_slot"
	FieldStartsAt         = "starts_at"
	FieldGuestCount       = "guest_count"
	FieldAdults           = "adults"
	FieldTeens            = "teens"
	FieldChildren         = "children"
	FieldCoursePreference = "course_preference"
	FieldDietaryTags      = "dietary_tags"
	FieldSpecialRequests  = "special_requests"
	FieldAmount           = "amount"
	FieldStatus           = "status"
)

type Booking struct {
	ID               string         `db:"id"`
	CustomerID       string         `db:"customer_id"`
	ChefID           string         `db:"chef_id"`
	ServiceType      string         `db:"service_type"`
	MealTypes        pq.StringArray `db:"meal_types"`
	Dates            pq.StringArray `db:"dates"`
	TimeSlot         string         `db:"time_slot"`
	StartsAt         time.Time      `db:"starts_at"`
	GuestCount       int            `db:"guest_count"`
	Adults           int            `db:"adults"`
	Teens            int            `db:"teens"`
	Children         int            `db:"children"`
	CoursePreference string         `db:"course_preference"`
	DietaryTags      pq.StringArray `db:"dietary_tags"`
	SpecialRequests  string         `db:"special_requests"`
	Amount           float64        `db:"amount"`
	Status           string         `db:"status"`
	model.Metadata
}

// Lifecycle projects the record onto the state machine's view.
func (b Booking) Lifecycle() lifecycle.Booking {
	return lifecycle.Booking{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		ChefID:     b.ChefID,
		Status:     lifecycle.Status(b.Status),
		StartsAt:   b.StartsAt,
		UpdatedAt:  b.ModifiedAt,
	}
}

// IsParty reports whether userID is the booking's customer or chef.
func (b Booking) IsParty(userID string) bool {
	return userID != "" && (b.CustomerID == userID || b.ChefID == userID)
}
