package dto

import (
	"fmt"
	"slices"
	"time"

	"chefbook/internal/domains/booking/model"
	"chefbook/internal/domains/booking/model/lifecycle"
	"chefbook/shared"
	"chefbook/shared/constant"
	gDto "chefbook/shared/dto"
	"chefbook/shared/failure"
	gModel "chefbook/shared/model"
	"chefbook/shared/timezone"

	"github.com/google/uuid"
)

type GuestBreakdown struct {
	Adults   int `json:"adults"   validate:"gte=0"`
	Teens    int `json:"teens"    validate:"gte=0"`
	Children int `json:"children" validate:"gte=0"`
}

func (g GuestBreakdown) Total() int {
	return g.Adults + g.Teens + g.Children
}

type CreateBookingRequest struct {
	ChefID           string          `json:"chef_id"           validate:"required,max=64"`
	ServiceType      string          `json:"service_type"      validate:"required,oneof=private_dinner meal_prep event_catering cooking_class"`
	MealTypes        []string        `json:"meal_types"        validate:"required,min=1,dive,oneof=breakfast brunch lunch dinner"`
	Dates            []string        `json:"dates"             validate:"required,min=1,max=31,dive,isodate"`
	TimeSlot         string          `json:"time_slot"         validate:"omitempty,timeslot"`
	GuestCount       int             `json:"guest_count"       validate:"gte=1,lte=500"`
	Guests           *GuestBreakdown `json:"guests"`
	CoursePreference string          `json:"course_preference" validate:"required,max=50"`
	DietaryTags      []string        `json:"dietary_tags"      validate:"omitempty,dive,required,max=50"`
	SpecialRequests  string          `json:"special_requests"  validate:"max=2000"`
	Amount           *float64        `json:"amount"            validate:"omitempty,gte=0"`
}

// Check covers the rules struct tags cannot express.
func (c CreateBookingRequest) Check() error {
	if c.Guests != nil && c.Guests.Total() != c.GuestCount {
		return failure.Validation(fmt.Sprintf("guest breakdown adds up to %d, expected %d", c.Guests.Total(), c.GuestCount))
	}

	seen := make(map[string]struct{}, len(c.Dates))
	for _, d := range c.Dates {
		if _, ok := seen[d]; ok {
			return failure.Validation(fmt.Sprintf("date %s is listed twice", d))
		}

		seen[d] = struct{}{}
	}

	return nil
}

// SortedDates returns the requested dates in ascending order. Call after validation.
func (c CreateBookingRequest) SortedDates() []string {
	dates := slices.Clone(c.Dates)
	slices.Sort(dates)

	return dates
}

// StartsAt is the first date at the time slot, in the application timezone.
func (c CreateBookingRequest) StartsAt(defaultSlot string) (time.Time, error) {
	slot := c.TimeSlot
	if slot == "" {
		slot = defaultSlot
	}

	dates := c.SortedDates()
	if len(dates) == 0 {
		return time.Time{}, failure.Validation("dates is required")
	}

	startsAt, err := timezone.Parse(constant.DayFormat+" "+constant.TimeSlotFormat, dates[0]+" "+slot)
	if err != nil {
		return time.Time{}, failure.Validation("invalid date or time slot")
	}

	return startsAt, nil
}

func (c CreateBookingRequest) ToModel(customerID, timeSlot string, startsAt time.Time, amount float64) model.Booking {
	var guests GuestBreakdown
	if c.Guests != nil {
		guests = *c.Guests
	} else {
		guests.Adults = c.GuestCount
	}

	return model.Booking{
		ID:               uuid.NewString(),
		CustomerID:       customerID,
		ChefID:           c.ChefID,
		ServiceType:      c.ServiceType,
		MealTypes:        c.MealTypes,
		Dates:            c.SortedDates(),
		TimeSlot:         timeSlot,
		StartsAt:         startsAt,
		GuestCount:       c.GuestCount,
		Adults:           guests.Adults,
		Teens:            guests.Teens,
		Children:         guests.Children,
		CoursePreference: c.CoursePreference,
		DietaryTags:      c.DietaryTags,
		SpecialRequests:  c.SpecialRequests,
		Amount:           amount,
		Status:           string(lifecycle.StatusPending),
		Metadata:         gModel.NewMetadata(customerID, timezone.Now()),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

// ListBookingsRequest selects which side of the booking the caller is listing as.
type ListBookingsRequest struct {
	Role   string `json:"role"   validate:"required,oneof=customer chef"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

type BookingResponse struct {
	ID               string         `json:"id"`
	CustomerID       string         `json:"customer_id"`
	ChefID           string         `json:"chef_id"`
	ServiceType      string         `json:"service_type"`
	MealTypes        []string       `json:"meal_types"`
	Dates            []string       `json:"dates"`
	TimeSlot         string         `json:"time_slot"`
	StartsAt         string         `json:"starts_at"`
	GuestCount       int            `json:"guest_count"`
	Guests           GuestBreakdown `json:"guests"`
	CoursePreference string         `json:"course_preference"`
	DietaryTags      []string       `json:"dietary_tags"`
	SpecialRequests  string         `json:"special_requests"`
	Amount           float64        `json:"amount"`
	Status           string         `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.CustomerID = m.CustomerID
	r.ChefID = m.ChefID
	r.ServiceType = m.ServiceType
	r.MealTypes = m.MealTypes
	r.Dates = m.Dates
	r.TimeSlot = m.TimeSlot
	r.StartsAt = timezone.Format(m.StartsAt, constant.DateFormat)
	r.GuestCount = m.GuestCount
	r.Guests = GuestBreakdown{Adults: m.Adults, Teens: m.Teens, Children: m.Children}
	r.CoursePreference = m.CoursePreference
	r.DietaryTags = m.DietaryTags
	r.SpecialRequests = m.SpecialRequests
	r.Amount = m.Amount
	r.Status = m.Status
	r.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}
