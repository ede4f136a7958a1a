package flow

import (
	"regexp"

	"chefbook/internal/domains/wizard/model"
	"chefbook/shared/validator"
)

const (
	KeyEmail            = "email"
	KeyMobile           = "mobile"
	KeyVerificationCode = "verification_code"
	KeyPassword         = "password"
	KeyFullName         = "full_name"
	KeyName             = "name"
	KeyLocation         = "location"
	KeyBio              = "bio"
	KeySpecialties      = "specialties"
	KeyPriceMin         = "price_min"
	KeyPriceMax         = "price_max"
	KeyGuestMin         = "guest_min"
	KeyGuestMax         = "guest_max"
	KeyPhotos           = "photos"
	KeyDietaryTags      = "dietary_tags"
	KeyChefID           = "chef_id"
	KeyServiceType      = "service_type"
	KeyDates            = "dates"
	KeyMealTypes        = "meal_types"
	KeyCoursePreference = "course_preference"
	KeyGuestCount       = "guest_count"
	KeyGuests           = "guests"
	KeyTimeSlot         = "time_slot"
	KeySpecialRequests  = "special_requests"
)

var verificationCode = regexp.MustCompile(`^\d{6}$`)

func passes(value any, tag string) bool {
	return validator.ValidateVar(value, tag) == nil
}

// list reads a string list exactly as it will decode. Any non-string entry spoils the whole list.
func list(d model.Data, key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil
			}

			out = append(out, s)
		}

		return out
	default:
		return nil
	}
}

func contactValid(d model.Data) bool {
	return passes(d.String(KeyEmail), "required,email") && passes(d.String(KeyMobile), "required,min=6,max=20")
}

// verifyValid only checks the code's shape; delivery and matching live outside this service.
func verifyValid(d model.Data) bool {
	return verificationCode.MatchString(d.String(KeyVerificationCode))
}

func passwordValid(d model.Data) bool {
	return passes(d.String(KeyPassword), "required,min=8,max=72")
}

func CustomerSignupSteps() []model.Step {
	return []model.Step{
		{ID: "contact", Message: "a valid email and mobile number are required", IsValid: contactValid},
		{ID: "verify", Message: "enter the 6-digit verification code", IsValid: verifyValid},
		{ID: "profile", Message: "name and a password of at least 8 characters are required", IsValid: func(d model.Data) bool {
			return passes(d.String(KeyFullName), "required,min=2,max=100") && passwordValid(d)
		}},
		{ID: "preferences", Message: "pick at least one dietary preference", IsValid: dietaryValid},
	}
}

func ChefSignupSteps() []model.Step {
	return []model.Step{
		{ID: "contact", Message: "a valid email and mobile number are required", IsValid: contactValid},
		{ID: "verify", Message: "enter the 6-digit verification code", IsValid: verifyValid},
		{ID: "profile", Message: "name, location and a password of at least 8 characters are required", IsValid: func(d model.Data) bool {
			return passes(d.String(KeyName), "required,max=255") &&
				passes(d.String(KeyLocation), "required,max=255") &&
				passes(d.String(KeyBio), "max=2000") &&
				passwordValid(d)
		}},
		{ID: "cuisine", Message: "pick at least one cuisine", IsValid: func(d model.Data) bool {
			return passes(list(d, KeySpecialties), "required,min=1,dive,required")
		}},
		{ID: "pricing", Message: "enter a valid price range and guest range", IsValid: pricingValid},
		{ID: "photos", Message: "upload at least one photo", IsValid: func(d model.Data) bool {
			return passes(list(d, KeyPhotos), "required,min=1,dive,url")
		}},
	}
}

func pricingValid(d model.Data) bool {
	priceMin, okMin := d.Float(KeyPriceMin)
	priceMax, okMax := d.Float(KeyPriceMax)
	guestMin, okGuestMin := d.Int(KeyGuestMin)
	guestMax, okGuestMax := d.Int(KeyGuestMax)

	if !okMin || !okMax || !okGuestMin || !okGuestMax {
		return false
	}

	return priceMin >= 0 && priceMax >= priceMin && guestMin >= 1 && guestMax >= guestMin
}

func BookingSteps() []model.Step {
	return []model.Step{
		{ID: "chef", Message: "choose a chef and the kind of service", IsValid: func(d model.Data) bool {
			return passes(d.String(KeyChefID), "required,max=64") &&
				passes(d.String(KeyServiceType), "required,oneof=private_dinner meal_prep event_catering cooking_class")
		}},
		{ID: "schedule", Message: "pick at least one date, a meal type and a course preference", IsValid: scheduleValid},
		{ID: "guests", Message: "the guest breakdown must add up to the guest count", IsValid: guestsValid},
		{ID: "dietary", Message: "pick at least one dietary requirement", IsValid: dietaryValid},
		{ID: "review", Message: "special requests are limited to 2000 characters", IsValid: func(d model.Data) bool {
			return passes(d.String(KeySpecialRequests), "max=2000")
		}},
	}
}

func dietaryValid(d model.Data) bool {
	return passes(list(d, KeyDietaryTags), "required,min=1,dive,required,max=50")
}

func scheduleValid(d model.Data) bool {
	return passes(list(d, KeyDates), "required,min=1,max=31,unique,dive,isodate") &&
		passes(list(d, KeyMealTypes), "required,min=1,dive,oneof=breakfast brunch lunch dinner") &&
		passes(d.String(KeyCoursePreference), "required,max=50") &&
		passes(d.String(KeyTimeSlot), "omitempty,timeslot")
}

func guestsValid(d model.Data) bool {
	count, ok := d.Int(KeyGuestCount)
	if !ok || count < 1 || count > 500 {
		return false
	}

	breakdown, ok := d.Object(KeyGuests)
	if !ok {
		return true
	}

	total := 0

	for _, key := range []string{"adults", "teens", "children"} {
		n, ok := breakdown.Int(key)
		if _, present := breakdown[key]; present && (!ok || n < 0) {
			return false
		}

		total += n
	}

	return total == count
}
