package flow_test

import (
	"context"
	"strings"
	"testing"

	bookingDto "chefbook/internal/domains/booking/model/dto"
	chefDto "chefbook/internal/domains/chef/model/dto"
	customerDto "chefbook/internal/domains/customer/model/dto"
	"chefbook/internal/domains/wizard/flow"
	"chefbook/internal/domains/wizard/mocks"
	"chefbook/internal/domains/wizard/model"
	"chefbook/shared/constant"
	"chefbook/shared/failure"
	"chefbook/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stepValid(t *testing.T, steps []model.Step, id string, d model.Data) bool {
	t.Helper()

	for _, s := range steps {
		if s.ID == id {
			return s.IsValid == nil || s.IsValid(d)
		}
	}

	t.Fatalf("step %s not found", id)

	return false
}

func TestCustomerSignupSteps(t *testing.T) {
	steps := flow.CustomerSignupSteps()

	tests := []struct {
		step string
		data model.Data
		want bool
	}{
		{"contact", model.Data{"email": "ana@example.com", "mobile": "+351900000000"}, true},
		{"contact", model.Data{"email": "ana", "mobile": "+351900000000"}, false},
		{"contact", model.Data{"email": "ana@example.com"}, false},
		{"verify", model.Data{"verification_code": "123456"}, true},
		{"verify", model.Data{"verification_code": "12345"}, false},
		{"verify", model.Data{"verification_code": "12a456"}, false},
		{"profile", model.Data{"full_name": "Ana", "password": "longenough"}, true},
		{"profile", model.Data{"full_name": "Ana", "password": "short"}, false},
		{"profile", model.Data{"full_name": "A", "password": "longenough"}, false},
		{"preferences", model.Data{"dietary_tags": []any{"vegan", ""}}, false},
		{"preferences", model.Data{"dietary_tags": []any{"vegan"}}, true},
		{"preferences", model.Data{"dietary_tags": []any{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			assert.Equal(t, tt.want, stepValid(t, steps, tt.step, tt.data))
		})
	}
}

func TestChefSignupSteps(t *testing.T) {
	steps := flow.ChefSignupSteps()

	tests := []struct {
		name string
		step string
		data model.Data
		want bool
	}{
		{"profile", "profile", model.Data{"name": "Marco", "location": "Lisbon", "password": "longenough"}, true},
		{"profile without location", "profile", model.Data{"name": "Marco", "password": "longenough"}, false},
		{"profile password too long", "profile", model.Data{"name": "Marco", "location": "Lisbon", "password": strings.Repeat("p", 73)}, false},
		{"cuisine with a blank", "cuisine", model.Data{"specialties": []any{"Italian", ""}}, false},
		{"cuisine", "cuisine", model.Data{"specialties": []any{"Italian"}}, true},
		{"pricing", "pricing", model.Data{"price_min": 50.0, "price_max": 120.0, "guest_min": 2.0, "guest_max": 12.0}, true},
		{"pricing inverted", "pricing", model.Data{"price_min": 150.0, "price_max": 120.0, "guest_min": 2.0, "guest_max": 12.0}, false},
		{"pricing zero guests", "pricing", model.Data{"price_min": 0.0, "price_max": 0.0, "guest_min": 0.0, "guest_max": 12.0}, false},
		{"pricing missing", "pricing", model.Data{"price_min": 50.0}, false},
		{"photos", "photos", model.Data{"photos": []any{"https://cdn.example.com/a.jpg"}}, true},
		{"photos not urls", "photos", model.Data{"photos": []any{"a.jpg"}}, false},
		{"no photos", "photos", model.Data{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stepValid(t, steps, tt.step, tt.data))
		})
	}
}

func TestBookingSteps(t *testing.T) {
	steps := flow.BookingSteps()

	tests := []struct {
		name string
		step string
		data model.Data
		want bool
	}{
		{"chef", "chef", model.Data{"chef_id": "chef-1", "service_type": "private_dinner"}, true},
		{"chef without service type", "chef", model.Data{"chef_id": "chef-1"}, false},
		{"chef unknown service type", "chef", model.Data{"chef_id": "chef-1", "service_type": "takeaway"}, false},
		{"schedule", "schedule", model.Data{"dates": []any{"2025-10-20"}, "meal_types": []any{"dinner"}, "course_preference": "three_course"}, true},
		{"schedule without meals", "schedule", model.Data{"dates": []any{"2025-10-20"}, "course_preference": "three_course"}, false},
		{"schedule unknown meal", "schedule", model.Data{"dates": []any{"2025-10-20"}, "meal_types": []any{"supper"}, "course_preference": "three_course"}, false},
		{"schedule repeated date", "schedule", model.Data{"dates": []any{"2025-10-20", "2025-10-20"}, "meal_types": []any{"dinner"}, "course_preference": "three_course"}, false},
		{"schedule bad date", "schedule", model.Data{"dates": []any{"20/10/2025"}, "meal_types": []any{"dinner"}, "course_preference": "three_course"}, false},
		{"schedule bad time slot", "schedule", model.Data{"dates": []any{"2025-10-20"}, "meal_types": []any{"dinner"}, "course_preference": "three_course", "time_slot": "7pm"}, false},
		{"guests count only", "guests", model.Data{"guest_count": 4.0}, true},
		{"guests breakdown adds up", "guests", model.Data{"guest_count": 4.0, "guests": map[string]any{"adults": 2.0, "teens": 1.0, "children": 1.0}}, true},
		{"guests breakdown short", "guests", model.Data{"guest_count": 4.0, "guests": map[string]any{"adults": 2.0}}, false},
		{"guests negative", "guests", model.Data{"guest_count": 1.0, "guests": map[string]any{"adults": 2.0, "children": -1.0}}, false},
		{"guests zero", "guests", model.Data{"guest_count": 0.0}, false},
		{"dietary", "dietary", model.Data{"dietary_tags": []any{"none"}}, true},
		{"review", "review", model.Data{}, true},
		{"review long requests", "review", model.Data{"special_requests": strings.Repeat("x", 2001)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stepValid(t, steps, tt.step, tt.data))
		})
	}
}

// completes runs every step in order and fails the test on the first one that rejects d.
func completes(t *testing.T, steps []model.Step, d model.Data) {
	t.Helper()

	for _, s := range steps {
		if s.IsValid != nil {
			require.True(t, s.IsValid(d), "step %s rejected the answers", s.ID)
		}
	}
}

func TestStepsGateWhatCompletionRequires(t *testing.T) {
	t.Run("customer signup", func(t *testing.T) {
		d := model.Data{
			"email":             "ana@example.com",
			"mobile":            "+351900000000",
			"verification_code": "123456",
			"full_name":         "Ana",
			"password":          "longenough",
			"dietary_tags":      []any{"vegan"},
		}
		completes(t, flow.CustomerSignupSteps(), d)

		var req customerDto.RegisterRequest
		require.NoError(t, d.Decode(&req))
		require.NoError(t, validator.ValidateStruct(&req))
	})

	t.Run("chef signup", func(t *testing.T) {
		d := model.Data{
			"email":             "marco@example.com",
			"mobile":            "+351911111111",
			"verification_code": "654321",
			"name":              "Marco",
			"location":          "Lisbon",
			"password":          "longenough",
			"specialties":       []any{"Italian"},
			"price_min":         50.0,
			"price_max":         120.0,
			"guest_min":         2.0,
			"guest_max":         12.0,
			"photos":            []any{"https://cdn.example.com/a.jpg"},
		}
		completes(t, flow.ChefSignupSteps(), d)

		var req chefDto.RegisterRequest
		require.NoError(t, d.Decode(&req))
		require.NoError(t, validator.ValidateStruct(&req))
	})

	t.Run("booking", func(t *testing.T) {
		d := model.Data{
			"chef_id":           "chef-1",
			"service_type":      "event_catering",
			"dates":             []any{"2025-10-20", "2025-10-21"},
			"meal_types":        []any{"lunch", "dinner"},
			"course_preference": "three_course",
			"time_slot":         "18:30",
			"guest_count":       4.0,
			"guests":            map[string]any{"adults": 3.0, "children": 1.0},
			"dietary_tags":      []any{"none"},
			"special_requests":  "nut allergy",
		}
		completes(t, flow.BookingSteps(), d)

		var req bookingDto.CreateBookingRequest
		require.NoError(t, d.Decode(&req))
		require.NoError(t, validator.ValidateStruct(&req))
		require.NoError(t, req.Check())
	})

	t.Run("booking without a service type never reaches completion", func(t *testing.T) {
		d := model.Data{"chef_id": "chef-1"}

		assert.False(t, stepValid(t, flow.BookingSteps(), "chef", d))

		var req bookingDto.CreateBookingRequest
		require.NoError(t, d.Decode(&req))
		assert.Error(t, validator.ValidateStruct(&req))
	})
}

type fixture struct {
	catalog   *flow.Catalog
	customers *mocks.MockCustomerRegistrar
	chefs     *mocks.MockChefRegistrar
	bookings  *mocks.MockBookingCreator
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		customers: mocks.NewMockCustomerRegistrar(ctrl),
		chefs:     mocks.NewMockChefRegistrar(ctrl),
		bookings:  mocks.NewMockBookingCreator(ctrl),
	}
	f.catalog = flow.New(f.customers, f.chefs, f.bookings)

	return f
}

func TestCatalog_Lookup(t *testing.T) {
	f := setup(t)

	def, err := f.catalog.Lookup("booking")
	require.NoError(t, err)
	assert.True(t, def.Permits(constant.RoleCustomer))
	assert.False(t, def.Permits(constant.RoleChef))
	assert.False(t, def.Permits(""))

	def, err = f.catalog.Lookup("chef_signup")
	require.NoError(t, err)
	assert.True(t, def.Permits(""))

	_, err = f.catalog.Lookup("tax_return")
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestCatalog_CompletionRouting(t *testing.T) {
	t.Run("customer signup registers a verified customer", func(t *testing.T) {
		f := setup(t)

		f.customers.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req customerDto.RegisterRequest) (customerDto.RegisterResponse, error) {
				assert.Equal(t, "ana@example.com", req.Email)
				assert.Equal(t, []string{"vegan"}, req.DietaryTags)
				assert.True(t, req.Verified)

				return customerDto.RegisterResponse{Customer: customerDto.CustomerResponse{ID: "cust-1"}}, nil
			})

		def, err := f.catalog.Lookup("customer_signup")
		require.NoError(t, err)

		res, err := def.Complete(context.Background(), model.Data{
			"email":             "ana@example.com",
			"mobile":            "+351900000000",
			"verification_code": "123456",
			"full_name":         "Ana",
			"password":          "longenough",
			"dietary_tags":      []any{"vegan"},
		})

		require.NoError(t, err)
		assert.Equal(t, "cust-1", res.(customerDto.RegisterResponse).Customer.ID)
	})

	t.Run("chef signup registers a chef", func(t *testing.T) {
		f := setup(t)

		f.chefs.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req chefDto.RegisterRequest) (chefDto.RegisterResponse, error) {
				assert.InDelta(t, 50.0, req.PriceMin, 0.001)
				assert.Equal(t, 12, req.GuestMax)

				return chefDto.RegisterResponse{}, nil
			})

		def, err := f.catalog.Lookup("chef_signup")
		require.NoError(t, err)

		_, err = def.Complete(context.Background(), model.Data{"price_min": 50.0, "guest_max": 12.0})
		require.NoError(t, err)
	})

	t.Run("booking creates a booking", func(t *testing.T) {
		f := setup(t)

		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req bookingDto.CreateBookingRequest) (bookingDto.BookingResponse, error) {
				assert.Equal(t, "chef-1", req.ChefID)
				assert.Equal(t, 4, req.GuestCount)
				require.NotNil(t, req.Guests)
				assert.Equal(t, 2, req.Guests.Adults)

				return bookingDto.BookingResponse{ID: "b-1", Status: "pending"}, nil
			})

		def, err := f.catalog.Lookup("booking")
		require.NoError(t, err)

		res, err := def.Complete(context.Background(), model.Data{
			"chef_id":     "chef-1",
			"guest_count": 4.0,
			"guests":      map[string]any{"adults": 2.0, "teens": 2.0},
		})

		require.NoError(t, err)
		assert.Equal(t, "b-1", res.(bookingDto.BookingResponse).ID)
	})

	t.Run("malformed answers", func(t *testing.T) {
		f := setup(t)

		def, err := f.catalog.Lookup("booking")
		require.NoError(t, err)

		_, err = def.Complete(context.Background(), model.Data{"guest_count": "four"})

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})
}
