// Package flow defines the wizards the service offers and what happens when each one finishes.
package flow

import (
	"context"
	"fmt"
	"slices"

	bookingDto "chefbook/internal/domains/booking/model/dto"
	chefDto "chefbook/internal/domains/chef/model/dto"
	customerDto "chefbook/internal/domains/customer/model/dto"
	"chefbook/internal/domains/wizard/model"
	"chefbook/shared/constant"
	"chefbook/shared/failure"
)

type Name string

const (
	CustomerSignup Name = "customer_signup"
	ChefSignup     Name = "chef_signup"
	Booking        Name = "booking"
)

type Definition struct {
	Name     Name
	Steps    []model.Step
	Roles    []string
	Complete model.CompleteFunc
}

// Permits reports whether a caller with role may run the flow. No roles means anyone.
func (d Definition) Permits(role string) bool {
	return len(d.Roles) == 0 || slices.Contains(d.Roles, role)
}

type Catalog struct {
	flows map[Name]Definition
}

func New(customers CustomerRegistrar, chefs ChefRegistrar, bookings BookingCreator) *Catalog {
	return &Catalog{
		flows: map[Name]Definition{
			CustomerSignup: {
				Name:     CustomerSignup,
				Steps:    CustomerSignupSteps(),
				Complete: completeCustomerSignup(customers),
			},
			ChefSignup: {
				Name:     ChefSignup,
				Steps:    ChefSignupSteps(),
				Complete: completeChefSignup(chefs),
			},
			Booking: {
				Name:     Booking,
				Steps:    BookingSteps(),
				Roles:    []string{constant.RoleCustomer},
				Complete: completeBooking(bookings),
			},
		},
	}
}

func (c *Catalog) Lookup(name string) (Definition, error) {
	def, ok := c.flows[Name(name)]
	if !ok {
		return Definition{}, failure.NotFound(fmt.Sprintf("wizard flow %q not found", name)) //nolint:wrapcheck
	}

	return def, nil
}

func decode(data model.Data, out any) error {
	if err := data.Decode(out); err != nil {
		return failure.Validation(fmt.Sprintf("wizard answers are malformed: %v", err)) //nolint:wrapcheck
	}

	return nil
}

func completeCustomerSignup(customers CustomerRegistrar) model.CompleteFunc {
	return func(ctx context.Context, data model.Data) (any, error) {
		var req customerDto.RegisterRequest
		if err := decode(data, &req); err != nil {
			return nil, err
		}

		req.Verified = verifyValid(data)

		return customers.Register(ctx, req) //nolint:wrapcheck
	}
}

func completeChefSignup(chefs ChefRegistrar) model.CompleteFunc {
	return func(ctx context.Context, data model.Data) (any, error) {
		var req chefDto.RegisterRequest
		if err := decode(data, &req); err != nil {
			return nil, err
		}

		return chefs.Register(ctx, req) //nolint:wrapcheck
	}
}

func completeBooking(bookings BookingCreator) model.CompleteFunc {
	return func(ctx context.Context, data model.Data) (any, error) {
		var req bookingDto.CreateBookingRequest
		if err := decode(data, &req); err != nil {
			return nil, err
		}

		return bookings.Create(ctx, req) //nolint:wrapcheck
	}
}
