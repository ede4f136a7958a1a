package flow

//go:generate go run go.uber.org/mock/mockgen -source=./deps.go -destination=../mocks/flow_mock.go -package=mocks

import (
	"context"

	bookingDto "chefbook/internal/domains/booking/model/dto"
	chefDto "chefbook/internal/domains/chef/model/dto"
	customerDto "chefbook/internal/domains/customer/model/dto"
)

type CustomerRegistrar interface {
	Register(ctx context.Context, req customerDto.RegisterRequest) (customerDto.RegisterResponse, error)
}

type ChefRegistrar interface {
	Register(ctx context.Context, req chefDto.RegisterRequest) (chefDto.RegisterResponse, error)
}

type BookingCreator interface {
	Create(ctx context.Context, req bookingDto.CreateBookingRequest) (bookingDto.BookingResponse, error)
}
