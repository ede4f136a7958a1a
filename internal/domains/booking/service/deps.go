package service

//go:generate go run go.uber.org/mock/mockgen -source=./deps.go -destination=../mocks/deps_mock.go -package=mocks

import (
	"context"
	"time"

	calendarModel "chefbook/internal/domains/calendar/model"
	chefDto "chefbook/internal/domains/chef/model/dto"
)

// ChefLookup resolves the chef a booking is addressed to.
type ChefLookup interface {
	Get(ctx context.Context, id string) (chefDto.ChefResponse, error)
}

// AvailabilityLookup reports which of a chef's dates are open.
type AvailabilityLookup interface {
	Provider(ctx context.Context, chefID string, from, to time.Time) (calendarModel.DateSet, error)
}
