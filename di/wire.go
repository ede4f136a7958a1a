//go:build wireinject
// +build wireinject

package di

import (
	"chefbook/config"
	"chefbook/infras/jwt"
	"chefbook/infras/kafka"
	"chefbook/infras/otel"
	"chefbook/infras/postgres"
	"chefbook/infras/redis"
	"chefbook/infras/s3"
	"chefbook/permissions"
	"chefbook/shared/cache"
	"chefbook/transport/http"
	"chefbook/transport/http/middleware"
	"chefbook/transport/http/router"

	authService "chefbook/internal/domains/auth/service"
	authHandler "chefbook/internal/handlers/auth"

	bookingRepository "chefbook/internal/domains/booking/repository"
	bookingService "chefbook/internal/domains/booking/service"
	bookingHandler "chefbook/internal/handlers/booking"

	calendarRepository "chefbook/internal/domains/calendar/repository"
	calendarService "chefbook/internal/domains/calendar/service"

	chefRepository "chefbook/internal/domains/chef/repository"
	chefService "chefbook/internal/domains/chef/service"
	chefHandler "chefbook/internal/handlers/chef"

	customerRepository "chefbook/internal/domains/customer/repository"
	customerService "chefbook/internal/domains/customer/service"
	customerHandler "chefbook/internal/handlers/customer"

	notificationService "chefbook/internal/domains/notification/service"

	uploadService "chefbook/internal/domains/upload/service"
	uploadHandler "chefbook/internal/handlers/upload"

	"chefbook/internal/domains/wizard/flow"
	wizardService "chefbook/internal/domains/wizard/service"
	wizardHandler "chefbook/internal/handlers/wizard"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
	wire.Bind(new(flow.CustomerRegistrar), new(customerService.Customer)),
)

var chefDomain = wire.NewSet(
	chefRepository.New,
	chefService.New,
	wire.Bind(new(bookingService.ChefLookup), new(chefService.Chef)),
	wire.Bind(new(flow.ChefRegistrar), new(chefService.Chef)),
)

var calendarDomain = wire.NewSet(
	calendarRepository.New,
	calendarService.New,
	wire.Bind(new(bookingService.AvailabilityLookup), new(calendarService.Calendar)),
	wire.Bind(new(wizardService.AvailabilityLookup), new(calendarService.Calendar)),
)

var bookingDomain = wire.NewSet(
	notificationService.New,
	bookingRepository.New,
	bookingService.New,
	wire.Bind(new(flow.BookingCreator), new(bookingService.Booking)),
)

var wizardDomain = wire.NewSet(
	flow.New,
	wizardService.New,
)

var uploadDomain = wire.NewSet(
	uploadService.New,
)

var domains = wire.NewSet(
	authDomain,
	customerDomain,
	chefDomain,
	calendarDomain,
	bookingDomain,
	wizardDomain,
	uploadDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	customerHandler.New,
	chefHandler.New,
	bookingHandler.New,
	wizardHandler.New,
	uploadHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
