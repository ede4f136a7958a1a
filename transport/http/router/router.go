package router

import (
	"chefbook/internal/handlers/auth"
	"chefbook/internal/handlers/booking"
	"chefbook/internal/handlers/chef"
	"chefbook/internal/handlers/customer"
	"chefbook/internal/handlers/upload"
	"chefbook/internal/handlers/wizard"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Customer customer.Handler
	Chef     chef.Handler
	Booking  booking.Handler
	Wizard   wizard.Handler
	Upload   upload.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Chef.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Wizard.Router(routerGroup)
		r.DomainHandlers.Upload.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
