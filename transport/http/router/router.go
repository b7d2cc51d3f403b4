package router

import (
	"crew/internal/handlers/auth"
	"crew/internal/handlers/booking"
	"crew/internal/handlers/customer"
	"crew/internal/handlers/event"
	"crew/internal/handlers/mechanic"
	"crew/internal/handlers/workshop"
	"crew/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Booking  booking.Handler
	Customer customer.Handler
	Event    event.Handler
	Mechanic mechanic.Handler
	Workshop workshop.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

// SetupRoutes mounts the API under /v1. Workshop bootstrap and login stay
// open; everything else requires a logged-in mechanic.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup, r.AuthMiddleware.Auth)
		r.DomainHandlers.Workshop.Router(routerGroup, r.AuthMiddleware.Auth)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Booking.Router(authed)
			r.DomainHandlers.Customer.Router(authed)
			r.DomainHandlers.Event.Router(authed)
			r.DomainHandlers.Mechanic.Router(authed)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
