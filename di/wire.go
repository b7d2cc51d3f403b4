//go:build wireinject
// +build wireinject

package di

import (
	"crew/config"
	"crew/infras/jwt"
	"crew/infras/otel"
	"crew/infras/sqlite"
	"crew/internal/state"
	"crew/transport/http"
	"crew/transport/http/middleware"
	"crew/transport/http/router"

	"github.com/google/wire"

	authService "crew/internal/domains/auth/service"
	bookingService "crew/internal/domains/booking/service"
	customerService "crew/internal/domains/customer/service"
	eventService "crew/internal/domains/event/service"
	mechanicService "crew/internal/domains/mechanic/service"
	workshopService "crew/internal/domains/workshop/service"

	authHandler "crew/internal/handlers/auth"
	bookingHandler "crew/internal/handlers/booking"
	customerHandler "crew/internal/handlers/customer"
	eventHandler "crew/internal/handlers/event"
	mechanicHandler "crew/internal/handlers/mechanic"
	workshopHandler "crew/internal/handlers/workshop"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var persistence = wire.NewSet(
	state.New,
)

var domains = wire.NewSet(
	authService.New,
	bookingService.New,
	customerService.New,
	eventService.New,
	mechanicService.New,
	workshopService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	customerHandler.New,
	eventHandler.New,
	mechanicHandler.New,
	workshopHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		persistence,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
