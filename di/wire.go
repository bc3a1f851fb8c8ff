//go:build wireinject
// +build wireinject

package di

import (
	"salon/config"
	"salon/infras/metrics"
	"salon/infras/otel"
	"salon/infras/redis"
	"salon/infras/upstream"
	"salon/internal/attachment"
	"salon/internal/session"
	"salon/shared/cache"
	"salon/transport/http"
	"salon/transport/http/middleware"
	"salon/transport/http/router"
	"salon/transport/http/state"

	"github.com/google/wire"

	availabilityService "salon/internal/domains/availability/service"
	bookingService "salon/internal/domains/booking/service"
	gatewayService "salon/internal/domains/gateway/service"
	gatewayHandler "salon/internal/handlers/gateway"
	healthHandler "salon/internal/handlers/health"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	upstream.New,
	metrics.DefaultRegisterer,
	metrics.NewGatewayMetrics,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	state.New,
)

var gatewayDomain = wire.NewSet(
	gatewayService.New,
)

var domains = wire.NewSet(
	gatewayDomain,
)

var clientDomains = wire.NewSet(
	upstream.NewClient,
	wire.FieldsOf(new(upstream.ClientHTTP), "Client"),
	attachment.NewFromConfig,
	availabilityService.New,
	bookingService.New,
	NewSession,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	gatewayHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeBooker() *session.Session {
	wire.Build(
		configurations,
		otel.New,
		clientDomains,
	)

	return &session.Session{}
}
