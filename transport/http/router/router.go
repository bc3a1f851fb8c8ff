package router

import (
	"net/http"
	"salon/config"
	"salon/infras/metrics"
	"salon/internal/handlers/gateway"
	"salon/internal/handlers/health"
	"salon/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type DomainHandlers struct {
	Gateway gateway.Handler
	Health  health.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middleware.RequestID)
	router.Use(r.Middleware.Tracing)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(r.corsOptions()))
	}

	r.DomainHandlers.Health.Router(router)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())
		r.DomainHandlers.Gateway.Router(routerGroup)
	})

	if r.Config.Server.StaticDir != "" {
		router.NotFound(Static(r.Config.Server.StaticDir).ServeHTTP)
	}
}

// corsOptions leaves preflight answers to the gateway routes so they keep their 204.
func (r *Router) corsOptions() cors.Options {
	cfg := r.Config.App.CORS

	return cors.Options{
		AllowedOrigins:     cfg.AllowedOrigins,
		AllowedMethods:     cfg.AllowedMethods,
		AllowedHeaders:     cfg.AllowedHeaders,
		AllowCredentials:   cfg.AllowCredentials,
		MaxAge:             cfg.MaxAgeSeconds,
		OptionsPassthrough: true,
	}
}

func New(config *config.Config, domainHandlers DomainHandlers, middleware middleware.AppMiddleware) Router {
	return Router{
		Config:         config,
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
