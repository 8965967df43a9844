// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/monitoring"
	"github.com/glambook/salon-service/internal/tracing"
	"github.com/glambook/salon-service/pkg/authentication"
	"github.com/glambook/salon-service/pkg/booking"
	"github.com/glambook/salon-service/pkg/dashboard"
	"github.com/glambook/salon-service/pkg/identity"
	"github.com/glambook/salon-service/pkg/metrics"
	"github.com/glambook/salon-service/pkg/status"
)

type RouterConfig struct {
	CORSAllowedOrigins []string

	IdentityService  identity.ServiceInterface
	BookingService   booking.ServiceInterface
	DashboardService dashboard.ServiceInterface
}

func NewRouter(
	cfg RouterConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	identityAPI := identity.NewAPI(cfg.IdentityService, tracer, monitor, logger)
	identityAPI.RegisterEndpoints(router)

	authenticate := authentication.NewMiddleware(cfg.IdentityService, tracer, monitor, logger).Authenticate()
	router.Group(func(protected chi.Router) {
		protected.Use(authenticate)

		identityAPI.RegisterProtectedEndpoints(protected)
		dashboard.NewAPI(cfg.DashboardService, tracer, monitor, logger).RegisterEndpoints(protected)
		booking.NewAPI(cfg.BookingService, tracer, monitor, logger).RegisterEndpoints(protected)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
