// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/pkg/authentication"
	"github.com/dsadigitalplatform/admin-service/pkg/cases"
	"github.com/dsadigitalplatform/admin-service/pkg/invitation"
	"github.com/dsadigitalplatform/admin-service/pkg/metrics"
	"github.com/dsadigitalplatform/admin-service/pkg/status"
	"github.com/dsadigitalplatform/admin-service/pkg/tenancy"
	"github.com/dsadigitalplatform/admin-service/pkg/tenant"
	"github.com/dsadigitalplatform/admin-service/pkg/webhooks"
)

const (
	apiRequestsPerSecond = 25
	apiBurst             = 50
)

func NewRouter(
	authnMiddleware *authentication.Middleware,
	tenancyAPI *tenancy.API,
	tenantAPI *tenant.API,
	invitationAPI *invitation.API,
	casesAPI *cases.API,
	webhooksAPI *webhooks.API,
	allowedOrigins []string,
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
		cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		newRateLimiter(apiRequestsPerSecond, apiBurst, logger).middleware(),
	)

	router.Use(middlewares...)

	// Unauthenticated surface: observability plus the hydra hook, which is
	// authenticated at the transport level.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	webhooksAPI.RegisterEndpoints(router)

	apiMux := chi.NewMux()
	apiMux.Use(authnMiddleware.Authenticate())

	tenancyAPI.RegisterEndpoints(apiMux)
	tenantAPI.RegisterEndpoints(apiMux)
	invitationAPI.RegisterEndpoints(apiMux)
	casesAPI.RegisterEndpoints(apiMux)

	router.Mount("/", apiMux)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
