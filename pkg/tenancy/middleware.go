// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"net/http"

	httpTypes "github.com/dsadigitalplatform/admin-service/internal/http/types"
	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
	"github.com/dsadigitalplatform/admin-service/pkg/authentication"
)

type Middleware struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RequireTenant resolves the caller's current tenant and injects it into the
// request context. Requests that cannot be pinned to exactly one tenant are
// rejected, tenant-scoped handlers never see an ambiguous caller.
func (m *Middleware) RequireTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "tenancy.Middleware.RequireTenant")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				httpTypes.WriteError(w, types.ErrUnauthorized)
				return
			}

			preferred := ""
			if cookie, err := r.Cookie(CurrentTenantCookie); err == nil {
				preferred = cookie.Value
			}

			view, err := m.service.ResolveCurrentTenant(ctx, principal.ID, principal.Email, preferred)
			if err != nil {
				m.logger.Errorf("failed to resolve tenancy: %v", err)
				httpTypes.WriteError(w, err)
				return
			}

			if view.CurrentTenantID == "" {
				m.logger.Security().AuthzFailure(principal.ID, "tenant_scoped_access")
				httpTypes.WriteError(w, types.ErrForbidden)
				return
			}

			ctx = WithTenant(ctx, &TenantContext{
				TenantID: view.CurrentTenantID,
				Role:     view.CurrentRole,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
