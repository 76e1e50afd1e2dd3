// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httpTypes "github.com/dsadigitalplatform/admin-service/internal/http/types"
	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
	"github.com/dsadigitalplatform/admin-service/pkg/authentication"
)

// CurrentTenantCookie stores the caller's preferred tenant between requests.
const CurrentTenantCookie = "current_tenant"

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/me/tenancy", a.getTenancy)
	mux.Post("/api/v0/me/tenancy", a.selectTenant)
}

func (a *API) getTenancy(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.getTenancy")
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

	view, err := a.service.ResolveCurrentTenant(ctx, principal.ID, principal.Email, preferred)
	if err != nil {
		a.logger.Errorf("failed to resolve tenancy: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, view, "")
}

type selectTenantRequest struct {
	TenantID string `json:"tenant_id"`
}

func (a *API) selectTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.selectTenant")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req selectTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TenantID == "" {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	view, err := a.service.ResolveCurrentTenant(ctx, principal.ID, principal.Email, req.TenantID)
	if err != nil {
		a.logger.Errorf("failed to resolve tenancy: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	if view.CurrentTenantID != req.TenantID {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CurrentTenantCookie,
		Value:    view.CurrentTenantID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpTypes.WriteJSON(w, http.StatusOK, view, "")
}
