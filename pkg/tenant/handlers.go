// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	httpTypes "github.com/dsadigitalplatform/admin-service/internal/http/types"
	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
	"github.com/dsadigitalplatform/admin-service/pkg/authentication"
	"github.com/dsadigitalplatform/admin-service/pkg/tenancy"
)

type API struct {
	service       ServiceInterface
	requireTenant func(http.Handler) http.Handler
	validate      *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	requireTenant func(http.Handler) http.Handler,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:       service,
		requireTenant: requireTenant,
		validate:      validator.New(),
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants", a.onboard)
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Put("/api/v0/tenants/{id}/status", a.setTenantStatus)

	mux.Group(func(r chi.Router) {
		r.Use(a.requireTenant)
		r.Get("/api/v0/tenant", a.getTenant)
		r.Patch("/api/v0/tenant", a.updateTenant)
		r.Get("/api/v0/tenant/members", a.listMembers)
	})
}

// tenantView is the wire shape of a tenant. Nullable columns flatten to
// optional fields, the creator stays internal.
type tenantView struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Type       types.TenantType   `json:"type"`
	Status     types.TenantStatus `json:"status"`
	Plan       *string            `json:"plan,omitempty"`
	ThemeColor *string            `json:"theme_color,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func newTenantView(t *types.Tenant) *tenantView {
	v := &tenantView{
		ID:        t.ID,
		Name:      t.Name,
		Type:      t.Type,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Plan.Valid {
		v.Plan = &t.Plan.String
	}
	if t.ThemeColor.Valid {
		v.ThemeColor = &t.ThemeColor.String
	}
	return v
}

type memberView struct {
	MembershipID string                 `json:"membership_id"`
	UserID       string                 `json:"user_id,omitempty"`
	Email        string                 `json:"email"`
	Role         types.Role             `json:"role"`
	Status       types.MembershipStatus `json:"status"`
	ExpiresAt    *time.Time             `json:"expires_at,omitempty"`
}

func newMemberView(m *types.TenantMember) *memberView {
	return &memberView{
		MembershipID: m.MembershipID,
		UserID:       m.UserID,
		Email:        m.Email,
		Role:         m.Role,
		Status:       m.Status,
		ExpiresAt:    m.ExpiresAt,
	}
}

type onboardRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=sole_trader company"`
}

func (a *API) onboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.onboard")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req onboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	created, err := a.service.Onboard(ctx, principal.ID, principal.Email, req.Name, types.TenantType(req.Type))
	if err != nil {
		a.logger.Errorf("failed to onboard tenant: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	// The new tenant becomes the current one right away.
	http.SetCookie(w, &http.Cookie{
		Name:     tenancy.CurrentTenantCookie,
		Value:    created.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpTypes.WriteJSON(w, http.StatusCreated, newTenantView(created), "tenant created")
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTenants")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrUnauthorized)
		return
	}
	if !principal.SuperAdmin {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		a.logger.Errorf("failed to list tenants: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	views := make([]*tenantView, 0, len(tenants))
	for _, t := range tenants {
		views = append(views, newTenantView(t))
	}

	httpTypes.WriteJSON(w, http.StatusOK, views, "")
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

func (a *API) setTenantStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setTenantStatus")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrUnauthorized)
		return
	}
	if !principal.SuperAdmin {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	tenantID := chi.URLParam(r, "id")
	if err := a.service.SetTenantStatus(ctx, tenantID, types.TenantStatus(req.Status)); err != nil {
		a.logger.Errorf("failed to set tenant status: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, nil, "tenant status updated")
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTenant")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	t, err := a.service.GetTenant(ctx, tc.TenantID, tc.Role)
	if err != nil {
		a.logger.Errorf("failed to get tenant: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, newTenantView(t), "")
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateTenant")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	var update TenantUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	updated, err := a.service.UpdateTenant(ctx, tc.TenantID, tc.Role, &update)
	if err != nil {
		a.logger.Errorf("failed to update tenant: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, newTenantView(updated), "tenant updated")
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listMembers")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	members, err := a.service.ListMembers(ctx, tc.TenantID, tc.Role)
	if err != nil {
		a.logger.Errorf("failed to list members: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	views := make([]*memberView, 0, len(members))
	for _, m := range members {
		views = append(views, newMemberView(m))
	}

	httpTypes.WriteJSON(w, http.StatusOK, views, "")
}
