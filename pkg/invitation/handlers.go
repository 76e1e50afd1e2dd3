// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"encoding/json"
	"net/http"

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
	service  ServiceInterface
	validate *validator.Validate

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
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/invitations", a.createInvitation)
	mux.Post("/api/v0/invitations/accept", a.acceptInvitation)
	mux.Get("/api/v0/invitations/validate", a.validateToken)
}

type createInvitationRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required"`
}

func (a *API) createInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.createInvitation")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req createInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	role, err := types.ParseRole(req.Role)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	invite, err := a.service.CreateInvitation(ctx, principal.ID, req.TenantID, req.Email, role)
	if err != nil {
		a.logger.Errorf("failed to create invitation: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, invite, "invitation created")
}

type acceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

func (a *API) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.acceptInvitation")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req acceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	result, err := a.service.AcceptInvitation(ctx, req.Token, principal.ID, principal.Email)
	if err != nil {
		a.logger.Errorf("failed to accept invitation: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	// Joining a tenant makes it the current one for the session.
	http.SetCookie(w, &http.Cookie{
		Name:     tenancy.CurrentTenantCookie,
		Value:    result.TenantID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpTypes.WriteJSON(w, http.StatusOK, result, "invitation accepted")
}

func (a *API) validateToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.validateToken")
	defer span.End()

	token := r.URL.Query().Get("token")
	if token == "" {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	invite, err := a.service.ValidateToken(ctx, token)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, invite, "")
}
