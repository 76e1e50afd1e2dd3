// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package cases

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
	mux.Group(func(r chi.Router) {
		r.Use(a.requireTenant)

		r.Post("/api/v0/customers", a.createCustomer)
		r.Get("/api/v0/customers", a.listCustomers)
		r.Get("/api/v0/customers/{id}", a.getCustomer)
		r.Put("/api/v0/customers/{id}", a.updateCustomer)

		r.Post("/api/v0/cases", a.createLoanCase)
		r.Get("/api/v0/cases", a.listLoanCases)
		r.Get("/api/v0/cases/{id}", a.getLoanCase)
		r.Put("/api/v0/cases/{id}/stage", a.updateStage)
	})
}

type customerView struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCustomerView(c *types.Customer) *customerView {
	return &customerView{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type loanCaseView struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Lender     string          `json:"lender,omitempty"`
	Product    string          `json:"product,omitempty"`
	Amount     int64           `json:"amount"`
	Stage      types.CaseStage `json:"stage"`
	Notes      string          `json:"notes,omitempty"`
	CreatedBy  string          `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func newLoanCaseView(lc *types.LoanCase) *loanCaseView {
	return &loanCaseView{
		ID:         lc.ID,
		CustomerID: lc.CustomerID,
		Lender:     lc.Lender,
		Product:    lc.Product,
		Amount:     lc.Amount,
		Stage:      lc.Stage,
		Notes:      lc.Notes,
		CreatedBy:  lc.CreatedBy,
		CreatedAt:  lc.CreatedAt,
		UpdatedAt:  lc.UpdatedAt,
	}
}

func (a *API) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "cases.API.createCustomer")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	var in CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}
	if err := a.validate.Struct(in); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	customer, err := a.service.CreateCustomer(ctx, tc.TenantID, tc.Role, &in)
	if err != nil {
		a.logger.Errorf("failed to create customer: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, newCustomerView(customer), "customer created")
}

func (a *API) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "cases.API.listCustomers")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	customers, err := a.service.ListCustomers(ctx, tc.TenantID)
	if err != nil {
		a.logger.Errorf("failed to list customers: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	views := make([]*customerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, newCustomerView(c))
	}

	httpTypes.WriteJSON(w, http.StatusOK, views, "")
}

func (a *API) getCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "cases.API.getCustomer")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	customer, err := a.service.GetCustomer(ctx, tc.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, newCustomerView(customer), "")
}

func (a *API) updateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "cases.API.updateCustomer")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	var in CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}
	if err := a.validate.Struct(in); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	customer, err := a.service.UpdateCustomer(ctx, tc.TenantID, chi.URLParam(r, "id"), tc.Role, &in)
	if err != nil {
		a.logger.Errorf("failed to update customer: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, newCustomerView(customer), "customer updated")
}

func (a *API) createLoanCase(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "cases.API.createLoanCase")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var in LoanCaseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}
	if err := a.validate.Struct(in); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	loanCase, err := a.service.CreateLoanCase(ctx, tc.TenantID, principal.ID, &in)
	if err != nil {
		a.logger.Errorf("failed to create loan case: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, newLoanCaseView(loanCase), "case created")
}

func (a *API) listLoanCases(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "cases.API.listLoanCases")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	loanCases, err := a.service.ListLoanCases(ctx, tc.TenantID)
	if err != nil {
		a.logger.Errorf("failed to list loan cases: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	views := make([]*loanCaseView, 0, len(loanCases))
	for _, lc := range loanCases {
		views = append(views, newLoanCaseView(lc))
	}

	httpTypes.WriteJSON(w, http.StatusOK, views, "")
}

func (a *API) getLoanCase(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "cases.API.getLoanCase")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	loanCase, err := a.service.GetLoanCase(ctx, tc.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, newLoanCaseView(loanCase), "")
}

type updateStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

func (a *API) updateStage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "cases.API.updateStage")
	defer span.End()

	tc, ok := tenancy.TenantFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, types.ErrForbidden)
		return
	}

	var req updateStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, types.ErrValidation)
		return
	}

	stage, err := types.ParseCaseStage(req.Stage)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	loanCase, err := a.service.UpdateStage(ctx, tc.TenantID, chi.URLParam(r, "id"), tc.Role, stage)
	if err != nil {
		a.logger.Errorf("failed to update case stage: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, newLoanCaseView(loanCase), "case stage updated")
}
