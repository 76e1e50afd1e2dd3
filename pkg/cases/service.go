// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package cases

import (
	"context"
	"fmt"
	"strings"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

type CustomerInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

type LoanCaseInput struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Lender     string `json:"lender"`
	Product    string `json:"product"`
	Amount     int64  `json:"amount" validate:"gte=0"`
	Notes      string `json:"notes"`
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateCustomer records a customer for the tenant. Managing members only,
// customers carry PII the tenant is accountable for.
func (s *Service) CreateCustomer(ctx context.Context, tenantID string, requesterRole types.Role, in *CustomerInput) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "cases.Service.CreateCustomer")
	defer span.End()

	if !types.CanManage(requesterRole) {
		return nil, types.ErrForbidden
	}

	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", types.ErrValidation)
	}

	return s.storage.CreateCustomer(ctx, &types.Customer{
		TenantID: tenantID,
		FullName: name,
		Email:    in.Email,
		Phone:    in.Phone,
	})
}

func (s *Service) GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "cases.Service.GetCustomer")
	defer span.End()

	return s.storage.GetCustomer(ctx, tenantID, id)
}

func (s *Service) ListCustomers(ctx context.Context, tenantID string) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "cases.Service.ListCustomers")
	defer span.End()

	return s.storage.ListCustomers(ctx, tenantID)
}

func (s *Service) UpdateCustomer(ctx context.Context, tenantID, id string, requesterRole types.Role, in *CustomerInput) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "cases.Service.UpdateCustomer")
	defer span.End()

	if !types.CanManage(requesterRole) {
		return nil, types.ErrForbidden
	}

	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", types.ErrValidation)
	}

	customer := &types.Customer{
		ID:       id,
		TenantID: tenantID,
		FullName: name,
		Email:    in.Email,
		Phone:    in.Phone,
	}

	if err := s.storage.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}

	return s.storage.GetCustomer(ctx, tenantID, id)
}

// CreateLoanCase opens a case in the lead stage. Any active member can open
// cases, that is the daily work of the tenant's agents.
func (s *Service) CreateLoanCase(ctx context.Context, tenantID, userID string, in *LoanCaseInput) (*types.LoanCase, error) {
	ctx, span := s.tracer.Start(ctx, "cases.Service.CreateLoanCase")
	defer span.End()

	if in.CustomerID == "" {
		return nil, fmt.Errorf("customer id is required: %w", types.ErrValidation)
	}
	if in.Amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative: %w", types.ErrValidation)
	}

	// The customer lookup doubles as the tenant isolation check, a foreign
	// customer id is indistinguishable from a missing one.
	if _, err := s.storage.GetCustomer(ctx, tenantID, in.CustomerID); err != nil {
		return nil, err
	}

	return s.storage.CreateLoanCase(ctx, &types.LoanCase{
		TenantID:   tenantID,
		CustomerID: in.CustomerID,
		Lender:     in.Lender,
		Product:    in.Product,
		Amount:     in.Amount,
		Stage:      types.CaseStageLead,
		Notes:      in.Notes,
		CreatedBy:  userID,
	})
}

func (s *Service) GetLoanCase(ctx context.Context, tenantID, id string) (*types.LoanCase, error) {
	ctx, span := s.tracer.Start(ctx, "cases.Service.GetLoanCase")
	defer span.End()

	return s.storage.GetLoanCase(ctx, tenantID, id)
}

func (s *Service) ListLoanCases(ctx context.Context, tenantID string) ([]*types.LoanCase, error) {
	ctx, span := s.tracer.Start(ctx, "cases.Service.ListLoanCases")
	defer span.End()

	return s.storage.ListLoanCases(ctx, tenantID)
}

func (s *Service) UpdateStage(ctx context.Context, tenantID, id string, requesterRole types.Role, stage types.CaseStage) (*types.LoanCase, error) {
	ctx, span := s.tracer.Start(ctx, "cases.Service.UpdateStage")
	defer span.End()

	if !types.CanManage(requesterRole) {
		return nil, types.ErrForbidden
	}

	if err := s.storage.UpdateLoanCaseStage(ctx, tenantID, id, stage); err != nil {
		return nil, err
	}

	return s.storage.GetLoanCase(ctx, tenantID, id)
}
