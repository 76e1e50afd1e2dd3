// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package cases

import (
	"context"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

type ServiceInterface interface {
	CreateCustomer(ctx context.Context, tenantID string, requesterRole types.Role, c *CustomerInput) (*types.Customer, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	ListCustomers(ctx context.Context, tenantID string) ([]*types.Customer, error)
	UpdateCustomer(ctx context.Context, tenantID, id string, requesterRole types.Role, c *CustomerInput) (*types.Customer, error)

	CreateLoanCase(ctx context.Context, tenantID, userID string, lc *LoanCaseInput) (*types.LoanCase, error)
	GetLoanCase(ctx context.Context, tenantID, id string) (*types.LoanCase, error)
	ListLoanCases(ctx context.Context, tenantID string) ([]*types.LoanCase, error)
	UpdateStage(ctx context.Context, tenantID, id string, requesterRole types.Role, stage types.CaseStage) (*types.LoanCase, error)
}

// StorageInterface defines the storage operations required by the cases
// package. It is a subset of the internal/storage interface. Every call is
// tenant-scoped, the storage layer refuses cross-tenant reads structurally.
type StorageInterface interface {
	CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	ListCustomers(ctx context.Context, tenantID string) ([]*types.Customer, error)
	UpdateCustomer(ctx context.Context, c *types.Customer) error

	CreateLoanCase(ctx context.Context, lc *types.LoanCase) (*types.LoanCase, error)
	GetLoanCase(ctx context.Context, tenantID, id string) (*types.LoanCase, error)
	ListLoanCases(ctx context.Context, tenantID string) ([]*types.LoanCase, error)
	UpdateLoanCaseStage(ctx context.Context, tenantID, id string, stage types.CaseStage) error
}
