// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
	ListTenantsWithoutOwner(ctx context.Context) ([]*types.Tenant, error)

	AddActiveMember(ctx context.Context, tenantID, userID, email string, role types.Role) (string, error)
	GetActiveRole(ctx context.Context, tenantID, userID string) (types.Role, error)
	ListActiveMembershipsForIdentity(ctx context.Context, userID, email string) ([]*types.ResolvedMembership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)

	CreateInvite(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetInviteByToken(ctx context.Context, token string, now time.Time) (*types.Membership, error)
	ActivateMembership(ctx context.Context, id, token, userID string, now time.Time) error
	RevokeSiblingInvites(ctx context.Context, tenantID, email, excludeID string) (int64, error)

	CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	ListCustomers(ctx context.Context, tenantID string) ([]*types.Customer, error)
	UpdateCustomer(ctx context.Context, c *types.Customer) error

	CreateLoanCase(ctx context.Context, lc *types.LoanCase) (*types.LoanCase, error)
	GetLoanCase(ctx context.Context, tenantID, id string) (*types.LoanCase, error)
	ListLoanCases(ctx context.Context, tenantID string) ([]*types.LoanCase, error)
	UpdateLoanCaseStage(ctx context.Context, tenantID, id string, stage types.CaseStage) error
}
