// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

type ServiceInterface interface {
	Onboard(ctx context.Context, userID, email, name string, tenantType types.TenantType) (*types.Tenant, error)
	GetTenant(ctx context.Context, tenantID string, requesterRole types.Role) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID string, requesterRole types.Role, update *TenantUpdate) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, tenantID string, status types.TenantStatus) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListMembers(ctx context.Context, tenantID string, requesterRole types.Role) ([]*types.TenantMember, error)
	FindTenantsWithoutOwner(ctx context.Context) ([]*types.Tenant, error)
	RepairOwnerless(ctx context.Context) (int, error)
}

// StorageInterface defines the storage operations required by the tenant
// package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
	ListTenantsWithoutOwner(ctx context.Context) ([]*types.Tenant, error)
	AddActiveMember(ctx context.Context, tenantID, userID, email string, role types.Role) (string, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
}

// TxManagerInterface is the transaction scope of the db client.
type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// AuthzInterface mirrors membership writes into the relation store.
type AuthzInterface interface {
	AssignTenantRole(ctx context.Context, tenantID, userID string, role types.Role) error
	RemoveTenantRole(ctx context.Context, tenantID, userID string, role types.Role) error
}

// KratosClientInterface enriches member listings with identity emails.
type KratosClientInterface interface {
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}
