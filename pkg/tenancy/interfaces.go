// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

type ServiceInterface interface {
	ResolveCurrentTenant(ctx context.Context, userID, email, preferredTenantID string) (*TenancyView, error)
}

// StorageInterface defines the storage operations required by the tenancy package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	ListActiveMembershipsForIdentity(ctx context.Context, userID, email string) ([]*types.ResolvedMembership, error)
}
