// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

// TenantContext carries the caller's resolved tenant and role for the
// duration of a tenant-scoped request.
type TenantContext struct {
	TenantID string
	Role     types.Role
}

type contextKey struct{}

var tenantContextKey = contextKey{}

func WithTenant(ctx context.Context, tc *TenantContext) context.Context {
	return context.WithValue(ctx, tenantContextKey, tc)
}

func TenantFromContext(ctx context.Context) (*TenantContext, bool) {
	tc, ok := ctx.Value(tenantContextKey).(*TenantContext)
	if !ok || tc == nil {
		return nil, false
	}
	return tc, true
}
