// Copyright 2025 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Principal is the authenticated caller extracted from a verified token.
// It is immutable once placed in the context.
type Principal struct {
	ID         string
	Email      string
	SuperAdmin bool
}

// Define a private custom type to avoid collisions
type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the given principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext retrieves the principal from the context.
// Returns nil and false if no principal is present.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}
