// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks
// package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	ListActiveMembershipsForIdentity(ctx context.Context, userID, email string) ([]*types.ResolvedMembership, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
