// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"time"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

type ServiceInterface interface {
	CreateInvitation(ctx context.Context, requesterUserID, tenantID, email string, role types.Role) (*Invitation, error)
	AcceptInvitation(ctx context.Context, token, userID, email string) (*AcceptResult, error)
	ValidateToken(ctx context.Context, token string) (*Invitation, error)
}

// StorageInterface defines the storage operations required by the invitation
// package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetActiveRole(ctx context.Context, tenantID, userID string) (types.Role, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	CreateInvite(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetInviteByToken(ctx context.Context, token string, now time.Time) (*types.Membership, error)
	ActivateMembership(ctx context.Context, id, token, userID string, now time.Time) error
	RevokeSiblingInvites(ctx context.Context, tenantID, email, excludeID string) (int64, error)
}

// TxManagerInterface is the transaction scope of the db client.
type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type MailerInterface interface {
	SendInvitation(ctx context.Context, toEmail, tenantName, token string) error
}

// KratosClientInterface is the identity lookup subset of the kratos admin
// client.
type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
}
