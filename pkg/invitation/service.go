// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/storage"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

// InvitationLifetime is how long an issued token stays acceptable.
const InvitationLifetime = 48 * time.Hour

// tokenBytes gives 256 bits of entropy, hex encoded to 64 characters.
const tokenBytes = 32

// Invitation is the metadata returned on creation and validation. The token
// is only populated on creation, validation never re-discloses it.
type Invitation struct {
	Token      string     `json:"token,omitempty"`
	TenantID   string     `json:"tenant_id"`
	TenantName string     `json:"tenant_name"`
	Email      string     `json:"email"`
	Role       types.Role `json:"role"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

type AcceptResult struct {
	TenantID string `json:"tenant_id"`
}

type Service struct {
	storage StorageInterface
	tx      TxManagerInterface
	kratos  KratosClientInterface
	mailer  MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tx TxManagerInterface,
	kratos KratosClientInterface,
	mailer MailerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		kratos:  kratos,
		mailer:  mailer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateInvitation issues a pending membership for the given email. The
// requester must hold an active owner or admin membership in the tenant.
func (s *Service) CreateInvitation(ctx context.Context, requesterUserID, tenantID, email string, role types.Role) (*Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.CreateInvitation")
	defer span.End()

	if requesterUserID == "" {
		return nil, types.ErrUnauthorized
	}

	requesterRole, err := s.storage.GetActiveRole(ctx, tenantID, requesterUserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(requesterUserID, "invitation_create")
			return nil, types.ErrForbidden
		}
		return nil, fmt.Errorf("failed to check requester role: %w", err)
	}

	if !types.CanManage(requesterRole) {
		s.logger.Security().AuthzFailure(requesterUserID, "invitation_create")
		return nil, types.ErrForbidden
	}

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	// An email that already maps to an active member gets no new invite.
	// The identity lookup is advisory, an unreachable kratos must not block
	// invitations.
	if identityID, err := s.kratos.GetIdentityIDByEmail(ctx, email); err != nil {
		s.logger.Warnf("identity lookup failed for %s: %v", email, err)
	} else if identityID != "" {
		if _, err := s.storage.GetActiveRole(ctx, tenantID, identityID); err == nil {
			return nil, fmt.Errorf("email already belongs to an active member: %w", types.ErrValidation)
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to check existing membership: %w", err)
		}
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(InvitationLifetime)

	invite := &types.Membership{
		TenantID:    tenantID,
		Email:       email,
		Role:        role,
		Status:      types.MembershipStatusInvited,
		InviteToken: sql.NullString{String: token, Valid: true},
		ExpiresAt:   sql.NullTime{Time: expiresAt, Valid: true},
		CreatedAt:   now,
	}

	if _, err := s.storage.CreateInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	s.logger.Security().InvitationIssued(tenantID, email)

	// Delivery is fire and forget, a mail outage must not fail the API call.
	mailCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.mailer.SendInvitation(mailCtx, email, tenant.Name, token); err != nil {
			s.logger.Errorf("failed to send invitation mail to %s: %v", email, err)
		}
	}()

	return &Invitation{
		Token:      token,
		TenantID:   tenantID,
		TenantName: tenant.Name,
		Email:      email,
		Role:       role,
		ExpiresAt:  expiresAt,
	}, nil
}

// AcceptInvitation consumes a token for the authenticated caller. Sibling
// revocation runs after the activation commits; a failed revocation must not
// poison the activation's transaction.
func (s *Service) AcceptInvitation(ctx context.Context, token, userID, email string) (*AcceptResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.AcceptInvitation")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthorized
	}

	now := time.Now().UTC()

	invite, err := s.storage.GetInviteByToken(ctx, token, now)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up invite: %w", err)
	}

	if !strings.EqualFold(invite.Email, email) {
		s.logger.Security().AuthzFailure(userID, "invitation_accept")
		return nil, types.ErrEmailMismatch
	}

	// Should not happen for an invited row, guards races all the same.
	if invite.UserID.Valid {
		return nil, types.ErrAlreadyAccepted
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.ActivateMembership(ctx, invite.ID, token, userID, now); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Lost the race against a concurrent acceptance or expiry.
				return types.ErrInvalidToken
			}
			return fmt.Errorf("failed to activate membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best effort, outside the activation's transaction: an errored statement
	// inside the scope would abort it on postgres. Stale invites stay pending
	// until they expire.
	revoked, err := s.storage.RevokeSiblingInvites(ctx, invite.TenantID, invite.Email, invite.ID)
	if err != nil {
		s.logger.Warnf("failed to revoke sibling invites for tenant %s: %v", invite.TenantID, err)
	} else if revoked > 0 {
		s.logger.Debugf("revoked %d sibling invites for tenant %s", revoked, invite.TenantID)
	}

	s.logger.Security().InvitationAccepted(invite.TenantID, userID)

	return &AcceptResult{TenantID: invite.TenantID}, nil
}

// ValidateToken reports the invite metadata without consuming the token, so
// the frontend can render the accept screen.
func (s *Service) ValidateToken(ctx context.Context, token string) (*Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ValidateToken")
	defer span.End()

	invite, err := s.storage.GetInviteByToken(ctx, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up invite: %w", err)
	}

	tenant, err := s.storage.GetTenantByID(ctx, invite.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &Invitation{
		TenantID:   invite.TenantID,
		TenantName: tenant.Name,
		Email:      invite.Email,
		Role:       invite.Role,
		ExpiresAt:  invite.ExpiresAt.Time,
	}, nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
