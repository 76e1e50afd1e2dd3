// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

// TenantUpdate carries the fields a managing member may change. Nil means
// leave untouched.
type TenantUpdate struct {
	Name       *string `json:"name,omitempty"`
	ThemeColor *string `json:"theme_color,omitempty"`
	Plan       *string `json:"plan,omitempty"`
}

type Service struct {
	storage StorageInterface
	tx      TxManagerInterface
	authz   AuthzInterface
	kratos  KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tx TxManagerInterface,
	authz AuthzInterface,
	kratos KratosClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		authz:   authz,
		kratos:  kratos,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Onboard creates a tenant and its owner membership in one transaction, so a
// crash cannot leave an ownerless tenant behind. The relation store mirror is
// written after commit, RepairOwnerless covers the gap.
func (s *Service) Onboard(ctx context.Context, userID, email, name string, tenantType types.TenantType) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Onboard")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tenant name is required: %w", types.ErrValidation)
	}

	if tenantType != types.TenantTypeSoleTrader && tenantType != types.TenantTypeCompany {
		return nil, fmt.Errorf("unknown tenant type %q: %w", tenantType, types.ErrValidation)
	}

	var created *types.Tenant
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.storage.CreateTenant(ctx, &types.Tenant{
			Name:      name,
			Type:      tenantType,
			Status:    types.TenantStatusActive,
			CreatedBy: sql.NullString{String: userID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		if _, err := s.storage.AddActiveMember(ctx, created.ID, userID, email, types.RoleOwner); err != nil {
			return fmt.Errorf("failed to add owner membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignTenantRole(ctx, created.ID, userID, types.RoleOwner); err != nil {
		s.logger.Errorf("failed to mirror owner relation for tenant %s: %v", created.ID, err)
	}

	s.logger.Infof("onboarded tenant %s for user %s", created.ID, userID)

	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, tenantID string, requesterRole types.Role) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, tenantID)
}

// UpdateTenant applies the managing-member editable fields. The caller's role
// comes from the resolved tenant context.
func (s *Service) UpdateTenant(ctx context.Context, tenantID string, requesterRole types.Role, update *TenantUpdate) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	if !types.CanManage(requesterRole) {
		return nil, types.ErrForbidden
	}

	t := &types.Tenant{ID: tenantID}
	paths := make([]string, 0, 3)

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("tenant name cannot be empty: %w", types.ErrValidation)
		}
		t.Name = name
		paths = append(paths, "name")
	}
	if update.ThemeColor != nil {
		t.ThemeColor = sql.NullString{String: *update.ThemeColor, Valid: true}
		paths = append(paths, "theme_color")
	}
	if update.Plan != nil {
		t.Plan = sql.NullString{String: *update.Plan, Valid: true}
		paths = append(paths, "plan")
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", types.ErrValidation)
	}

	if err := s.storage.UpdateTenant(ctx, t, paths); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return s.storage.GetTenantByID(ctx, tenantID)
}

// SetTenantStatus suspends or reactivates a tenant. Super admin only, the
// handler enforces that.
func (s *Service) SetTenantStatus(ctx context.Context, tenantID string, status types.TenantStatus) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetTenantStatus")
	defer span.End()

	if status != types.TenantStatusActive && status != types.TenantStatusSuspended {
		return fmt.Errorf("unknown tenant status %q: %w", status, types.ErrValidation)
	}

	return s.storage.SetTenantStatus(ctx, tenantID, status)
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

// ListMembers returns active members and pending invites. Emails missing on
// the membership row are backfilled from the identity provider best effort.
func (s *Service) ListMembers(ctx context.Context, tenantID string, requesterRole types.Role) ([]*types.TenantMember, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	if !types.CanManage(requesterRole) {
		return nil, types.ErrForbidden
	}

	memberships, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]*types.TenantMember, 0, len(memberships))
	for _, m := range memberships {
		if m.Status == types.MembershipStatusRevoked {
			continue
		}

		member := &types.TenantMember{
			MembershipID: m.ID,
			Email:        m.Email,
			Role:         m.Role,
			Status:       m.Status,
		}
		if m.UserID.Valid {
			member.UserID = m.UserID.String
		}
		if m.ExpiresAt.Valid {
			t := m.ExpiresAt.Time
			member.ExpiresAt = &t
		}

		if member.Email == "" && member.UserID != "" {
			email, err := s.kratos.GetIdentityEmail(ctx, member.UserID)
			if err != nil {
				s.logger.Warnf("failed to get identity email for %s: %v", member.UserID, err)
			} else {
				member.Email = email
			}
		}

		members = append(members, member)
	}

	return members, nil
}

func (s *Service) FindTenantsWithoutOwner(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.FindTenantsWithoutOwner")
	defer span.End()

	return s.storage.ListTenantsWithoutOwner(ctx)
}

// RepairOwnerless promotes the creator of an ownerless tenant back to owner.
// Idempotent, tenants with no recorded creator are skipped and reported.
func (s *Service) RepairOwnerless(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RepairOwnerless")
	defer span.End()

	tenants, err := s.storage.ListTenantsWithoutOwner(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list ownerless tenants: %w", err)
	}

	repaired := 0
	for _, t := range tenants {
		if !t.CreatedBy.Valid {
			s.logger.Warnf("tenant %s has no owner and no recorded creator, skipping", t.ID)
			continue
		}

		userID := t.CreatedBy.String
		email, err := s.kratos.GetIdentityEmail(ctx, userID)
		if err != nil {
			s.logger.Warnf("failed to resolve creator email for tenant %s: %v", t.ID, err)
		}

		if _, err := s.storage.AddActiveMember(ctx, t.ID, userID, email, types.RoleOwner); err != nil {
			s.logger.Errorf("failed to repair tenant %s: %v", t.ID, err)
			continue
		}

		if err := s.authz.AssignTenantRole(ctx, t.ID, userID, types.RoleOwner); err != nil {
			s.logger.Errorf("failed to mirror owner relation for tenant %s: %v", t.ID, err)
		}

		s.logger.Infof("restored owner %s on tenant %s", userID, t.ID)
		repaired++
	}

	return repaired, nil
}
