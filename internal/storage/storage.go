// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dsadigitalplatform/admin-service/internal/db"
	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const (
	tenantColumns     = "id, name, type, status, plan, theme_color, created_by, created_at, updated_at"
	membershipColumns = "id, tenant_id, user_id, email, role, status, invite_token, expires_at, activated_at, created_at"
)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var created types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "type", "status", "plan", "theme_color", "created_by").
		Values(id.String(), t.Name, t.Type, t.Status, t.Plan, t.ThemeColor, t.CreatedBy).
		Suffix("RETURNING "+tenantColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Type, &created.Status, &created.Plan,
			&created.ThemeColor, &created.CreatedBy, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select(tenantColumns).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Type, &t.Status, &t.Plan, &t.ThemeColor,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns).
		From("tenants").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.Status, &t.Plan, &t.ThemeColor,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenant follows PATCH semantics: only fields named in paths change.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = tenant.Name
		case "plan":
			updateMap["plan"] = tenant.Plan
		case "theme_color":
			updateMap["theme_color"] = tenant.ThemeColor
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set tenant status: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListTenantsWithoutOwner finds tenants whose owner membership is missing,
// the partial-write leftover a crash during onboarding can produce.
func (s *Storage) ListTenantsWithoutOwner(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsWithoutOwner")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("t.id", "t.name", "t.type", "t.status", "t.plan", "t.theme_color",
			"t.created_by", "t.created_at", "t.updated_at").
		From("tenants t").
		LeftJoin("memberships m ON m.tenant_id = t.id AND m.role = 'owner' AND m.status = 'active'").
		Where("m.id IS NULL").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ownerless tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.Status, &t.Plan, &t.ThemeColor,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

func (s *Storage) AddActiveMember(ctx context.Context, tenantID, userID, email string, role types.Role) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddActiveMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "user_id", "email", "role", "status", "activated_at").
		Values(id.String(), tenantID, userID, email, role, types.MembershipStatusActive, sq.Expr("now()")).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) GetActiveRole(ctx context.Context, tenantID, userID string) (types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveRole")
	defer span.End()

	var role types.Role
	err := s.db.Statement(ctx).
		Select("role").
		From("memberships").
		Where(sq.Eq{
			"tenant_id": tenantID,
			"user_id":   userID,
			"status":    types.MembershipStatusActive,
		}).
		QueryRowContext(ctx).
		Scan(&role)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get membership role: %w", err)
	}

	return role, nil
}

// ListActiveMembershipsForIdentity matches active memberships by user id or,
// as a fallback for rows accepted before the user id was known, by the
// invited email. Email comparison is normalized-lowercase equality, never a
// regex.
func (s *Storage) ListActiveMembershipsForIdentity(ctx context.Context, userID, email string) ([]*types.ResolvedMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveMembershipsForIdentity")
	defer span.End()

	match := sq.Or{sq.Eq{"m.user_id": userID}}
	if email != "" {
		match = append(match, sq.Expr("lower(m.email) = lower(?)", email))
	}

	rows, err := s.db.Statement(ctx).
		Select("m.tenant_id", "t.name", "m.role", "m.user_id").
		From("memberships m").
		Join("tenants t ON t.id = m.tenant_id").
		Where(sq.Eq{"m.status": types.MembershipStatusActive}).
		Where(match).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.ResolvedMembership
	for rows.Next() {
		var m types.ResolvedMembership
		if err := rows.Scan(&m.TenantID, &m.TenantName, &m.Role, &m.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

// ListMembersByTenantID returns active members plus still-valid pending
// invitations. Revoked rows and expired invites are not listed.
func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns).
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		Where(sq.Or{
			sq.Eq{"status": types.MembershipStatusActive},
			sq.And{
				sq.Eq{"status": types.MembershipStatusInvited},
				sq.Expr("expires_at > now()"),
			},
		}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.UserID, &m.Email, &m.Role, &m.Status,
			&m.InviteToken, &m.ExpiresAt, &m.ActivatedAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) CreateInvite(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var created types.Membership
	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "email", "role", "status", "invite_token", "expires_at", "created_at").
		Values(id.String(), m.TenantID, m.Email, m.Role, types.MembershipStatusInvited,
			m.InviteToken, m.ExpiresAt, m.CreatedAt).
		Suffix("RETURNING "+membershipColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.UserID, &created.Email, &created.Role,
			&created.Status, &created.InviteToken, &created.ExpiresAt, &created.ActivatedAt,
			&created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	return &created, nil
}

// GetInviteByToken looks up a pending, unexpired invitation. A consumed,
// revoked or expired token is indistinguishable from an unknown one here.
func (s *Storage) GetInviteByToken(ctx context.Context, token string, now time.Time) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByToken")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select(membershipColumns).
		From("memberships").
		Where(sq.Eq{
			"invite_token": token,
			"status":       types.MembershipStatusInvited,
		}).
		Where(sq.Gt{"expires_at": now}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.TenantID, &m.UserID, &m.Email, &m.Role, &m.Status,
			&m.InviteToken, &m.ExpiresAt, &m.ActivatedAt, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &m, nil
}

// ActivateMembership consumes an invitation with a single conditional update
// keyed on id, token, status and expiry, so a concurrent acceptance or an
// expiry race leaves exactly one winner. ErrNotFound means the precondition
// no longer held.
func (s *Storage) ActivateMembership(ctx context.Context, id, token, userID string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.ActivateMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("status", types.MembershipStatusActive).
		Set("user_id", userID).
		Set("activated_at", now).
		Set("invite_token", nil).
		Set("expires_at", nil).
		Where(sq.Eq{
			"id":           id,
			"invite_token": token,
			"status":       types.MembershipStatusInvited,
		}).
		Where(sq.Gt{"expires_at": now}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to activate membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// RevokeSiblingInvites revokes every other pending invitation for the same
// tenant and email, stripping their tokens.
func (s *Storage) RevokeSiblingInvites(ctx context.Context, tenantID, email, excludeID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeSiblingInvites")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("status", types.MembershipStatusRevoked).
		Set("invite_token", nil).
		Set("expires_at", nil).
		Where(sq.Eq{
			"tenant_id": tenantID,
			"status":    types.MembershipStatusInvited,
		}).
		Where(sq.Expr("lower(email) = lower(?)", email)).
		Where(sq.NotEq{"id": excludeID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to revoke sibling invites: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
