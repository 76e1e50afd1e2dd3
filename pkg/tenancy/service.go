// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"fmt"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

// TenancyView is the read model returned to the frontend: every tenant the
// caller belongs to plus the one currently selected.
type TenancyView struct {
	Tenants         []*types.ResolvedMembership `json:"tenants"`
	CurrentTenantID string                      `json:"current_tenant_id,omitempty"`
	CurrentRole     types.Role                  `json:"current_role,omitempty"`
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ResolveCurrentTenant looks up every active membership reachable by either
// the subject id or the session email, deduplicates them per tenant and picks
// the current tenant. Read-only, membership rows are never mutated here.
func (s *Service) ResolveCurrentTenant(ctx context.Context, userID, email, preferredTenantID string) (*TenancyView, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.ResolveCurrentTenant")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthorized
	}

	memberships, err := s.storage.ListActiveMembershipsForIdentity(ctx, userID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	view := &TenancyView{
		Tenants: dedupeByTenant(memberships, userID),
	}

	current := selectTenant(view.Tenants, preferredTenantID)
	if current != nil {
		view.CurrentTenantID = current.TenantID
		view.CurrentRole = current.Role
	}

	return view, nil
}

// dedupeByTenant collapses rows matched twice, once by user id and once by
// email. The user id match wins, its role is the one actually provisioned
// for this subject.
func dedupeByTenant(memberships []*types.ResolvedMembership, userID string) []*types.ResolvedMembership {
	out := make([]*types.ResolvedMembership, 0, len(memberships))
	index := make(map[string]int, len(memberships))

	for _, m := range memberships {
		i, seen := index[m.TenantID]
		if !seen {
			index[m.TenantID] = len(out)
			out = append(out, m)
			continue
		}

		if m.UserID.Valid && m.UserID.String == userID {
			out[i] = m
		}
	}

	return out
}

// selectTenant applies the selection policy: the preferred tenant when the
// caller is a member of it, otherwise the sole tenant, otherwise none.
func selectTenant(memberships []*types.ResolvedMembership, preferredTenantID string) *types.ResolvedMembership {
	if preferredTenantID != "" {
		for _, m := range memberships {
			if m.TenantID == preferredTenantID {
				return m
			}
		}
	}

	if len(memberships) == 1 {
		return memberships[0]
	}

	return nil
}
