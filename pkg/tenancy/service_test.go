// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_tenancy.go -source=./interfaces.go

func membership(tenantID, name string, role types.Role, userID string) *types.ResolvedMembership {
	m := &types.ResolvedMembership{
		TenantID:   tenantID,
		TenantName: name,
		Role:       role,
	}
	if userID != "" {
		m.UserID = sql.NullString{String: userID, Valid: true}
	}
	return m
}

func TestService_ResolveCurrentTenant(t *testing.T) {
	userID := "user-123"
	email := "agent@broker.example"

	tests := []struct {
		name              string
		userID            string
		preferred         string
		memberships       []*types.ResolvedMembership
		storageErr        error
		expectedErr       error
		expectedTenants   int
		expectedCurrentID string
		expectedRole      types.Role
	}{
		{
			name:        "no user id is unauthorized",
			userID:      "",
			expectedErr: types.ErrUnauthorized,
		},
		{
			name:        "storage error propagates",
			userID:      userID,
			storageErr:  errors.New("connection refused"),
			expectedErr: errors.New("connection refused"),
		},
		{
			name:            "no memberships resolves to none",
			userID:          userID,
			memberships:     []*types.ResolvedMembership{},
			expectedTenants: 0,
		},
		{
			name:   "sole tenant auto selected",
			userID: userID,
			memberships: []*types.ResolvedMembership{
				membership("tenant-a", "Acme Brokers", types.RoleOwner, userID),
			},
			expectedTenants:   1,
			expectedCurrentID: "tenant-a",
			expectedRole:      types.RoleOwner,
		},
		{
			name:      "preferred tenant wins over sole tenant rule",
			userID:    userID,
			preferred: "tenant-b",
			memberships: []*types.ResolvedMembership{
				membership("tenant-a", "Acme Brokers", types.RoleOwner, userID),
				membership("tenant-b", "Beta Finance", types.RoleUser, userID),
			},
			expectedTenants:   2,
			expectedCurrentID: "tenant-b",
			expectedRole:      types.RoleUser,
		},
		{
			name:      "unknown preferred falls back to policy",
			userID:    userID,
			preferred: "tenant-z",
			memberships: []*types.ResolvedMembership{
				membership("tenant-a", "Acme Brokers", types.RoleOwner, userID),
				membership("tenant-b", "Beta Finance", types.RoleUser, userID),
			},
			expectedTenants:   2,
			expectedCurrentID: "",
		},
		{
			name:      "unknown preferred with sole tenant selects it",
			userID:    userID,
			preferred: "tenant-z",
			memberships: []*types.ResolvedMembership{
				membership("tenant-a", "Acme Brokers", types.RoleAdmin, userID),
			},
			expectedTenants:   1,
			expectedCurrentID: "tenant-a",
			expectedRole:      types.RoleAdmin,
		},
		{
			name:   "user id match wins over email match for same tenant",
			userID: userID,
			memberships: []*types.ResolvedMembership{
				membership("tenant-a", "Acme Brokers", types.RoleUser, ""),
				membership("tenant-a", "Acme Brokers", types.RoleAdmin, userID),
			},
			expectedTenants:   1,
			expectedCurrentID: "tenant-a",
			expectedRole:      types.RoleAdmin,
		},
		{
			name:   "user id match kept when it arrives first",
			userID: userID,
			memberships: []*types.ResolvedMembership{
				membership("tenant-a", "Acme Brokers", types.RoleAdmin, userID),
				membership("tenant-a", "Acme Brokers", types.RoleUser, ""),
			},
			expectedTenants:   1,
			expectedCurrentID: "tenant-a",
			expectedRole:      types.RoleAdmin,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			if test.userID != "" {
				mockStorage.EXPECT().
					ListActiveMembershipsForIdentity(gomock.Any(), test.userID, email).
					Return(test.memberships, test.storageErr)
			}

			service := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			view, err := service.ResolveCurrentTenant(context.Background(), test.userID, email, test.preferred)

			if test.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(view.Tenants) != test.expectedTenants {
				t.Errorf("expected %d tenants, got %d", test.expectedTenants, len(view.Tenants))
			}

			if view.CurrentTenantID != test.expectedCurrentID {
				t.Errorf("expected current tenant %q, got %q", test.expectedCurrentID, view.CurrentTenantID)
			}

			if test.expectedRole != "" && view.CurrentRole != test.expectedRole {
				t.Errorf("expected role %q, got %q", test.expectedRole, view.CurrentRole)
			}
		})
	}
}

func TestService_ResolveCurrentTenantIsReadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	// A single expectation, any write call on the mock would fail the test.
	mockStorage.EXPECT().
		ListActiveMembershipsForIdentity(gomock.Any(), "user-123", "agent@broker.example").
		Return([]*types.ResolvedMembership{
			membership("tenant-a", "Acme Brokers", types.RoleOwner, "user-123"),
		}, nil)

	service := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	if _, err := service.ResolveCurrentTenant(context.Background(), "user-123", "agent@broker.example", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
