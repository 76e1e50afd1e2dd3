// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"go.uber.org/mock/gomock"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage
}

func membership(tenantID, userID string) *types.ResolvedMembership {
	return &types.ResolvedMembership{
		TenantID: tenantID,
		Role:     types.RoleUser,
		UserID:   sql.NullString{String: userID, Valid: userID != ""},
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	subject := "user-123"

	tests := []struct {
		name            string
		req             *oauth2.TokenHookRequest
		setupMocks      func(*MockStorageInterface)
		expectedTenants []string
		expectErr       bool
	}{
		{
			name:       "nil session",
			req:        &oauth2.TokenHookRequest{},
			setupMocks: func(*MockStorageInterface) {},
			expectErr:  true,
		},
		{
			name:       "empty subject",
			req:        &oauth2.TokenHookRequest{Session: oauth2.NewSession("")},
			setupMocks: func(*MockStorageInterface) {},
			expectErr:  true,
		},
		{
			name: "storage error",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession(subject)},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().ListActiveMembershipsForIdentity(gomock.Any(), subject, "").
					Return(nil, errors.New("connection refused"))
			},
			expectErr: true,
		},
		{
			name: "no memberships yields empty claim",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession(subject)},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().ListActiveMembershipsForIdentity(gomock.Any(), subject, "").
					Return(nil, nil)
			},
			expectedTenants: []string{},
		},
		{
			name: "memberships deduplicated by tenant",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession(subject)},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().ListActiveMembershipsForIdentity(gomock.Any(), subject, "").
					Return([]*types.ResolvedMembership{
						membership("tenant-a", subject),
						membership("tenant-b", subject),
						membership("tenant-a", ""),
					}, nil)
			},
			expectedTenants: []string{"tenant-a", "tenant-b"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl)
			test.setupMocks(mockStorage)

			resp, err := s.HandleTokenHook(context.Background(), test.req)

			if test.expectErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, ok := resp.Session.AccessToken["tenants"].([]string)
			if !ok {
				t.Fatalf("expected tenants claim in access token, got %v", resp.Session.AccessToken)
			}
			if len(got) != len(test.expectedTenants) {
				t.Fatalf("expected tenants %v, got %v", test.expectedTenants, got)
			}
			for i := range got {
				if got[i] != test.expectedTenants[i] {
					t.Fatalf("expected tenants %v, got %v", test.expectedTenants, got)
				}
			}
			if _, ok := resp.Session.IDToken["tenants"]; !ok {
				t.Fatal("expected tenants claim in id token")
			}
		})
	}
}
