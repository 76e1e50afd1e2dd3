// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

func TestMiddleware_RequireTenant(t *testing.T) {
	tests := []struct {
		name           string
		authenticated  bool
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedTenant string
		expectedRole   types.Role
	}{
		{
			name:           "unauthenticated",
			authenticated:  false,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "ambiguous tenancy rejected",
			authenticated: true,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ResolveCurrentTenant(gomock.Any(), "user-123", "agent@broker.example", "").
					Return(&TenancyView{
						Tenants: []*types.ResolvedMembership{
							membership("tenant-a", "Acme Brokers", types.RoleOwner, "user-123"),
							membership("tenant-b", "Beta Finance", types.RoleUser, "user-123"),
						},
					}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:          "resolved tenant injected into context",
			authenticated: true,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ResolveCurrentTenant(gomock.Any(), "user-123", "agent@broker.example", "").
					Return(&TenancyView{
						Tenants: []*types.ResolvedMembership{
							membership("tenant-a", "Acme Brokers", types.RoleAdmin, "user-123"),
						},
						CurrentTenantID: "tenant-a",
						CurrentRole:     types.RoleAdmin,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTenant: "tenant-a",
			expectedRole:   types.RoleAdmin,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			test.setupMocks(mockService)

			middleware := NewMiddleware(mockService, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			var seen *TenantContext
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = TenantFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/cases", nil)
			if test.authenticated {
				req = authenticated(req, "user-123", "agent@broker.example")
			}

			rr := httptest.NewRecorder()
			middleware.RequireTenant()(handler).ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			if test.expectedTenant != "" {
				if seen == nil {
					t.Fatal("expected tenant context, got nil")
				}
				if seen.TenantID != test.expectedTenant || seen.Role != test.expectedRole {
					t.Errorf("expected tenant %q role %q, got %+v", test.expectedTenant, test.expectedRole, seen)
				}
			}
		})
	}
}
