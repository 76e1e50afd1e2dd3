// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
	"github.com/dsadigitalplatform/admin-service/pkg/authentication"

	chi "github.com/go-chi/chi/v5"
)

func newTestAPI(t *testing.T, service ServiceInterface) *chi.Mux {
	t.Helper()
	mux := chi.NewMux()
	NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func authenticated(r *http.Request, userID, email string) *http.Request {
	ctx := authentication.WithPrincipal(r.Context(), &authentication.Principal{ID: userID, Email: email})
	return r.WithContext(ctx)
}

func TestAPI_GetTenancy(t *testing.T) {
	view := &TenancyView{
		Tenants: []*types.ResolvedMembership{
			membership("tenant-a", "Acme Brokers", types.RoleOwner, "user-123"),
		},
		CurrentTenantID: "tenant-a",
		CurrentRole:     types.RoleOwner,
	}

	tests := []struct {
		name           string
		authenticated  bool
		cookie         string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "unauthenticated",
			authenticated:  false,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "success without cookie",
			authenticated: true,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ResolveCurrentTenant(gomock.Any(), "user-123", "agent@broker.example", "").Return(view, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "cookie forwarded as preferred tenant",
			authenticated: true,
			cookie:        "tenant-a",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ResolveCurrentTenant(gomock.Any(), "user-123", "agent@broker.example", "tenant-a").Return(view, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			test.setupMocks(mockService)

			mux := newTestAPI(t, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/me/tenancy", nil)
			if test.authenticated {
				req = authenticated(req, "user-123", "agent@broker.example")
			}
			if test.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CurrentTenantCookie, Value: test.cookie})
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_SelectTenant(t *testing.T) {
	memberOfA := &TenancyView{
		Tenants: []*types.ResolvedMembership{
			membership("tenant-a", "Acme Brokers", types.RoleAdmin, "user-123"),
		},
		CurrentTenantID: "tenant-a",
		CurrentRole:     types.RoleAdmin,
	}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCookie string
	}{
		{
			name:           "invalid body",
			body:           "{",
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing tenant id",
			body:           `{}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not a member",
			body: `{"tenant_id": "tenant-z"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ResolveCurrentTenant(gomock.Any(), "user-123", "agent@broker.example", "tenant-z").
					Return(&TenancyView{Tenants: memberOfA.Tenants}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "success sets cookie",
			body: `{"tenant_id": "tenant-a"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ResolveCurrentTenant(gomock.Any(), "user-123", "agent@broker.example", "tenant-a").
					Return(memberOfA, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCookie: "tenant-a",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			test.setupMocks(mockService)

			mux := newTestAPI(t, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/me/tenancy", strings.NewReader(test.body))
			req = authenticated(req, "user-123", "agent@broker.example")

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			if test.expectedCookie != "" {
				found := false
				for _, c := range rr.Result().Cookies() {
					if c.Name == CurrentTenantCookie && c.Value == test.expectedCookie {
						found = true
					}
				}
				if !found {
					t.Errorf("expected %s cookie %q to be set", CurrentTenantCookie, test.expectedCookie)
				}
			}

			if rr.Code == http.StatusOK {
				var resp struct {
					Data TenancyView `json:"data"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Data.CurrentTenantID != "tenant-a" {
					t.Errorf("expected current tenant %q, got %q", "tenant-a", resp.Data.CurrentTenantID)
				}
			}
		})
	}
}
