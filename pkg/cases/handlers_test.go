// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package cases

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/dsadigitalplatform/admin-service/internal/http/types"
	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
	"github.com/dsadigitalplatform/admin-service/pkg/authentication"
	"github.com/dsadigitalplatform/admin-service/pkg/tenancy"
)

// testRequireTenant stands in for the tenancy middleware, handlers read the
// tenant context it injects.
func testRequireTenant(tenantID string, role types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := tenancy.WithTenant(r.Context(), &tenancy.TenantContext{TenantID: tenantID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestAPI(t *testing.T, service ServiceInterface, requireTenant func(http.Handler) http.Handler) *chi.Mux {
	t.Helper()
	mux := chi.NewMux()
	NewAPI(service, requireTenant, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func authenticated(r *http.Request, p *authentication.Principal) *http.Request {
	return r.WithContext(authentication.WithPrincipal(r.Context(), p))
}

func TestAPI_CreateCustomer(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "malformed json",
			body:           `{"full_name": `,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"email": "jordan@example.com"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad email",
			body:           `{"full_name": "Jordan Example", "email": "not-an-email"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service forbids",
			body: `{"full_name": "Jordan Example"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateCustomer(gomock.Any(), "tenant-a", types.RoleUser, gomock.Any()).
					Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "created",
			body: `{"full_name": "Jordan Example", "email": "jordan@example.com"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateCustomer(gomock.Any(), "tenant-a", types.RoleUser, &CustomerInput{FullName: "Jordan Example", Email: "jordan@example.com"}).
					Return(&types.Customer{ID: "cust-1", TenantID: "tenant-a", FullName: "Jordan Example"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			test.setupMocks(mockService)

			mux := newTestAPI(t, mockService, testRequireTenant("tenant-a", types.RoleUser))

			req := httptest.NewRequest(http.MethodPost, "/api/v0/customers", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_GetCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetCustomer(gomock.Any(), "tenant-a", "cust-1").
		Return(&types.Customer{ID: "cust-1", TenantID: "tenant-a", FullName: "Jordan Example"}, nil)

	mux := newTestAPI(t, mockService, testRequireTenant("tenant-a", types.RoleUser))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/customers/cust-1", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	var fullName string
	if err := json.Unmarshal(resp.Data["full_name"], &fullName); err != nil || fullName != "Jordan Example" {
		t.Errorf("expected full_name \"Jordan Example\", got %s", resp.Data["full_name"])
	}
	if _, ok := resp.Data["id"]; !ok {
		t.Error("expected field \"id\" in response")
	}
}

func TestAPI_CreateLoanCase(t *testing.T) {
	principal := &authentication.Principal{ID: "user-123", Email: "agent@broker.example"}

	tests := []struct {
		name           string
		body           string
		principal      *authentication.Principal
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "no principal",
			body:           `{"customer_id": "cust-1"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing customer id",
			body:           `{"lender": "First Bank"}`,
			principal:      principal,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "created",
			body:      `{"customer_id": "cust-1", "lender": "First Bank", "amount": 650000}`,
			principal: principal,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateLoanCase(gomock.Any(), "tenant-a", "user-123", &LoanCaseInput{CustomerID: "cust-1", Lender: "First Bank", Amount: 650000}).
					Return(&types.LoanCase{ID: "case-1", TenantID: "tenant-a", Stage: types.CaseStageLead}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			test.setupMocks(mockService)

			mux := newTestAPI(t, mockService, testRequireTenant("tenant-a", types.RoleUser))

			req := httptest.NewRequest(http.MethodPost, "/api/v0/cases", strings.NewReader(test.body))
			if test.principal != nil {
				req = authenticated(req, test.principal)
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_UpdateStage(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "unknown stage",
			body:           `{"stage": "archived"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httpTypes.CodeValidationError,
		},
		{
			name: "service forbids",
			body: `{"stage": "approved"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateStage(gomock.Any(), "tenant-a", "case-1", types.RoleAdmin, types.CaseStageApproved).
					Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httpTypes.CodeForbidden,
		},
		{
			name: "stage moved",
			body: `{"stage": "Approved"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateStage(gomock.Any(), "tenant-a", "case-1", types.RoleAdmin, types.CaseStageApproved).
					Return(&types.LoanCase{ID: "case-1", TenantID: "tenant-a", Stage: types.CaseStageApproved}, nil)
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

			mux := newTestAPI(t, mockService, testRequireTenant("tenant-a", types.RoleAdmin))

			req := httptest.NewRequest(http.MethodPut, "/api/v0/cases/case-1/stage", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}

			if test.expectedCode != "" {
				var resp httpTypes.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if resp.Code != test.expectedCode {
					t.Fatalf("expected error code %q, got %q", test.expectedCode, resp.Code)
				}
			}
		})
	}
}
