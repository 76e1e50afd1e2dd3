// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

func decodeErrorCode(t *testing.T, body *strings.Reader) string {
	t.Helper()
	var resp httpTypes.ErrorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp.Code
}

func TestAPI_CreateInvitation(t *testing.T) {
	tests := []struct {
		name           string
		authenticated  bool
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "unauthenticated",
			body:           `{"tenant_id": "tenant-a", "email": "a@b.example", "role": "user"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httpTypes.CodeUnauthorized,
		},
		{
			name:           "malformed body",
			authenticated:  true,
			body:           "{",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httpTypes.CodeValidationError,
		},
		{
			name:           "invalid email",
			authenticated:  true,
			body:           `{"tenant_id": "tenant-a", "email": "not-an-email", "role": "user"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httpTypes.CodeValidationError,
		},
		{
			name:           "unknown role",
			authenticated:  true,
			body:           `{"tenant_id": "tenant-a", "email": "a@b.example", "role": "superuser"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httpTypes.CodeValidationError,
		},
		{
			name:          "forbidden requester",
			authenticated: true,
			body:          `{"tenant_id": "tenant-a", "email": "a@b.example", "role": "user"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateInvitation(gomock.Any(), "user-123", "tenant-a", "a@b.example", types.RoleUser).
					Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httpTypes.CodeForbidden,
		},
		{
			name:          "success",
			authenticated: true,
			body:          `{"tenant_id": "tenant-a", "email": "a@b.example", "role": "ADMIN"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateInvitation(gomock.Any(), "user-123", "tenant-a", "a@b.example", types.RoleAdmin).
					Return(&Invitation{
						Token:      "deadbeef",
						TenantID:   "tenant-a",
						TenantName: "Acme Brokers",
						Email:      "a@b.example",
						Role:       types.RoleAdmin,
						ExpiresAt:  time.Now().Add(InvitationLifetime),
					}, nil)
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

			mux := newTestAPI(t, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/invitations", strings.NewReader(test.body))
			if test.authenticated {
				req = authenticated(req, "user-123", "owner@broker.example")
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			if test.expectedCode != "" {
				code := decodeErrorCode(t, strings.NewReader(rr.Body.String()))
				if code != test.expectedCode {
					t.Errorf("expected error code %q, got %q", test.expectedCode, code)
				}
			}
		})
	}
}

func TestAPI_AcceptInvitation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
		expectedCookie string
	}{
		{
			name:           "missing token",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httpTypes.CodeValidationError,
		},
		{
			name: "invalid token",
			body: `{"token": "deadbeef"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AcceptInvitation(gomock.Any(), "deadbeef", "user-123", "agent@broker.example").
					Return(nil, types.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httpTypes.CodeInvalidToken,
		},
		{
			name: "email mismatch",
			body: `{"token": "deadbeef"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AcceptInvitation(gomock.Any(), "deadbeef", "user-123", "agent@broker.example").
					Return(nil, types.ErrEmailMismatch)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httpTypes.CodeEmailMismatch,
		},
		{
			name: "already accepted",
			body: `{"token": "deadbeef"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AcceptInvitation(gomock.Any(), "deadbeef", "user-123", "agent@broker.example").
					Return(nil, types.ErrAlreadyAccepted)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   httpTypes.CodeAlreadyAccepted,
		},
		{
			name: "success selects the joined tenant",
			body: `{"token": "deadbeef"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AcceptInvitation(gomock.Any(), "deadbeef", "user-123", "agent@broker.example").
					Return(&AcceptResult{TenantID: "tenant-a"}, nil)
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

			req := httptest.NewRequest(http.MethodPost, "/api/v0/invitations/accept", strings.NewReader(test.body))
			req = authenticated(req, "user-123", "agent@broker.example")

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			if test.expectedCode != "" {
				code := decodeErrorCode(t, strings.NewReader(rr.Body.String()))
				if code != test.expectedCode {
					t.Errorf("expected error code %q, got %q", test.expectedCode, code)
				}
			}

			if test.expectedCookie != "" {
				found := false
				for _, c := range rr.Result().Cookies() {
					if c.Name == tenancy.CurrentTenantCookie && c.Value == test.expectedCookie {
						found = true
					}
				}
				if !found {
					t.Errorf("expected %s cookie %q to be set", tenancy.CurrentTenantCookie, test.expectedCookie)
				}
			}
		})
	}
}

func TestAPI_ValidateToken(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "missing token",
			query:          "",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "invalid token",
			query: "?token=deadbeef",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ValidateToken(gomock.Any(), "deadbeef").Return(nil, types.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:  "valid token",
			query: "?token=deadbeef",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ValidateToken(gomock.Any(), "deadbeef").Return(&Invitation{
					TenantID:   "tenant-a",
					TenantName: "Acme Brokers",
					Email:      "agent@broker.example",
					Role:       types.RoleUser,
					ExpiresAt:  time.Now().Add(time.Hour),
				}, nil)
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

			req := httptest.NewRequest(http.MethodGet, "/api/v0/invitations/validate"+test.query, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}
