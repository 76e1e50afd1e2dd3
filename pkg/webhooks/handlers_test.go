// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"
	"go.uber.org/mock/gomock"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
)

func TestAPI_TokenHook(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validateResp   func(*testing.T, *http.Response)
	}{
		{
			name: "success",
			requestBody: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession("user-123"),
			},
			setupMocks: func(mockSvc *MockServiceInterface) {
				claims := map[string]interface{}{"tenants": []string{"tenant-a", "tenant-b"}}
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).
					Return(&TokenHookResponse{Session: TokenHookSession{IDToken: claims, AccessToken: claims}}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result TokenHookResponse
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Errorf("failed to decode response: %v", err)
				}
				if result.Session.AccessToken["tenants"] == nil {
					t.Error("expected tenants in access token")
				}
			},
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			requestBody: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession("user-123"),
			},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			test.setupMocks(mockService)

			api := NewAPI(mockService, logging.NewNoopLogger())

			var body []byte
			var err error
			if str, ok := test.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(test.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/token-hook", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != test.expectedStatus {
				body, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", test.expectedStatus, res.StatusCode, string(body))
			}

			if test.validateResp != nil {
				test.validateResp(t, res)
			}
		})
	}
}
