// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   string
		expectedStatus int
	}{
		{
			name:           "unauthorized",
			err:            types.ErrUnauthorized,
			expectedCode:   CodeUnauthorized,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "forbidden",
			err:            types.ErrForbidden,
			expectedCode:   CodeForbidden,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid token",
			err:            types.ErrInvalidToken,
			expectedCode:   CodeInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "email mismatch",
			err:            types.ErrEmailMismatch,
			expectedCode:   CodeEmailMismatch,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "already accepted",
			err:            types.ErrAlreadyAccepted,
			expectedCode:   CodeAlreadyAccepted,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "wrapped validation error",
			err:            fmt.Errorf("role: %w", types.ErrValidation),
			expectedCode:   CodeValidationError,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not found",
			err:            types.ErrNotFound,
			expectedCode:   CodeNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedCode:   CodeInternalError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, status := ErrorCode(test.err)

			if code != test.expectedCode {
				t.Errorf("expected code %s, got %s", test.expectedCode, code)
			}

			if status != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, status)
			}
		})
	}
}
