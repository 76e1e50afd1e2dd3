// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

// Response is the standard json envelope returned by every API endpoint.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

// ErrorResponse carries a machine readable error code next to the message so
// clients can branch without string matching.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

const (
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeInvalidToken    = "invalid_token"
	CodeEmailMismatch   = "email_mismatch"
	CodeAlreadyAccepted = "already_accepted"
	CodeValidationError = "validation_error"
	CodeNotFound        = "not_found"
	CodeInternalError   = "internal_error"
)

// ErrorCode maps a service error to its wire code and http status.
func ErrorCode(err error) (string, int) {
	switch {
	case errors.Is(err, types.ErrUnauthorized):
		return CodeUnauthorized, http.StatusUnauthorized
	case errors.Is(err, types.ErrForbidden):
		return CodeForbidden, http.StatusForbidden
	case errors.Is(err, types.ErrInvalidToken):
		return CodeInvalidToken, http.StatusUnauthorized
	case errors.Is(err, types.ErrEmailMismatch):
		return CodeEmailMismatch, http.StatusForbidden
	case errors.Is(err, types.ErrAlreadyAccepted):
		return CodeAlreadyAccepted, http.StatusConflict
	case errors.Is(err, types.ErrValidation):
		return CodeValidationError, http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		return CodeNotFound, http.StatusNotFound
	default:
		return CodeInternalError, http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Data:    data,
		Message: message,
		Status:  status,
	})
}

func WriteError(w http.ResponseWriter, err error) {
	code, status := ErrorCode(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: err.Error(),
		Status:  status,
	})
}
