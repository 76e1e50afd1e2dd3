// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package types

import "errors"

// Domain error kinds. Handlers map these onto the closed set of outward error
// codes; anything unrecognized surfaces as internal_error.
var (
	// ErrUnauthorized means no authenticated identity is present.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the identity lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidToken covers unknown, consumed and expired invitation tokens.
	// The three causes are deliberately indistinguishable to the caller.
	ErrInvalidToken = errors.New("invalid invitation token")
	// ErrEmailMismatch means the token is valid but belongs to another email.
	ErrEmailMismatch = errors.New("invitation email mismatch")
	// ErrAlreadyAccepted means the invitation row already carries a user id.
	ErrAlreadyAccepted = errors.New("invitation already accepted")
	// ErrValidation means malformed input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound means a referenced tenant or membership is absent.
	ErrNotFound = errors.New("not found")
)
