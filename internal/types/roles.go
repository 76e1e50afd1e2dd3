// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"strings"
)

// Role is the closed set of tenant-scoped roles. Stored lowercase; any other
// value must be rejected at the boundary.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole normalizes a role literal case-insensitively and rejects anything
// outside the closed enum.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(s)) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

// CanManage reports whether the role may manage the tenant: profile and theme
// edits, sending invitations, viewing pending memberships.
func CanManage(r Role) bool {
	return r == RoleOwner || r == RoleAdmin
}

// IsOwner gates tenant-destructive actions.
func IsOwner(r Role) bool {
	return r == RoleOwner
}

// ParseCaseStage validates a loan case stage literal.
func ParseCaseStage(s string) (CaseStage, error) {
	switch CaseStage(strings.ToLower(s)) {
	case CaseStageLead, CaseStageApplication, CaseStageAssessment,
		CaseStageApproved, CaseStageSettled, CaseStageDeclined:
		return CaseStage(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("%w: unknown case stage %q", ErrValidation, s)
}
