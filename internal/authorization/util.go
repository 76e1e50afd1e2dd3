// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

const (
	OWNER_RELATION  = "owner"
	ADMIN_RELATION  = "admin"
	MEMBER_RELATION = "member"

	CAN_VIEW_PERMISSION   = "can_view"
	CAN_MANAGE_PERMISSION = "can_manage"
)

func UserTuple(userID string) string {
	return "user:" + userID
}

func TenantTuple(tenantID string) string {
	return "tenant:" + tenantID
}

// RoleRelation maps a membership role onto its FGA relation.
func RoleRelation(role types.Role) string {
	switch role {
	case types.RoleOwner:
		return OWNER_RELATION
	case types.RoleAdmin:
		return ADMIN_RELATION
	default:
		return MEMBER_RELATION
	}
}
