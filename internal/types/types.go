// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"database/sql"
	"time"
)

type TenantType string

const (
	TenantTypeSoleTrader TenantType = "sole_trader"
	TenantTypeCompany    TenantType = "company"
)

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
)

type Tenant struct {
	ID         string         `db:"id"`
	Name       string         `db:"name"`
	Type       TenantType     `db:"type"`
	Status     TenantStatus   `db:"status"`
	Plan       sql.NullString `db:"plan"`
	ThemeColor sql.NullString `db:"theme_color"`
	CreatedBy  sql.NullString `db:"created_by"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

type MembershipStatus string

const (
	MembershipStatusInvited MembershipStatus = "invited"
	MembershipStatusActive  MembershipStatus = "active"
	MembershipStatusRevoked MembershipStatus = "revoked"
)

// Membership joins an identity to a tenant. UserID stays null while the row
// is a pending invitation; InviteToken and ExpiresAt are only set while the
// status is invited.
type Membership struct {
	ID          string           `db:"id"`
	TenantID    string           `db:"tenant_id"`
	UserID      sql.NullString   `db:"user_id"`
	Email       string           `db:"email"`
	Role        Role             `db:"role"`
	Status      MembershipStatus `db:"status"`
	InviteToken sql.NullString   `db:"invite_token"`
	ExpiresAt   sql.NullTime     `db:"expires_at"`
	ActivatedAt sql.NullTime     `db:"activated_at"`
	CreatedAt   time.Time        `db:"created_at"`
}

// ResolvedMembership is one row of the tenancy resolution query: an active
// membership matched either by user id or by invited email. UserID is kept so
// the resolver can prefer the user-id match when deduplicating.
type ResolvedMembership struct {
	TenantID   string         `json:"tenant_id"`
	TenantName string         `json:"tenant_name"`
	Role       Role           `json:"role"`
	UserID     sql.NullString `json:"-"`
}

// TenantMember is the outward view of a membership row in member listings.
type TenantMember struct {
	MembershipID string
	UserID       string
	Email        string
	Role         Role
	Status       MembershipStatus
	ExpiresAt    *time.Time
}

type CaseStage string

const (
	CaseStageLead        CaseStage = "lead"
	CaseStageApplication CaseStage = "application"
	CaseStageAssessment  CaseStage = "assessment"
	CaseStageApproved    CaseStage = "approved"
	CaseStageSettled     CaseStage = "settled"
	CaseStageDeclined    CaseStage = "declined"
)

type Customer struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type LoanCase struct {
	ID         string    `db:"id"`
	TenantID   string    `db:"tenant_id"`
	CustomerID string    `db:"customer_id"`
	Lender     string    `db:"lender"`
	Product    string    `db:"product"`
	Amount     int64     `db:"amount"`
	Stage      CaseStage `db:"stage"`
	Notes      string    `db:"notes"`
	CreatedBy  string    `db:"created_by"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
