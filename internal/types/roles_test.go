// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Role
		wantErr  bool
	}{
		{name: "owner", input: "owner", expected: RoleOwner},
		{name: "admin", input: "admin", expected: RoleAdmin},
		{name: "user", input: "user", expected: RoleUser},
		{name: "mixed case normalizes", input: "Owner", expected: RoleOwner},
		{name: "upper case normalizes", input: "ADMIN", expected: RoleAdmin},
		{name: "unknown literal", input: "superuser", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace is not trimmed", input: " owner", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			role, err := ParseRole(test.input)

			if test.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != test.expected {
				t.Errorf("expected role %q, got %q", test.expected, role)
			}
		})
	}
}

func TestCanManage(t *testing.T) {
	tests := []struct {
		role     Role
		expected bool
	}{
		{RoleOwner, true},
		{RoleAdmin, true},
		{RoleUser, false},
		{Role(""), false},
		{Role("superuser"), false},
	}

	for _, test := range tests {
		t.Run(string(test.role), func(t *testing.T) {
			if got := CanManage(test.role); got != test.expected {
				t.Errorf("CanManage(%q) = %v, expected %v", test.role, got, test.expected)
			}
		})
	}
}

func TestIsOwner(t *testing.T) {
	tests := []struct {
		role     Role
		expected bool
	}{
		{RoleOwner, true},
		{RoleAdmin, false},
		{RoleUser, false},
		{Role(""), false},
	}

	for _, test := range tests {
		t.Run(string(test.role), func(t *testing.T) {
			if got := IsOwner(test.role); got != test.expected {
				t.Errorf("IsOwner(%q) = %v, expected %v", test.role, got, test.expected)
			}
		})
	}
}

func TestParseCaseStage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CaseStage
		wantErr  bool
	}{
		{name: "lead", input: "lead", expected: CaseStageLead},
		{name: "application", input: "application", expected: CaseStageApplication},
		{name: "assessment", input: "assessment", expected: CaseStageAssessment},
		{name: "approved", input: "approved", expected: CaseStageApproved},
		{name: "settled", input: "settled", expected: CaseStageSettled},
		{name: "declined", input: "declined", expected: CaseStageDeclined},
		{name: "mixed case normalizes", input: "Approved", expected: CaseStageApproved},
		{name: "unknown literal", input: "funded", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stage, err := ParseCaseStage(test.input)

			if test.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stage != test.expected {
				t.Errorf("expected stage %q, got %q", test.expected, stage)
			}
		})
	}
}
