// Copyright 2025 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
)

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	// superAdminEmails grants platform-wide admin access to listed accounts,
	// compared case insensitively.
	superAdminEmails []string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ TokenVerifierInterface = (*JWTVerifier)(nil)

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
	}

	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	return &Principal{
		ID:         claims.Subject,
		Email:      claims.Email,
		SuperAdmin: v.isSuperAdmin(claims.Email),
	}, nil
}

func (v *JWTVerifier) isSuperAdmin(email string) bool {
	if email == "" {
		return false
	}

	return slices.ContainsFunc(v.superAdminEmails, func(allowed string) bool {
		return strings.EqualFold(allowed, email)
	})
}

func NewJWTVerifier(
	provider ProviderInterface,
	clientID string,
	superAdminEmails []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := &JWTVerifier{
		superAdminEmails: superAdminEmails,
		tracer:           tracer,
		monitor:          monitor,
		logger:           logger,
	}

	config := &oidc.Config{
		ClientID:          clientID,
		SkipClientIDCheck: clientID == "",
		SkipIssuerCheck:   false,
	}

	v.verifier = provider.Verifier(config)

	return v
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	superAdminEmails []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:         verifier,
		superAdminEmails: superAdminEmails,
		tracer:           tracer,
		monitor:          monitor,
		logger:           logger,
	}
}
