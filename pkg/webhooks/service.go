// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleTokenHook enriches the tokens hydra is about to issue with the
// subject's active tenant ids, so that downstream services can authorize
// without a callback. A subject with no memberships gets an empty claim,
// never an error.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req.Session == nil || req.Session.DefaultSession == nil || req.Session.Subject == "" {
		return nil, fmt.Errorf("token hook request carries no subject")
	}

	memberships, err := s.storage.ListActiveMembershipsForIdentity(ctx, req.Session.Subject, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships for subject: %w", err)
	}

	tenantIDs := make([]string, 0, len(memberships))
	seen := make(map[string]bool, len(memberships))
	for _, m := range memberships {
		if seen[m.TenantID] {
			continue
		}
		seen[m.TenantID] = true
		tenantIDs = append(tenantIDs, m.TenantID)
	}

	s.logger.Debugf("token hook resolved %d tenants for subject %s", len(tenantIDs), req.Session.Subject)

	claims := map[string]interface{}{"tenants": tenantIDs}
	return &TokenHookResponse{
		Session: TokenHookSession{
			IDToken:     claims,
			AccessToken: claims,
		},
	}, nil
}
