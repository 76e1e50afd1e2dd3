// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/openfga"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

// Authorizer mirrors membership roles into OpenFGA tuples so external
// consumers can run relationship checks. The membership rows stay the source
// of truth for role predicates inside this service.
type Authorizer struct {
	client openfga.OpenFGAClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) AssignTenantRole(ctx context.Context, tenantID, userID string, role types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantRole")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), RoleRelation(role), TenantTuple(tenantID))
}

func (a *Authorizer) RemoveTenantRole(ctx context.Context, tenantID, userID string, role types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveTenantRole")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), RoleRelation(role), TenantTuple(tenantID))
}

func (a *Authorizer) CheckTenantAccess(ctx context.Context, tenantID, userID, permission string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckTenantAccess")
	defer span.End()

	return a.client.Check(ctx, UserTuple(userID), permission, TenantTuple(tenantID))
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	model, err := NewAuthorizationModelProvider().GetModel()
	if err != nil {
		return err
	}

	eq, err := a.client.CompareModel(ctx, *model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func NewAuthorizer(client openfga.OpenFGAClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)

	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
