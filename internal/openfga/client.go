// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"
	"reflect"

	fga "github.com/openfga/go-sdk"
	openfga "github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
)

type OpenFGAClientInterface interface {
	Check(ctx context.Context, user, relation, object string) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	ReadModel(ctx context.Context) (*fga.AuthorizationModel, error)
	CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error)
}

var _ OpenFGAClientInterface = (*Client)(nil)

type Client struct {
	c *openfga.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg *Config) *Client {
	client := new(Client)

	fgaConfig := openfga.ClientConfiguration{
		ApiScheme:            cfg.ApiScheme,
		ApiHost:              cfg.ApiHost,
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.ModelID,
	}

	if cfg.ApiToken != "" {
		fgaConfig.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		}
	}

	c, err := openfga.NewSdkClient(&fgaConfig)
	if err != nil {
		cfg.Logger.Fatalf("failed to create openfga client: %v", err)
	}

	client.c = c
	client.tracer = cfg.Tracer
	client.monitor = cfg.Monitor
	client.logger = cfg.Logger

	return client
}

func (c *Client) Check(ctx context.Context, user, relation, object string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	resp, err := c.c.Check(ctx).Body(
		openfga.ClientCheckRequest{
			User:     user,
			Relation: relation,
			Object:   object,
		},
	).Execute()
	if err != nil {
		return false, fmt.Errorf("failed to perform check: %w", err)
	}

	return resp.GetAllowed(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.WriteTuples(ctx).Body(
		openfga.ClientWriteTuplesBody{
			{User: user, Relation: relation, Object: object},
		},
	).Execute()
	if err != nil {
		return fmt.Errorf("failed to write tuple: %w", err)
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	_, err := c.c.DeleteTuples(ctx).Body(
		openfga.ClientDeleteTuplesBody{
			{User: user, Relation: relation, Object: object},
		},
	).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete tuple: %w", err)
	}

	return nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	resp, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to read authorization model: %w", err)
	}

	return resp.AuthorizationModel, nil
}

// CompareModel reports whether the store's model carries the same type
// definitions as the given one. Model ids are ignored.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	authModel, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}
	if authModel == nil {
		return false, nil
	}

	if authModel.SchemaVersion != model.SchemaVersion {
		return false, nil
	}

	return reflect.DeepEqual(authModel.TypeDefinitions, model.TypeDefinitions), nil
}
