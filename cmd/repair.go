// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/dsadigitalplatform/admin-service/internal/config"
	"github.com/dsadigitalplatform/admin-service/internal/db"
	"github.com/dsadigitalplatform/admin-service/internal/kratos"
	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring/prometheus"
	"github.com/dsadigitalplatform/admin-service/internal/storage"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/pkg/tenant"
)

// repairCmd restores owner memberships for tenants that lost them, e.g. when
// the relation store mirror write failed after onboarding.
var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair ownerless tenants",
	Long:  `Promote the creator of every ownerless tenant back to owner.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := repair(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(repairCmd)
}

func repair(cmd *cobra.Command) error {
	_ = godotenv.Load()

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("admin-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(false, "", "", logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	authorizer := newAuthorizer(specs, tracer, monitor, logger)
	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

	tenantService := tenant.NewService(s, dbClient, authorizer, kratosClient, tracer, monitor, logger)

	repaired, err := tenantService.RepairOwnerless(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Repaired %d tenant(s)\n", repaired)
	return nil
}
