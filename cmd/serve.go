// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/dsadigitalplatform/admin-service/internal/authorization"
	"github.com/dsadigitalplatform/admin-service/internal/config"
	"github.com/dsadigitalplatform/admin-service/internal/db"
	"github.com/dsadigitalplatform/admin-service/internal/kratos"
	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/mail"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring/prometheus"
	"github.com/dsadigitalplatform/admin-service/internal/openfga"
	"github.com/dsadigitalplatform/admin-service/internal/storage"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
	"github.com/dsadigitalplatform/admin-service/pkg/authentication"
	"github.com/dsadigitalplatform/admin-service/pkg/cases"
	"github.com/dsadigitalplatform/admin-service/pkg/invitation"
	"github.com/dsadigitalplatform/admin-service/pkg/tenancy"
	"github.com/dsadigitalplatform/admin-service/pkg/tenant"
	"github.com/dsadigitalplatform/admin-service/pkg/web"
	"github.com/dsadigitalplatform/admin-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	_ = godotenv.Load()

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("admin-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	authorizer := newAuthorizer(specs, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	var mailer invitation.MailerInterface
	if specs.MailEnabled {
		mailer = mail.NewMailer(
			&mail.Config{
				Host:     specs.SMTPHost,
				Port:     specs.SMTPPort,
				Username: specs.SMTPUsername,
				Password: specs.SMTPPassword,
				From:     specs.MailFrom,
				BaseURL:  specs.AppBaseURL,
			},
			tracer,
			logger,
		)
		logger.Info("Invitation mail delivery is enabled")
	} else {
		mailer = mail.NewNoopMailer()
		logger.Info("Using noop mailer")
	}

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.OIDCJwksURL,
			specs.OIDCClientID,
			splitList(specs.SuperAdminEmails),
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Using noop token verifier")
	}
	authnMiddleware := authentication.NewMiddleware(verifier, tracer, monitor, logger)

	tenancyService := tenancy.NewService(s, tracer, monitor, logger)
	requireTenant := tenancy.NewMiddleware(tenancyService, tracer, monitor, logger).RequireTenant()

	tenantService := tenant.NewService(s, dbClient, authorizer, kratosClient, tracer, monitor, logger)
	invitationService := invitation.NewService(s, dbClient, kratosClient, mailer, tracer, monitor, logger)
	casesService := cases.NewService(s, tracer, monitor, logger)
	webhooksService := webhooks.NewService(s, tracer, monitor, logger)

	router := web.NewRouter(
		authnMiddleware,
		tenancy.NewAPI(tenancyService, tracer, monitor, logger),
		tenant.NewAPI(tenantService, requireTenant, tracer, monitor, logger),
		invitation.NewAPI(invitationService, tracer, monitor, logger),
		cases.NewAPI(casesService, requireTenant, tracer, monitor, logger),
		webhooks.NewAPI(webhooksService, logger),
		splitList(specs.CORSAllowedOrigins),
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func newAuthorizer(
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *authorization.Authorizer {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)
	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)
	logger.Info("Authorization is enabled")
	if authorizer.ValidateModel(context.Background()) != nil {
		panic("Invalid authorization model provided")
	}

	return authorizer
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
