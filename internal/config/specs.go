// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"true"`
	OIDCIssuer            string `envconfig:"oidc_issuer" default:""`
	OIDCJwksURL           string `envconfig:"oidc_jwks_url" default:""`
	OIDCClientID          string `envconfig:"oidc_client_id" default:""`
	SuperAdminEmails      string `envconfig:"super_admin_emails" default:""`

	CORSAllowedOrigins string `envconfig:"cors_allowed_origins" default:"*"`

	KratosAdminURL string `envconfig:"kratos_admin_url" default:""`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	MailEnabled  bool   `envconfig:"mail_enabled" default:"false"`
	SMTPHost     string `envconfig:"smtp_host" default:"localhost"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername string `envconfig:"smtp_username" default:""`
	SMTPPassword string `envconfig:"smtp_password" default:""`
	MailFrom     string `envconfig:"mail_from" default:"no-reply@dsadigitalplatform.com"`

	// AppBaseURL is the public frontend address used in invitation links.
	AppBaseURL string `envconfig:"app_base_url" default:"http://localhost:3000"`
}
