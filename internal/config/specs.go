// Copyright 2026 Canonical Ltd.
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

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// OIDCIssuer is used to verify bearer tokens on the API surface.
	OIDCIssuer      string   `envconfig:"oidc_issuer"`
	JWKSURL         string   `envconfig:"jwks_url"`
	AllowedSubjects []string `envconfig:"allowed_subjects"`
	RequiredScope   string   `envconfig:"required_scope" default:"caseflow:api"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins"`

	// FeedFetchLimit bounds the notification feed's initial query.
	FeedFetchLimit uint64 `envconfig:"feed_fetch_limit" default:"50"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
