// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/caseflow/internal/authorization"
	"github.com/canonical/caseflow/internal/db"
	"github.com/canonical/caseflow/internal/identity"
	"github.com/canonical/caseflow/internal/kratos"
	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/storage"
	"github.com/canonical/caseflow/internal/tracing"
	"github.com/canonical/caseflow/pkg/admin"
	"github.com/canonical/caseflow/pkg/authentication"
	"github.com/canonical/caseflow/pkg/metrics"
	"github.com/canonical/caseflow/pkg/notification"
	"github.com/canonical/caseflow/pkg/organization"
	"github.com/canonical/caseflow/pkg/role"
	"github.com/canonical/caseflow/pkg/status"
	"github.com/canonical/caseflow/pkg/webhooks"
)

type RouterConfig struct {
	AllowedOrigins []string
	FeedWindowSize int
}

func NewRouter(
	cfg RouterConfig,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	authz authorization.AuthorizerInterface,
	kratosClient kratos.ClientInterface,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
	)

	orgService := organization.NewService(s, authz, tracer, monitor, logger)
	registry := organization.NewRegistry(orgService, logger)
	resolver := role.NewResolver(s, tracer, monitor, logger)

	hub := notification.NewHub(logger)
	notifService := notification.NewService(s, hub, notification.DefaultFetchLimit, tracer, monitor, logger)
	feeds := notification.NewFeedRegistry(cfg.FeedWindowSize, notifService, hub, notification.NewNoopAlerter(), logger)
	streamer := notification.NewStreamer(hub, cfg.AllowedOrigins, logger)

	adminService := admin.NewService(s, authz, kratosClient, notifService, tracer, monitor, logger)
	webhookService := webhooks.NewService(s, tracer, monitor, logger)

	// Unauthenticated surface: health checks, metrics and the Kratos callback.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhookService, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		// chi.Group hands back an inline *Mux copy.
		mux := r.(*chi.Mux)
		mux.Use(
			authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(),
			identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
			db.TransactionMiddleware(dbClient, logger),
		)

		organization.NewAPI(registry, orgService, resolver, logger).RegisterEndpoints(mux)
		role.NewAPI(resolver, logger).RegisterEndpoints(mux)
		notification.NewAPI(feeds, streamer, logger).RegisterEndpoints(mux)
		admin.NewAPI(adminService, logger).RegisterEndpoints(mux)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", identity.HeaderName},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
