// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/tracing"
	"github.com/canonical/caseflow/pkg/authentication"
)

// HeaderName carries the authenticated identity id when the service sits
// behind the identity proxy instead of verifying bearer tokens itself.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if userID := r.Header.Get(HeaderName); userID != "" {
			ctx = authentication.WithUserID(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
