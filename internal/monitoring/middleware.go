// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/caseflow/internal/logging"
)

// Middleware records per-route response time observations.
type Middleware struct {
	monitor MonitorInterface
	logger  logging.LoggerInterface
}

func (mdw *Middleware) ResponseTime() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			tags := map[string]string{
				"route":  route,
				"status": strconv.Itoa(rw.statusCode),
			}

			if err := mdw.monitor.SetResponseTimeMetric(tags, time.Since(start).Seconds()); err != nil {
				mdw.logger.Errorf("failed to set response time metric: %v", err)
			}
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func NewMiddleware(monitor MonitorInterface, logger logging.LoggerInterface) *Middleware {
	mdw := new(Middleware)

	mdw.monitor = monitor
	mdw.logger = logger

	return mdw
}
