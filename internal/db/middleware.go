// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/canonical/caseflow/internal/logging"
)

// TransactionMiddleware wraps mutating requests in a database transaction.
// Committed when the handler ends below 400, rolled back otherwise.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

				next.ServeHTTP(rw, r.WithContext(txCtx))

				if rw.statusCode >= 400 {
					return fmt.Errorf("request failed with status %d", rw.statusCode)
				}

				return nil
			})
			if err != nil {
				logger.Debugf("transaction rolled back: %v", err)
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
