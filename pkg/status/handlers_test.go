// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/tracing"
	"github.com/canonical/caseflow/internal/version"
)

func newStatusMux() *chi.Mux {
	mux := chi.NewMux()
	NewAPI(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func TestAPI_Alive(t *testing.T) {
	rr := httptest.NewRecorder()
	newStatusMux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body statusResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a status payload, got %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected status ok, got %q", body.Status)
	}
}

func TestAPI_Version(t *testing.T) {
	rr := httptest.NewRecorder()
	newStatusMux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/version", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body versionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a version payload, got %v", err)
	}
	if body.Version != version.Version {
		t.Errorf("expected version %q, got %q", version.Version, body.Version)
	}
}
