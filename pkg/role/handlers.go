// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package role

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/pkg/authentication"
)

type API struct {
	resolver ResolverInterface

	logger logging.LoggerInterface
}

func NewAPI(resolver ResolverInterface, logger logging.LoggerInterface) *API {
	return &API{
		resolver: resolver,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/orgs/{id}/role", a.handleResolve)
}

type resolveResponse struct {
	Role      string `json:"role"`
	IsAdmin   bool   `json:"is_admin"`
	IsManager bool   `json:"is_manager"`
	CanManage bool   `json:"can_manage"`
}

func (a *API) handleResolve(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgID := chi.URLParam(r, "id")
	resolution, err := a.resolver.ResolveDetailed(r.Context(), identityID, orgID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to resolve role")
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Role:      resolution.Role,
		IsAdmin:   resolution.IsAdmin(),
		IsManager: resolution.IsManager(),
		CanManage: resolution.CanManage(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
