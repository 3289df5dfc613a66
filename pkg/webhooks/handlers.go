// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/caseflow/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/registration", a.registration)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		a.logger.Errorf("invalid registration webhook body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.service.HandleRegistration(r.Context(), identity.ID, identity.Traits.Email); err != nil {
		a.logger.Errorf("registration webhook failed: %v", err)
		http.Error(w, "Failed to provision identity", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
