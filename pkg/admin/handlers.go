// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/admin/reset-password", a.handleResetPassword)
	mux.Post("/api/v0/admin/users", a.handleCreateUser)
	mux.Post("/api/v0/admin/hard-delete-user", a.handleHardDeleteUser)
	mux.Post("/api/v0/admin/unassigned-users", a.handleUnassignedUsers)
}

type resetPasswordRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func (a *API) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	callerID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "user_id is required and new_password must be at least 6 characters")
		return
	}

	if err := a.service.ResetPassword(r.Context(), callerID, req.UserID, req.NewPassword); err != nil {
		a.writeServiceError(w, err, "failed to reset password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email, display_name, org_id and role are required")
		return
	}

	created, err := a.service.CreateUser(r.Context(), callerID, req)
	if err != nil {
		a.writeServiceError(w, err, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

type hardDeleteRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (a *API) handleHardDeleteUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req hardDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := a.service.HardDeleteUser(r.Context(), callerID, req.UserID); err != nil {
		a.writeServiceError(w, err, "failed to delete user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type unassignedUsersRequest struct {
	OrgID string `json:"org_id" validate:"required"`
}

func (a *API) handleUnassignedUsers(w http.ResponseWriter, r *http.Request) {
	callerID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req unassignedUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "org_id is required")
		return
	}

	users, err := a.service.UnassignedUsers(r.Context(), callerID, req.OrgID)
	if err != nil {
		a.writeServiceError(w, err, "failed to list unassigned users")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

// writeServiceError maps the service error taxonomy onto status codes. Config
// errors surface as an opaque 500, never leaking what is missing.
func (a *API) writeServiceError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, ErrUserExists):
		writeError(w, http.StatusConflict, ErrUserExists.Error())
	case errors.Is(err, ErrNotConfigured):
		a.logger.Error(err)
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		a.logger.Errorf("%s: %v", msg, err)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
