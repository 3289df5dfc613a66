// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/storage"
	"github.com/canonical/caseflow/internal/types"
	"github.com/canonical/caseflow/pkg/authentication"
)

type API struct {
	registry *Registry
	service  ServiceInterface
	roles    RoleCheckerInterface

	logger logging.LoggerInterface
}

func NewAPI(registry *Registry, service ServiceInterface, roles RoleCheckerInterface, logger logging.LoggerInterface) *API {
	return &API{
		registry: registry,
		service:  service,
		roles:    roles,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/orgs", a.handleList)
	mux.Post("/api/v0/orgs", a.handleCreate)
	mux.Post("/api/v0/orgs/active", a.handleSetActive)
	mux.Post("/api/v0/orgs/refresh", a.handleRefresh)
	mux.Delete("/api/v0/orgs/{id}", a.handleDelete)
	mux.Post("/api/v0/orgs/{id}/transfer", a.handleTransfer)
	mux.Get("/api/v0/orgs/{id}/members", a.handleListMembers)
	mux.Patch("/api/v0/orgs/{id}/members/{identity}", a.handleUpdateMemberRole)
	mux.Delete("/api/v0/orgs/{id}/members/{identity}", a.handleRemoveMember)
	mux.Get("/api/v0/settings/theme", a.handleGetTheme)
	mux.Put("/api/v0/settings/theme", a.handleSetTheme)
}

type contextResponse struct {
	Organizations []*types.Organization `json:"organizations"`
	Active        *types.Organization   `json:"active"`
	Loading       bool                  `json:"loading"`
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgCtx := a.registry.Context(identityID)
	if orgCtx.Loading() {
		if err := orgCtx.Load(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load organizations")
			return
		}
	}

	writeJSON(w, http.StatusOK, contextResponse{
		Organizations: orgCtx.Organizations(),
		Active:        orgCtx.Active(),
		Loading:       orgCtx.Loading(),
	})
}

type setActiveRequest struct {
	OrgID string `json:"org_id"`
}

func (a *API) handleSetActive(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orgCtx := a.registry.Context(identityID)
	if orgCtx.Loading() {
		if err := orgCtx.Load(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load organizations")
			return
		}
	}

	var target *types.Organization
	if req.OrgID != "" {
		for _, o := range orgCtx.Organizations() {
			if o.ID == req.OrgID {
				target = o
				break
			}
		}
		if target == nil {
			writeError(w, http.StatusNotFound, "organization not found")
			return
		}
	}

	if err := orgCtx.SetActive(r.Context(), target); err != nil {
		a.logger.Errorf("failed to set active organization: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to set active organization")
		return
	}

	writeJSON(w, http.StatusOK, contextResponse{
		Organizations: orgCtx.Organizations(),
		Active:        orgCtx.Active(),
		Loading:       orgCtx.Loading(),
	})
}

func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgCtx := a.registry.Context(identityID)
	if err := orgCtx.Refresh(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to refresh organizations")
		return
	}

	writeJSON(w, http.StatusOK, contextResponse{
		Organizations: orgCtx.Organizations(),
		Active:        orgCtx.Active(),
		Loading:       orgCtx.Loading(),
	})
}

type createOrgRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Slug == "" {
		writeError(w, http.StatusBadRequest, "name and slug are required")
		return
	}

	org, err := a.service.CreateOrganization(r.Context(), req.Name, req.Slug, identityID)
	if err != nil {
		a.logger.Errorf("failed to create organization: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create organization")
		return
	}

	// Newly owned org must show up in the caller's context.
	if err := a.registry.Context(identityID).Refresh(r.Context()); err != nil {
		a.logger.Errorf("failed to refresh organization context: %v", err)
	}

	writeJSON(w, http.StatusCreated, org)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgID := chi.URLParam(r, "id")
	role, err := a.roles.Resolve(r.Context(), identityID, orgID)
	if err != nil || role != types.RoleAdmin {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := a.service.DeleteOrganization(r.Context(), orgID); err != nil {
		a.logger.Errorf("failed to delete organization: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete organization")
		return
	}

	if err := a.registry.Context(identityID).Refresh(r.Context()); err != nil {
		a.logger.Errorf("failed to refresh organization context: %v", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

type transferRequest struct {
	NewOwnerID string `json:"new_owner_id"`
}

func (a *API) handleTransfer(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgID := chi.URLParam(r, "id")
	role, err := a.roles.Resolve(r.Context(), identityID, orgID)
	if err != nil || role != types.RoleAdmin {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NewOwnerID == "" {
		writeError(w, http.StatusBadRequest, "new_owner_id is required")
		return
	}

	if err := a.service.TransferOwnership(r.Context(), orgID, req.NewOwnerID); err != nil {
		a.logger.Errorf("failed to transfer ownership: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to transfer ownership")
		return
	}

	w.WriteHeader(http.StatusOK)
}

type membersResponse struct {
	Members []*types.Membership `json:"members"`
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgID := chi.URLParam(r, "id")
	role, err := a.roles.Resolve(r.Context(), identityID, orgID)
	if err != nil || role == types.RoleNone {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	members, err := a.service.ListMembers(r.Context(), orgID)
	if err != nil {
		a.logger.Errorf("failed to list members: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list members")
		return
	}

	writeJSON(w, http.StatusOK, membersResponse{Members: members})
}

type updateMemberRoleRequest struct {
	Role string `json:"role"`
}

func (a *API) handleUpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgID := chi.URLParam(r, "id")
	role, err := a.roles.Resolve(r.Context(), identityID, orgID)
	if err != nil || (role != types.RoleAdmin && role != types.RoleManager) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req updateMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !types.IsValidRole(req.Role) {
		writeError(w, http.StatusBadRequest, "role must be one of admin, manager, tester, viewer")
		return
	}

	target := chi.URLParam(r, "identity")
	if err := a.service.UpdateMemberRole(r.Context(), orgID, target, req.Role); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "membership not found")
			return
		}
		a.logger.Errorf("failed to update member role: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update member role")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgID := chi.URLParam(r, "id")
	role, err := a.roles.Resolve(r.Context(), identityID, orgID)
	if err != nil || (role != types.RoleAdmin && role != types.RoleManager) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := a.service.RemoveMember(r.Context(), orgID, chi.URLParam(r, "identity")); err != nil {
		a.logger.Errorf("failed to remove member: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to remove member")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type themeResponse struct {
	Theme *string `json:"theme"`
}

func (a *API) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	theme := a.registry.Context(identityID).Theme(r.Context())
	writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
}

type setThemeRequest struct {
	Theme string `json:"theme"`
}

func (a *API) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req setThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Theme != "light" && req.Theme != "dark" && req.Theme != "system" {
		writeError(w, http.StatusBadRequest, "theme must be one of light, dark, system")
		return
	}

	if err := a.registry.Context(identityID).SetTheme(r.Context(), req.Theme); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist theme")
		return
	}

	writeJSON(w, http.StatusOK, themeResponse{Theme: &req.Theme})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
