// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/types"
	"github.com/canonical/caseflow/pkg/authentication"
)

type API struct {
	feeds    *FeedRegistry
	streamer *Streamer

	logger logging.LoggerInterface
}

func NewAPI(feeds *FeedRegistry, streamer *Streamer, logger logging.LoggerInterface) *API {
	return &API{
		feeds:    feeds,
		streamer: streamer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/notifications", a.handleList)
	mux.Post("/api/v0/notifications/{id}/read", a.handleMarkRead)
	mux.Post("/api/v0/notifications/read-all", a.handleMarkAllRead)
	mux.Get("/api/v0/notifications/stream", a.streamer.HandleStream)
}

type feedResponse struct {
	Notifications []types.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unread_count"`
}

func (a *API) feedFor(w http.ResponseWriter, r *http.Request) *Feed {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil
	}

	orgID := r.URL.Query().Get("org_id")
	if orgID == "" {
		writeError(w, http.StatusBadRequest, "org_id is required")
		return nil
	}

	feed, err := a.feeds.FeedFor(r.Context(), identityID, orgID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load notifications")
		return nil
	}
	return feed
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	feed := a.feedFor(w, r)
	if feed == nil {
		return
	}

	writeJSON(w, http.StatusOK, feedResponse{
		Notifications: feed.Notifications(),
		UnreadCount:   feed.UnreadCount(),
	})
}

func (a *API) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	feed := a.feedFor(w, r)
	if feed == nil {
		return
	}

	feed.MarkRead(r.Context(), chi.URLParam(r, "id"))

	writeJSON(w, http.StatusOK, feedResponse{
		Notifications: feed.Notifications(),
		UnreadCount:   feed.UnreadCount(),
	})
}

func (a *API) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	feed := a.feedFor(w, r)
	if feed == nil {
		return
	}

	feed.MarkAllRead(r.Context())

	writeJSON(w, http.StatusOK, feedResponse{
		Notifications: feed.Notifications(),
		UnreadCount:   feed.UnreadCount(),
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
