// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/caseflow/internal/types"
	"github.com/canonical/caseflow/pkg/authentication"
)

func newTestNotificationAPI(t *testing.T, ctrl *gomock.Controller) (*API, *MockServiceInterface, *MockHubInterface) {
	t.Helper()

	mockService := NewMockServiceInterface(ctrl)
	mockHub := NewMockHubInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	registry := NewFeedRegistry(50, mockService, mockHub, NewNoopAlerter(), mockLogger)
	streamer := NewStreamer(mockHub, nil, mockLogger)
	return NewAPI(registry, streamer, mockLogger), mockService, mockHub
}

func expectSubscription(mockHub *MockHubInterface, identityID string) {
	events := make(chan Event)
	mockHub.EXPECT().Subscribe(identityID).Return((<-chan Event)(events), func() { close(events) })
}

func TestAPI_HandleList(t *testing.T) {
	identityID := "identity-123"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mockService, mockHub := newTestNotificationAPI(t, ctrl)
	expectSubscription(mockHub, identityID)
	mockService.EXPECT().ListNotifications(gomock.Any(), identityID, "org-1").Return([]*types.Notification{
		{ID: "n-2", OrgID: "org-1"},
		{ID: "n-1", OrgID: "org-1", ReadAt: timePtr(time.Now())},
	}, nil)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/notifications?org_id=org-1", nil)
	req = req.WithContext(authentication.WithUserID(req.Context(), identityID))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var result feedResponse
	if err := json.NewDecoder(rr.Result().Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Notifications) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(result.Notifications))
	}
	if result.UnreadCount != 1 {
		t.Errorf("expected 1 unread, got %d", result.UnreadCount)
	}
}

func TestAPI_HandleList_RequiresOrg(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, _, _ := newTestNotificationAPI(t, ctrl)
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/notifications", nil)
	req = req.WithContext(authentication.WithUserID(req.Context(), "identity-123"))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestAPI_HandleList_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, _, _ := newTestNotificationAPI(t, ctrl)
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/notifications?org_id=org-1", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestAPI_HandleMarkAllRead(t *testing.T) {
	identityID := "identity-123"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mockService, mockHub := newTestNotificationAPI(t, ctrl)
	expectSubscription(mockHub, identityID)
	mockService.EXPECT().ListNotifications(gomock.Any(), identityID, "org-1").Return([]*types.Notification{
		{ID: "n-3", OrgID: "org-1"},
		{ID: "n-2", OrgID: "org-1"},
		{ID: "n-1", OrgID: "org-1"},
	}, nil)
	mockService.EXPECT().MarkAllRead(gomock.Any(), identityID, "org-1").Return(time.Now().UTC(), nil)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/notifications/read-all?org_id=org-1", nil)
	req = req.WithContext(authentication.WithUserID(req.Context(), identityID))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var result feedResponse
	if err := json.NewDecoder(rr.Result().Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.UnreadCount != 0 {
		t.Errorf("expected 0 unread after read-all, got %d", result.UnreadCount)
	}
}

func TestAPI_HandleMarkRead(t *testing.T) {
	identityID := "identity-123"
	now := time.Now().UTC()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mockService, mockHub := newTestNotificationAPI(t, ctrl)
	expectSubscription(mockHub, identityID)
	mockService.EXPECT().ListNotifications(gomock.Any(), identityID, "org-1").Return([]*types.Notification{
		{ID: "n-1", OrgID: "org-1"},
	}, nil)
	mockService.EXPECT().MarkRead(gomock.Any(), identityID, "n-1").Return(&now, nil)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/notifications/n-1/read?org_id=org-1", nil)
	req = req.WithContext(authentication.WithUserID(req.Context(), identityID))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var result feedResponse
	if err := json.NewDecoder(rr.Result().Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.UnreadCount != 0 {
		t.Errorf("expected 0 unread after read, got %d", result.UnreadCount)
	}
}
