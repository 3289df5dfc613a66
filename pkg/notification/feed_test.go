// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/caseflow/internal/types"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func openTestFeed(t *testing.T, ctrl *gomock.Controller, items []*types.Notification) (*Feed, chan Event, *MockServiceInterface, *MockAlerterInterface) {
	t.Helper()

	mockService := NewMockServiceInterface(ctrl)
	mockHub := NewMockHubInterface(ctrl)
	mockAlerter := NewMockAlerterInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	events := make(chan Event, subscriberBuffer)
	released := false
	mockHub.EXPECT().Subscribe("identity-123").Return((<-chan Event)(events), func() {
		if !released {
			released = true
			close(events)
		}
	})
	mockService.EXPECT().ListNotifications(gomock.Any(), "identity-123", "org-1").Return(items, nil)

	f := NewFeed("identity-123", "org-1", 50, mockService, mockHub, mockAlerter, mockLogger)
	if err := f.Open(context.Background()); err != nil {
		t.Fatalf("unexpected error opening feed: %v", err)
	}
	if f.State() != FeedLive {
		t.Fatalf("expected live feed, got state %d", f.State())
	}
	return f, events, mockService, mockAlerter
}

func TestFeed_OpenBackfillsWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	items := []*types.Notification{
		{ID: "n-3", OrgID: "org-1"},
		{ID: "n-2", OrgID: "org-1"},
		{ID: "n-1", OrgID: "org-1", ReadAt: timePtr(now)},
	}

	f, _, _, _ := openTestFeed(t, ctrl, items)
	defer f.Close()

	if got := len(f.Notifications()); got != 3 {
		t.Errorf("expected 3 notifications, got %d", got)
	}
	if got := f.UnreadCount(); got != 2 {
		t.Errorf("expected 2 unread, got %d", got)
	}
}

func TestFeed_InsertEventPrependsAndAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, events, _, mockAlerter := openTestFeed(t, ctrl, []*types.Notification{
		{ID: "n-1", OrgID: "org-1"},
	})
	defer f.Close()

	fresh := &types.Notification{ID: "n-2", OrgID: "org-1", Title: "New defect"}
	mockAlerter.EXPECT().Alert(fresh)

	events <- Event{Kind: EventInsert, Notification: fresh}

	waitFor(t, func() bool { return len(f.Notifications()) == 2 })
	if got := f.Notifications(); got[0].ID != "n-2" {
		t.Errorf("expected newest notification first, got %q", got[0].ID)
	}
}

func TestFeed_InsertEventForOtherOrgIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, events, _, _ := openTestFeed(t, ctrl, []*types.Notification{
		{ID: "n-1", OrgID: "org-1"},
	})
	defer f.Close()

	events <- Event{Kind: EventInsert, Notification: &types.Notification{ID: "n-2", OrgID: "org-other"}}
	// A matching follow-up proves the mismatched event was already consumed.
	events <- Event{Kind: EventInsert, Notification: &types.Notification{ID: "n-3", OrgID: "org-1", ReadAt: timePtr(time.Now())}}

	waitFor(t, func() bool { return len(f.Notifications()) == 2 })
	for _, n := range f.Notifications() {
		if n.OrgID != "org-1" {
			t.Errorf("notification from another organization leaked into the window: %+v", n)
		}
	}
}

func TestFeed_UpdateEventMovesReadMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, events, _, _ := openTestFeed(t, ctrl, []*types.Notification{
		{ID: "n-1", OrgID: "org-1"},
	})
	defer f.Close()

	now := time.Now().UTC()
	events <- Event{Kind: EventUpdate, Notification: &types.Notification{ID: "n-1", ReadAt: &now}}

	waitFor(t, func() bool { return f.UnreadCount() == 0 })
}

func TestFeed_SnapshotIsDetachedFromWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, events, _, _ := openTestFeed(t, ctrl, []*types.Notification{
		{ID: "n-1", OrgID: "org-1"},
	})
	defer f.Close()

	snapshot := f.Notifications()

	// Encoders hold snapshots outside the feed lock while the consumer
	// goroutine keeps applying read markers, so entries must be copies.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			if _, err := json.Marshal(snapshot); err != nil {
				t.Errorf("failed to encode snapshot: %v", err)
				return
			}
		}
	}()

	now := time.Now().UTC()
	events <- Event{Kind: EventUpdate, Notification: &types.Notification{ID: "n-1", ReadAt: &now}}

	waitFor(t, func() bool { return f.UnreadCount() == 0 })
	<-done

	if snapshot[0].ReadAt != nil {
		t.Errorf("update event reached into an older snapshot: %v", snapshot[0].ReadAt)
	}
}

func TestFeed_WindowTrimsToLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockHub := NewMockHubInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	events := make(chan Event, subscriberBuffer)
	mockHub.EXPECT().Subscribe("identity-123").Return((<-chan Event)(events), func() { close(events) })
	mockService.EXPECT().ListNotifications(gomock.Any(), "identity-123", "org-1").Return([]*types.Notification{
		{ID: "n-2", OrgID: "org-1"},
		{ID: "n-1", OrgID: "org-1"},
	}, nil)

	f := NewFeed("identity-123", "org-1", 2, mockService, mockHub, NewNoopAlerter(), mockLogger)
	if err := f.Open(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	events <- Event{Kind: EventInsert, Notification: &types.Notification{ID: "n-3", OrgID: "org-1"}}

	waitFor(t, func() bool {
		got := f.Notifications()
		return len(got) == 2 && got[0].ID == "n-3"
	})
	if got := f.Notifications(); got[1].ID != "n-2" {
		t.Errorf("expected oldest entry trimmed, window is %q, %q", got[0].ID, got[1].ID)
	}
}

func TestFeed_MarkAllReadScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	earlier := time.Now().UTC().Add(-time.Hour)
	f, _, mockService, _ := openTestFeed(t, ctrl, []*types.Notification{
		{ID: "n-4", OrgID: "org-1"},
		{ID: "n-3", OrgID: "org-1"},
		{ID: "n-2", OrgID: "org-1"},
		{ID: "n-1", OrgID: "org-1", ReadAt: &earlier},
	})
	defer f.Close()

	if got := f.UnreadCount(); got != 3 {
		t.Fatalf("expected 3 unread, got %d", got)
	}

	stamp := time.Now().UTC()
	mockService.EXPECT().MarkAllRead(gomock.Any(), "identity-123", "org-1").Return(stamp, nil)

	f.MarkAllRead(context.Background())

	if got := f.UnreadCount(); got != 0 {
		t.Errorf("expected 0 unread, got %d", got)
	}
	for _, n := range f.Notifications() {
		if n.ID == "n-1" && !n.ReadAt.Equal(earlier) {
			t.Errorf("previously read notification lost its original timestamp: %v", n.ReadAt)
		}
		if n.ID != "n-1" && !n.ReadAt.Equal(stamp) {
			t.Errorf("expected shared timestamp on %s, got %v", n.ID, n.ReadAt)
		}
	}
}

func TestFeed_MarkReadIsOptimistic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, _, mockService, _ := openTestFeed(t, ctrl, []*types.Notification{
		{ID: "n-1", OrgID: "org-1"},
	})
	defer f.Close()

	// The local mark sticks even though the backend write fails.
	mockService.EXPECT().MarkRead(gomock.Any(), "identity-123", "n-1").Return(nil, errors.New("db down"))
	mockLogger := f.logger.(*MockLoggerInterface)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

	f.MarkRead(context.Background(), "n-1")

	if got := f.UnreadCount(); got != 0 {
		t.Errorf("expected optimistic mark to hold, got %d unread", got)
	}
}

func TestFeed_StaleFetchIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockHub := NewMockHubInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	events := make(chan Event, subscriberBuffer)
	mockHub.EXPECT().Subscribe("identity-123").Return((<-chan Event)(events), func() { close(events) })

	f := NewFeed("identity-123", "org-1", 50, mockService, mockHub, NewNoopAlerter(), mockLogger)

	// The first fetch re-opens the feed mid-flight; its own completion must
	// then lose to the newer one.
	nested := false
	mockService.EXPECT().ListNotifications(gomock.Any(), "identity-123", "org-1").DoAndReturn(
		func(ctx context.Context, identityID, orgID string) ([]*types.Notification, error) {
			if !nested {
				nested = true
				if err := f.Open(ctx); err != nil {
					t.Fatalf("nested open failed: %v", err)
				}
				return []*types.Notification{{ID: "n-stale", OrgID: "org-1"}}, nil
			}
			return []*types.Notification{{ID: "n-fresh", OrgID: "org-1"}}, nil
		}).Times(2)

	if err := f.Open(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	got := f.Notifications()
	if len(got) != 1 || got[0].ID != "n-fresh" {
		t.Errorf("expected the newer fetch to win, got %+v", got)
	}
}

func TestFeedRegistry_SwitchingOrgTearsDownPreviousFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockHub := NewMockHubInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	first := make(chan Event, subscriberBuffer)
	second := make(chan Event, subscriberBuffer)
	firstReleased := false
	gomock.InOrder(
		mockHub.EXPECT().Subscribe("identity-123").Return((<-chan Event)(first), func() {
			firstReleased = true
			close(first)
		}),
		mockHub.EXPECT().Subscribe("identity-123").Return((<-chan Event)(second), func() { close(second) }),
	)
	mockService.EXPECT().ListNotifications(gomock.Any(), "identity-123", "org-1").Return(nil, nil)
	mockService.EXPECT().ListNotifications(gomock.Any(), "identity-123", "org-2").Return(nil, nil)

	registry := NewFeedRegistry(50, mockService, mockHub, NewNoopAlerter(), mockLogger)

	feedOne, err := registry.FeedFor(context.Background(), "identity-123", "org-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	feedTwo, err := registry.FeedFor(context.Background(), "identity-123", "org-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer feedTwo.Close()

	if !firstReleased {
		t.Error("expected the previous subscription to be released before resubscribing")
	}
	if feedOne.State() != FeedTornDown {
		t.Errorf("expected previous feed torn down, got state %d", feedOne.State())
	}
	if feedTwo.OrgID() != "org-2" {
		t.Errorf("expected new feed pinned to org-2, got %q", feedTwo.OrgID())
	}

	// Same pair reuses the live feed without a new subscription.
	feedAgain, err := registry.FeedFor(context.Background(), "identity-123", "org-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feedAgain != feedTwo {
		t.Error("expected the live feed to be reused for the same pair")
	}
}
