// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"
	"sync"
	"time"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/types"
)

type FeedState int

const (
	FeedIdle FeedState = iota
	FeedFetching
	FeedLive
	FeedTornDown
)

// Feed is the live notification window for one (identity, organization)
// pair: an initial backfill from storage, then hub events applied in-memory.
// Notifications are immutable after creation except for read_at, so update
// events only ever move the read marker.
type Feed struct {
	mu    sync.Mutex
	state FeedState
	items []*types.Notification
	gen   uint64

	identityID string
	orgID      string
	limit      int

	service ServiceInterface
	hub     HubInterface
	alerter AlerterInterface
	logger  logging.LoggerInterface

	release func()
	done    chan struct{}
}

func NewFeed(
	identityID, orgID string,
	limit int,
	service ServiceInterface,
	hub HubInterface,
	alerter AlerterInterface,
	logger logging.LoggerInterface,
) *Feed {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	return &Feed{
		state:      FeedIdle,
		identityID: identityID,
		orgID:      orgID,
		limit:      limit,
		service:    service,
		hub:        hub,
		alerter:    alerter,
		logger:     logger,
	}
}

// Open backfills the window and goes live on the hub. Opening an already-live
// feed re-fetches but keeps the existing subscription; a torn-down feed stays
// down. Stale fetch completions are dropped by generation, as a re-open can
// overtake a slow first fetch.
func (f *Feed) Open(ctx context.Context) error {
	f.mu.Lock()
	if f.state == FeedTornDown {
		f.mu.Unlock()
		return nil
	}
	f.state = FeedFetching
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	items, err := f.service.ListNotifications(ctx, f.identityID, f.orgID)
	if err != nil {
		f.logger.Errorf("failed to fetch notifications for %s: %v", f.identityID, err)
		f.mu.Lock()
		if gen == f.gen && f.state == FeedFetching {
			f.state = FeedIdle
		}
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen || f.state == FeedTornDown {
		return nil
	}
	f.items = items
	f.state = FeedLive

	if f.release == nil {
		events, release := f.hub.Subscribe(f.identityID)
		f.release = release
		f.done = make(chan struct{})
		go f.consume(events, f.done)
	}
	return nil
}

func (f *Feed) consume(events <-chan Event, done chan struct{}) {
	for ev := range events {
		f.apply(ev)
	}
	close(done)
}

func (f *Feed) apply(ev Event) {
	if ev.Notification == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FeedLive {
		return
	}

	switch ev.Kind {
	case EventInsert:
		// Only the active organization's notifications enter the window.
		if ev.Notification.OrgID != f.orgID {
			return
		}
		f.items = append([]*types.Notification{ev.Notification}, f.items...)
		if len(f.items) > f.limit {
			f.items = f.items[:f.limit]
		}
		if f.alerter != nil && ev.Notification.ReadAt == nil {
			f.alerter.Alert(ev.Notification)
		}
	case EventUpdate:
		for _, item := range f.items {
			if item.ID == ev.Notification.ID {
				if ev.Notification.ReadAt != nil && item.ReadAt == nil {
					item.ReadAt = ev.Notification.ReadAt
				}
				return
			}
		}
	}
}

// MarkRead writes through to the backend and mirrors the result locally. The
// local mark is optimistic: a backend failure is logged, never rolled back.
func (f *Feed) MarkRead(ctx context.Context, id string) {
	now := time.Now().UTC()

	f.mu.Lock()
	for _, item := range f.items {
		if item.ID == id && item.ReadAt == nil {
			item.ReadAt = &now
			break
		}
	}
	f.mu.Unlock()

	if _, err := f.service.MarkRead(ctx, f.identityID, id); err != nil {
		f.logger.Errorf("failed to mark notification %s read: %v", id, err)
	}
}

// MarkAllRead stamps all unread in one backend statement. Entries read before
// the call keep their original timestamps in the mirror.
func (f *Feed) MarkAllRead(ctx context.Context) {
	readAt, err := f.service.MarkAllRead(ctx, f.identityID, f.orgID)
	if err != nil {
		f.logger.Errorf("failed to mark all notifications read for %s: %v", f.identityID, err)
		readAt = time.Now().UTC()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ReadAt == nil {
			t := readAt
			item.ReadAt = &t
		}
	}
}

// UnreadCount is derived from the window on every call, never cached.
func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, item := range f.items {
		if item.ReadAt == nil {
			count++
		}
	}
	return count
}

// Notifications snapshots the window as value copies. The consumer goroutine
// keeps moving read markers on the shared entries, so handing out the window's
// pointers would let encoders read fields mid-write.
func (f *Feed) Notifications() []types.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]types.Notification, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out
}

func (f *Feed) State() FeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Feed) OrgID() string {
	return f.orgID
}

// Close releases the hub subscription and tears the feed down for good. It
// blocks until the consumer goroutine has drained, so no event is applied
// after Close returns.
func (f *Feed) Close() {
	f.mu.Lock()
	if f.state == FeedTornDown {
		f.mu.Unlock()
		return
	}
	f.state = FeedTornDown
	f.gen++
	release := f.release
	done := f.done
	f.release = nil
	f.done = nil
	f.mu.Unlock()

	if release != nil {
		release()
		<-done
	}
}

// FeedRegistry keeps at most one live feed per identity. Switching
// organizations tears the previous feed down before the replacement is
// opened, so a pair never holds two subscriptions.
type FeedRegistry struct {
	mu    sync.Mutex
	feeds map[string]*Feed

	limit   int
	service ServiceInterface
	hub     HubInterface
	alerter AlerterInterface
	logger  logging.LoggerInterface
}

func NewFeedRegistry(limit int, service ServiceInterface, hub HubInterface, alerter AlerterInterface, logger logging.LoggerInterface) *FeedRegistry {
	return &FeedRegistry{
		feeds:   make(map[string]*Feed),
		limit:   limit,
		service: service,
		hub:     hub,
		alerter: alerter,
		logger:  logger,
	}
}

// FeedFor returns the identity's live feed for the organization, opening one
// if needed. A feed pinned to a different organization is closed first.
func (r *FeedRegistry) FeedFor(ctx context.Context, identityID, orgID string) (*Feed, error) {
	r.mu.Lock()
	existing, ok := r.feeds[identityID]
	if ok && existing.OrgID() == orgID {
		r.mu.Unlock()
		if existing.State() == FeedIdle {
			if err := existing.Open(ctx); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}
	if ok {
		delete(r.feeds, identityID)
	}
	feed := NewFeed(identityID, orgID, r.limit, r.service, r.hub, r.alerter, r.logger)
	r.feeds[identityID] = feed
	r.mu.Unlock()

	if ok {
		existing.Close()
	}
	if err := feed.Open(ctx); err != nil {
		return nil, err
	}
	return feed, nil
}

// Evict closes and forgets the identity's feed, typically on logout or
// identity deletion.
func (r *FeedRegistry) Evict(identityID string) {
	r.mu.Lock()
	feed, ok := r.feeds[identityID]
	delete(r.feeds, identityID)
	r.mu.Unlock()
	if ok {
		feed.Close()
	}
}
