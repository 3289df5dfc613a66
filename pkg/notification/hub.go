// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"sync"

	"github.com/canonical/caseflow/internal/logging"
)

const subscriberBuffer = 16

var _ HubInterface = (*Hub)(nil)

// Hub is the in-process dispatcher between notification writers and live
// feeds. Subscriptions are keyed by identity; organization filtering is the
// subscriber's concern, so an identity switching organizations keeps one
// subscription shape.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[uint64]chan Event
	nextID      uint64

	logger logging.LoggerInterface
}

func NewHub(logger logging.LoggerInterface) *Hub {
	return &Hub{
		subscribers: make(map[string]map[uint64]chan Event),
		logger:      logger,
	}
}

// Subscribe registers a listener for the identity and returns its event
// channel plus a release func. The release func is idempotent and closes the
// channel so ranging consumers terminate.
func (h *Hub) Subscribe(identityID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	if h.subscribers[identityID] == nil {
		h.subscribers[identityID] = make(map[uint64]chan Event)
	}
	h.subscribers[identityID][id] = ch
	h.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			h.mu.Lock()
			if subs, ok := h.subscribers[identityID]; ok {
				delete(subs, id)
				if len(subs) == 0 {
					delete(h.subscribers, identityID)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, release
}

// Publish fans the event out to the identity's subscribers. A subscriber that
// cannot keep up has the event dropped rather than blocking the publisher;
// feeds recover on their next refresh.
func (h *Hub) Publish(identityID string, ev Event) {
	// Sends are non-blocking, so holding the read lock here is cheap and
	// keeps Publish from racing a concurrent release closing the channel.
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers[identityID] {
		select {
		case ch <- ev:
		default:
			h.logger.Warnf("dropping notification event for slow subscriber of %s", identityID)
		}
	}
}
