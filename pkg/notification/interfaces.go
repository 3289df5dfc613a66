// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"
	"time"

	"github.com/canonical/caseflow/internal/types"
)

type EventKind string

const (
	EventInsert EventKind = "insert"
	EventUpdate EventKind = "update"
)

// Event is what the hub fans out to subscribers. Insert events carry a new
// notification, update events carry the new state of an existing one.
type Event struct {
	Kind         EventKind           `json:"kind"`
	Notification *types.Notification `json:"notification"`
}

type StorageInterface interface {
	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotifications(ctx context.Context, identityID, orgID string, limit uint64) ([]*types.Notification, error)
	MarkNotificationRead(ctx context.Context, identityID, id string) (*time.Time, error)
	MarkAllNotificationsRead(ctx context.Context, identityID, orgID string) (time.Time, error)
}

type ServiceInterface interface {
	ListNotifications(ctx context.Context, identityID, orgID string) ([]*types.Notification, error)
	MarkRead(ctx context.Context, identityID, id string) (*time.Time, error)
	MarkAllRead(ctx context.Context, identityID, orgID string) (time.Time, error)
	Notify(ctx context.Context, n *types.Notification) (*types.Notification, error)
}

type HubInterface interface {
	Subscribe(identityID string) (<-chan Event, func())
	Publish(identityID string, ev Event)
}

// AlerterInterface is the side channel for out-of-band alerts on fresh
// notifications. The noop implementation stands in where the platform has no
// such channel.
type AlerterInterface interface {
	Alert(n *types.Notification)
}
