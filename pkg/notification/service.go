// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/tracing"
	"github.com/canonical/caseflow/internal/types"
)

// DefaultFetchLimit bounds the feed to the newest notifications; older
// entries stay queryable in storage but are not part of the live window.
const DefaultFetchLimit = 50

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	hub        HubInterface
	fetchLimit uint64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	hub HubInterface,
	fetchLimit uint64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if fetchLimit == 0 {
		fetchLimit = DefaultFetchLimit
	}
	return &Service{
		storage:    storage,
		hub:        hub,
		fetchLimit: fetchLimit,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// ListNotifications returns the newest notifications for the exact
// (identity, organization) pair, newest first.
func (s *Service) ListNotifications(ctx context.Context, identityID, orgID string) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notification.Service.ListNotifications")
	defer span.End()

	return s.storage.ListNotifications(ctx, identityID, orgID, s.fetchLimit)
}

// MarkRead sets the read timestamp once. The returned time is nil when the
// notification was already read or does not belong to the identity; both are
// treated as a no-op, not an error.
func (s *Service) MarkRead(ctx context.Context, identityID, id string) (*time.Time, error) {
	ctx, span := s.tracer.Start(ctx, "notification.Service.MarkRead")
	defer span.End()

	readAt, err := s.storage.MarkNotificationRead(ctx, identityID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	if readAt != nil {
		s.hub.Publish(identityID, Event{Kind: EventUpdate, Notification: &types.Notification{ID: id, IdentityID: identityID, ReadAt: readAt}})
	}
	return readAt, nil
}

// MarkAllRead stamps every unread notification of the pair with one shared
// timestamp. Already-read entries keep their original timestamps.
func (s *Service) MarkAllRead(ctx context.Context, identityID, orgID string) (time.Time, error) {
	ctx, span := s.tracer.Start(ctx, "notification.Service.MarkAllRead")
	defer span.End()

	readAt, err := s.storage.MarkAllNotificationsRead(ctx, identityID, orgID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return readAt, nil
}

// Notify persists the notification and publishes an insert event so live
// feeds and stream clients pick it up without polling.
func (s *Service) Notify(ctx context.Context, n *types.Notification) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notification.Service.Notify")
	defer span.End()

	created, err := s.storage.CreateNotification(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.hub.Publish(created.IdentityID, Event{Kind: EventInsert, Notification: created})
	return created, nil
}
