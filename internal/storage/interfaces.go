// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/caseflow/internal/types"
)

type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizationsByIdentity(ctx context.Context, identityID string) ([]*types.Organization, error)
	SoftDeleteOrganization(ctx context.Context, id string) error
	TransferOwnership(ctx context.Context, orgID, newOwnerID string) error

	AddMember(ctx context.Context, orgID, identityID, role string) (string, error)
	GetMembership(ctx context.Context, orgID, identityID string) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, orgID, identityID, role string) error
	RemoveMember(ctx context.Context, orgID, identityID string) error
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Membership, error)
	ListMembershipsByIdentity(ctx context.Context, identityID string) ([]*types.Membership, error)
	ListActiveMemberIdentityIDs(ctx context.Context) ([]string, error)
	DeleteMembershipsByIdentity(ctx context.Context, identityID string) error

	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotifications(ctx context.Context, identityID, orgID string, limit uint64) ([]*types.Notification, error)
	MarkNotificationRead(ctx context.Context, identityID, id string) (*time.Time, error)
	MarkAllNotificationsRead(ctx context.Context, identityID, orgID string) (time.Time, error)

	GetUserSettings(ctx context.Context, identityID string) (*types.UserSettings, error)
	SetActiveOrg(ctx context.Context, identityID string, orgID *string) error
	SetTheme(ctx context.Context, identityID string, theme string) error

	CreateActivityRecord(ctx context.Context, rec *types.ActivityRecord) error
}
