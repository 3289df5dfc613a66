// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/canonical/caseflow/internal/types"
)

type StorageInterface interface {
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetMembership(ctx context.Context, orgID, identityID string) (*types.Membership, error)
	ListMembershipsByIdentity(ctx context.Context, identityID string) ([]*types.Membership, error)
	ListActiveMemberIdentityIDs(ctx context.Context) ([]string, error)
	AddMember(ctx context.Context, orgID, identityID, role string) (string, error)
	DeleteMembershipsByIdentity(ctx context.Context, identityID string) error
	CreateActivityRecord(ctx context.Context, rec *types.ActivityRecord) error
}

type AuthzInterface interface {
	AssignOrgRole(ctx context.Context, orgID, userID, role string) error
	RemoveOrgRole(ctx context.Context, orgID, userID, role string) error
}

type KratosClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	ListIdentities(ctx context.Context) ([]ory.Identity, error)
	CreateIdentity(ctx context.Context, email, displayName, password string) (string, error)
	SetPassword(ctx context.Context, identityID, password string) error
	DeleteIdentity(ctx context.Context, identityID string) error
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

// NotifierInterface lets admin flows drop a notification into the target's
// feed without depending on the whole notification package surface.
type NotifierInterface interface {
	Notify(ctx context.Context, n *types.Notification) (*types.Notification, error)
}

type ServiceInterface interface {
	ResetPassword(ctx context.Context, callerID, userID, newPassword string) error
	CreateUser(ctx context.Context, callerID string, req CreateUserRequest) (*CreatedUser, error)
	HardDeleteUser(ctx context.Context, callerID, userID string) error
	UnassignedUsers(ctx context.Context, callerID, orgID string) ([]types.OrgUser, error)
}
