// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	"github.com/canonical/caseflow/internal/types"
)

// IdentityState mirrors the lifecycle of identity resolution: a load must not
// conclude while the identity is still being resolved.
type IdentityState int

const (
	IdentityPending IdentityState = iota
	IdentityAbsent
	IdentityPresent
)

type Identity struct {
	ID    string
	State IdentityState
}

// IdentityProviderInterface reports the current identity snapshot. Readers
// call it on every load so that identity changes take effect on refresh.
type IdentityProviderInterface interface {
	Identity() Identity
}

type ServiceInterface interface {
	ListOrganizations(ctx context.Context, identityID string) ([]*types.Organization, error)
	GetActiveSelection(ctx context.Context, identityID string) (*string, error)
	SaveActiveSelection(ctx context.Context, identityID string, orgID *string) error
	Theme(ctx context.Context, identityID string) (*string, error)
	SetTheme(ctx context.Context, identityID, theme string) error
	CreateOrganization(ctx context.Context, name, slug, ownerID string) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, orgID string) error
	TransferOwnership(ctx context.Context, orgID, newOwnerID string) error
	ListMembers(ctx context.Context, orgID string) ([]*types.Membership, error)
	UpdateMemberRole(ctx context.Context, orgID, identityID, role string) error
	RemoveMember(ctx context.Context, orgID, identityID string) error
}

type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	ListOrganizationsByIdentity(ctx context.Context, identityID string) ([]*types.Organization, error)
	SoftDeleteOrganization(ctx context.Context, id string) error
	TransferOwnership(ctx context.Context, orgID, newOwnerID string) error
	AddMember(ctx context.Context, orgID, identityID, role string) (string, error)
	GetMembership(ctx context.Context, orgID, identityID string) (*types.Membership, error)
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Membership, error)
	UpdateMemberRole(ctx context.Context, orgID, identityID, role string) error
	RemoveMember(ctx context.Context, orgID, identityID string) error
	GetUserSettings(ctx context.Context, identityID string) (*types.UserSettings, error)
	SetActiveOrg(ctx context.Context, identityID string, orgID *string) error
	SetTheme(ctx context.Context, identityID string, theme string) error
}

// RoleCheckerInterface is the slice of the role resolver the handlers need
// for gating mutations.
type RoleCheckerInterface interface {
	Resolve(ctx context.Context, identityID, orgID string) (string, error)
}

type AuthzInterface interface {
	AssignOrgRole(ctx context.Context, orgID, userID, role string) error
	RemoveOrgRole(ctx context.Context, orgID, userID, role string) error
	DeleteOrganization(ctx context.Context, orgID string) error
}
