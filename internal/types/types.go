// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Roles an identity can hold within one organization. At most one per
// (organization, identity) pair.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleTester  = "tester"
	RoleViewer  = "viewer"
	// RoleNone is the resolution result for missing or soft-deleted memberships.
	RoleNone = ""
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleTester, RoleViewer:
		return true
	}
	return false
}

type Organization struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Slug      string     `db:"slug" json:"slug"`
	OwnerID   string     `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

type Membership struct {
	ID         string     `db:"id" json:"id"`
	OrgID      string     `db:"org_id" json:"org_id"`
	IdentityID string     `db:"identity_id" json:"identity_id"`
	Role       string     `db:"role" json:"role"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	DeletedAt  *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// Notification is immutable once written, except ReadAt which transitions once
// from nil to non-nil and never reverts.
type Notification struct {
	ID         string     `db:"id" json:"id"`
	IdentityID string     `db:"identity_id" json:"identity_id"`
	OrgID      string     `db:"org_id" json:"org_id"`
	ProjectID  *string    `db:"project_id" json:"project_id,omitempty"`
	Type       string     `db:"type" json:"type"`
	Title      string     `db:"title" json:"title"`
	Message    *string    `db:"message" json:"message,omitempty"`
	EntityType *string    `db:"entity_type" json:"entity_type,omitempty"`
	EntityID   *string    `db:"entity_id" json:"entity_id,omitempty"`
	ReadAt     *time.Time `db:"read_at" json:"read_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// UserSettings is the server-side mirror of the per-browser persisted state:
// the active organization selection and the theme fallback.
type UserSettings struct {
	IdentityID  string    `db:"identity_id" json:"identity_id"`
	ActiveOrgID *string   `db:"active_org_id" json:"active_org_id,omitempty"`
	Theme       *string   `db:"theme" json:"theme,omitempty"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type ActivityRecord struct {
	ID        string    `db:"id" json:"id"`
	OrgID     string    `db:"org_id" json:"org_id"`
	ActorID   string    `db:"actor_id" json:"actor_id"`
	Action    string    `db:"action" json:"action"`
	Details   string    `db:"details" json:"details"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type OrgUser struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}
