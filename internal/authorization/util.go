// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	ADMIN_RELATION   = "admin"
	MANAGER_RELATION = "manager"
	TESTER_RELATION  = "tester"
	VIEWER_RELATION  = "viewer"

	CAN_MANAGE_PERMISSION = "can_manage"
	CAN_VIEW_PERMISSION   = "can_view"
)

func UserTuple(userID string) string {
	return "user:" + userID
}

func OrganizationTuple(orgID string) string {
	return "organization:" + orgID
}
