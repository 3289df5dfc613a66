// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/caseflow/internal/openfga"
)

type AuthorizerInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error)
	ValidateModel(ctx context.Context) error

	AssignOrgRole(ctx context.Context, orgID, userID, role string) error
	RemoveOrgRole(ctx context.Context, orgID, userID, role string) error
	CheckOrgAccess(ctx context.Context, orgID, userID, permission string) (bool, error)
	DeleteOrganization(ctx context.Context, orgID string) error
}
