// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package role

import (
	"context"

	"github.com/canonical/caseflow/internal/types"
)

type StorageInterface interface {
	GetMembership(ctx context.Context, orgID, identityID string) (*types.Membership, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, identityID, orgID string) (string, error)
	ResolveDetailed(ctx context.Context, identityID, orgID string) (Resolution, error)
}
