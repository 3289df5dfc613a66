// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package role resolves an identity's role within one organization from the
// authoritative membership row. Lookups fail closed: any error resolves to no
// role rather than guessing.
package role

import (
	"context"
	"errors"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/storage"
	"github.com/canonical/caseflow/internal/tracing"
	"github.com/canonical/caseflow/internal/types"
)

// Resolution carries the resolved role plus its derived capabilities so
// callers don't re-implement the role lattice.
type Resolution struct {
	Role string `json:"role"`
}

func (r Resolution) IsAdmin() bool {
	return r.Role == types.RoleAdmin
}

func (r Resolution) IsManager() bool {
	return r.Role == types.RoleManager
}

// CanManage is true for the roles allowed to mutate organization-scoped
// resources.
func (r Resolution) CanManage() bool {
	return r.Role == types.RoleAdmin || r.Role == types.RoleManager
}

var _ ResolverInterface = (*Resolver)(nil)

type Resolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	return &Resolver{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Resolve returns the identity's role in the organization. An empty identity
// or organization resolves to no role without a lookup. Missing and
// soft-deleted memberships resolve to no role; lookup failures are logged and
// also resolve to no role, with the error surfaced for callers that want to
// distinguish outage from absence.
func (r *Resolver) Resolve(ctx context.Context, identityID, orgID string) (string, error) {
	ctx, span := r.tracer.Start(ctx, "role.Resolver.Resolve")
	defer span.End()

	if identityID == "" || orgID == "" {
		return types.RoleNone, nil
	}

	membership, err := r.storage.GetMembership(ctx, orgID, identityID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.RoleNone, nil
		}
		r.logger.Errorf("failed to resolve role for %s in %s: %v", identityID, orgID, err)
		return types.RoleNone, err
	}

	if membership.DeletedAt != nil {
		return types.RoleNone, nil
	}

	return membership.Role, nil
}

func (r *Resolver) ResolveDetailed(ctx context.Context, identityID, orgID string) (Resolution, error) {
	role, err := r.Resolve(ctx, identityID, orgID)
	return Resolution{Role: role}, err
}
