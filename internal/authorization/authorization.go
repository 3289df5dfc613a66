// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/openfga"
	"github.com/canonical/caseflow/internal/tracing"
	"github.com/canonical/caseflow/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var roleRelations = map[string]string{
	types.RoleAdmin:   ADMIN_RELATION,
	types.RoleManager: MANAGER_RELATION,
	types.RoleTester:  TESTER_RELATION,
	types.RoleViewer:  VIEWER_RELATION,
}

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client openfga.OpenFGAClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignOrgRole(ctx context.Context, orgID, userID, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignOrgRole")
	defer span.End()

	relation, ok := roleRelations[role]
	if !ok {
		return fmt.Errorf("unknown role %q", role)
	}

	return a.client.WriteTuple(ctx, UserTuple(userID), relation, OrganizationTuple(orgID))
}

func (a *Authorizer) RemoveOrgRole(ctx context.Context, orgID, userID, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveOrgRole")
	defer span.End()

	relation, ok := roleRelations[role]
	if !ok {
		return fmt.Errorf("unknown role %q", role)
	}

	return a.client.DeleteTuple(ctx, UserTuple(userID), relation, OrganizationTuple(orgID))
}

func (a *Authorizer) CheckOrgAccess(ctx context.Context, orgID, userID, permission string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckOrgAccess")
	defer span.End()

	return a.Check(ctx, UserTuple(userID), permission, OrganizationTuple(orgID))
}

// DeleteOrganization sweeps every tuple attached to the organization object.
func (a *Authorizer) DeleteOrganization(ctx context.Context, orgID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteOrganization")
	defer span.End()

	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, "", "", OrganizationTuple(orgID), cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(r.Tuples) == 0 {
			break
		}
		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}
		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func NewAuthorizer(client openfga.OpenFGAClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
