// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package admin exposes the privileged user-management operations. Every
// operation re-derives the caller's authority from membership rows; nothing
// here trusts claims carried on the request.
package admin

import (
	"context"
	"errors"
	"fmt"

	ory "github.com/ory/client-go"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/storage"
	"github.com/canonical/caseflow/internal/tracing"
	"github.com/canonical/caseflow/internal/types"
)

var (
	// ErrForbidden means the caller's memberships do not grant the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotConfigured means a required backing service is not wired, which
	// is an operator problem, not a caller problem.
	ErrNotConfigured = errors.New("admin operations not configured")
	// ErrUserExists means the email already resolves to a Kratos identity.
	ErrUserExists = errors.New("a user with this email already exists")
)

// recoveryLinkLifetime bounds how long the onboarding recovery link stays
// usable before the temp password is the only way in.
const recoveryLinkLifetime = "72h"

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required"`
	OrgID       string `json:"org_id" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=admin manager tester viewer"`
	ProjectID   string `json:"project_id" validate:"omitempty"`
	ProjectRole string `json:"project_role" validate:"required_with=ProjectID,omitempty,oneof=admin manager tester viewer"`
}

type CreatedUser struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	Role         string `json:"role"`
	TempPassword string `json:"temp_password"`
	RecoveryLink string `json:"recovery_link,omitempty"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	authz    AuthzInterface
	kratos   KratosClientInterface
	notifier NotifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	kratos KratosClientInterface,
	notifier NotifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		kratos:   kratos,
		notifier: notifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// adminOverTarget reports whether the caller holds admin in at least one
// organization the target belongs to.
func (s *Service) adminOverTarget(ctx context.Context, callerID, targetID string) (bool, error) {
	memberships, err := s.storage.ListMembershipsByIdentity(ctx, targetID)
	if err != nil {
		return false, err
	}

	for _, m := range memberships {
		if m.DeletedAt != nil {
			continue
		}
		caller, err := s.storage.GetMembership(ctx, m.OrgID, callerID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return false, err
		}
		if caller.DeletedAt == nil && caller.Role == types.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

// adminAnywhere reports whether the caller holds admin in any organization.
func (s *Service) adminAnywhere(ctx context.Context, callerID string) (bool, error) {
	memberships, err := s.storage.ListMembershipsByIdentity(ctx, callerID)
	if err != nil {
		return false, err
	}
	for _, m := range memberships {
		if m.DeletedAt == nil && m.Role == types.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

// ResetPassword overwrites the target's credentials. The caller must be an
// organization admin over the target somewhere; password length is validated
// at the edge.
func (s *Service) ResetPassword(ctx context.Context, callerID, userID, newPassword string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ResetPassword")
	defer span.End()

	if s.kratos == nil {
		return ErrNotConfigured
	}

	allowed, err := s.adminOverTarget(ctx, callerID, userID)
	if err != nil {
		return fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		s.logger.Security().AuthzFailure(callerID, "admin.reset-password")
		return ErrForbidden
	}

	if err := s.kratos.SetPassword(ctx, userID, newPassword); err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}

	s.logger.Infof("password reset for %s by %s", userID, callerID)
	return nil
}

// CreateUser provisions the identity with a generated temporary password and
// seats it in the organization. The temp password is returned exactly once.
func (s *Service) CreateUser(ctx context.Context, callerID string, req CreateUserRequest) (*CreatedUser, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateUser")
	defer span.End()

	if s.kratos == nil {
		return nil, ErrNotConfigured
	}

	caller, err := s.storage.GetMembership(ctx, req.OrgID, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(callerID, "admin.create-user")
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}
	if caller.DeletedAt != nil || caller.Role != types.RoleAdmin {
		s.logger.Security().AuthzFailure(callerID, "admin.create-user")
		return nil, ErrForbidden
	}

	existingID, err := s.kratos.GetIdentityIDByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existingID != "" {
		return nil, ErrUserExists
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, err
	}

	userID, err := s.kratos.CreateIdentity(ctx, req.Email, req.DisplayName, tempPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	if _, err := s.storage.AddMember(ctx, req.OrgID, userID, req.Role); err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}
	if err := s.authz.AssignOrgRole(ctx, req.OrgID, userID, req.Role); err != nil {
		s.logger.Errorf("failed to assign role in authz: %v", err)
		return nil, fmt.Errorf("failed to assign permissions")
	}

	details := fmt.Sprintf("created user %s with role %s", req.Email, req.Role)
	if req.ProjectID != "" {
		// Project seats are tracked in the audit trail; authorization stays
		// organization-scoped.
		details = fmt.Sprintf("%s, project %s role %s", details, req.ProjectID, req.ProjectRole)
	}
	if err := s.storage.CreateActivityRecord(ctx, &types.ActivityRecord{
		OrgID:   req.OrgID,
		ActorID: callerID,
		Action:  "user.create",
		Details: details,
	}); err != nil {
		s.logger.Errorf("failed to record activity: %v", err)
	}

	if s.notifier != nil {
		welcome := "Your account was created. Change the temporary password on first login."
		if _, err := s.notifier.Notify(ctx, &types.Notification{
			IdentityID: userID,
			OrgID:      req.OrgID,
			Type:       "system",
			Title:      "Welcome",
			Message:    &welcome,
		}); err != nil {
			s.logger.Errorf("failed to send welcome notification: %v", err)
		}
	}

	recoveryLink, _, err := s.kratos.CreateRecoveryLink(ctx, userID, recoveryLinkLifetime)
	if err != nil {
		// The temp password still unlocks the account.
		s.logger.Errorf("failed to create recovery link: %v", err)
	}

	return &CreatedUser{
		UserID:       userID,
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		Role:         req.Role,
		TempPassword: tempPassword,
		RecoveryLink: recoveryLink,
	}, nil
}

// HardDeleteUser removes the identity permanently: memberships, authz tuples
// and the Kratos identity. There is no soft-delete path here.
func (s *Service) HardDeleteUser(ctx context.Context, callerID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.HardDeleteUser")
	defer span.End()

	if s.kratos == nil {
		return ErrNotConfigured
	}

	allowed, err := s.adminAnywhere(ctx, callerID)
	if err != nil {
		return fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		s.logger.Security().AuthzFailure(callerID, "admin.hard-delete-user")
		return ErrForbidden
	}

	// The audit trail should name the user, not a soon-to-dangle UUID.
	target := userID
	if identity, err := s.kratos.GetIdentity(ctx, userID); err != nil {
		s.logger.Errorf("failed to load identity %s: %v", userID, err)
	} else if email := traitString(*identity, "email"); email != "" {
		target = email
	}

	memberships, err := s.storage.ListMembershipsByIdentity(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list memberships: %w", err)
	}
	for _, m := range memberships {
		if err := s.authz.RemoveOrgRole(ctx, m.OrgID, userID, m.Role); err != nil {
			s.logger.Errorf("failed to remove authz tuple for %s in %s: %v", userID, m.OrgID, err)
		}
		if err := s.storage.CreateActivityRecord(ctx, &types.ActivityRecord{
			OrgID:   m.OrgID,
			ActorID: callerID,
			Action:  "user.hard_delete",
			Details: fmt.Sprintf("hard-deleted user %s", target),
		}); err != nil {
			s.logger.Errorf("failed to record activity: %v", err)
		}
	}

	if err := s.storage.DeleteMembershipsByIdentity(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}

	if err := s.kratos.DeleteIdentity(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	s.logger.Infof("user %s hard-deleted by %s", userID, callerID)
	return nil
}

// UnassignedUsers lists identities that hold no active membership in any
// organization. The caller needs admin or manager in the asking organization,
// or has to own it. Ownership can outlive the membership row after a
// transfer, so the owner check does not go through memberships.
func (s *Service) UnassignedUsers(ctx context.Context, callerID, orgID string) ([]types.OrgUser, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UnassignedUsers")
	defer span.End()

	if s.kratos == nil {
		return nil, ErrNotConfigured
	}

	org, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(callerID, "admin.unassigned-users")
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}

	allowed := org.DeletedAt == nil && org.OwnerID == callerID
	if !allowed {
		caller, err := s.storage.GetMembership(ctx, orgID, callerID)
		switch {
		case err == nil:
			allowed = caller.DeletedAt == nil && (caller.Role == types.RoleAdmin || caller.Role == types.RoleManager)
		case errors.Is(err, storage.ErrNotFound):
		default:
			return nil, fmt.Errorf("failed to check permissions: %w", err)
		}
	}
	if !allowed {
		s.logger.Security().AuthzFailure(callerID, "admin.unassigned-users")
		return nil, ErrForbidden
	}

	assignedIDs, err := s.storage.ListActiveMemberIdentityIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	assigned := make(map[string]struct{}, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = struct{}{}
	}

	identities, err := s.kratos.ListIdentities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	var out []types.OrgUser
	for _, identity := range identities {
		if _, ok := assigned[identity.Id]; ok {
			continue
		}
		out = append(out, types.OrgUser{
			UserID:      identity.Id,
			Email:       traitString(identity, "email"),
			DisplayName: traitString(identity, "name"),
		})
	}
	return out, nil
}

func traitString(identity ory.Identity, key string) string {
	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return ""
	}
	if v, ok := traits[key].(string); ok {
		return v
	}
	return ""
}
