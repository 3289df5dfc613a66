// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/storage"
	"github.com/canonical/caseflow/internal/tracing"
	"github.com/canonical/caseflow/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ListOrganizations returns the identity's visible organizations, name-ordered
// with soft-deleted rows excluded. Ordering is part of the contract: active
// selection falls back to the first element.
func (s *Service) ListOrganizations(ctx context.Context, identityID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListOrganizations")
	defer span.End()

	return s.storage.ListOrganizationsByIdentity(ctx, identityID)
}

func (s *Service) GetActiveSelection(ctx context.Context, identityID string) (*string, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.GetActiveSelection")
	defer span.End()

	settings, err := s.storage.GetUserSettings(ctx, identityID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return settings.ActiveOrgID, nil
}

func (s *Service) SaveActiveSelection(ctx context.Context, identityID string, orgID *string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.SaveActiveSelection")
	defer span.End()

	return s.storage.SetActiveOrg(ctx, identityID, orgID)
}

func (s *Service) Theme(ctx context.Context, identityID string) (*string, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.Theme")
	defer span.End()

	settings, err := s.storage.GetUserSettings(ctx, identityID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return settings.Theme, nil
}

// SetTheme overwrites the stored theme. The authoritative profile value always
// replaces the fallback, never merges with it.
func (s *Service) SetTheme(ctx context.Context, identityID, theme string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.SetTheme")
	defer span.End()

	return s.storage.SetTheme(ctx, identityID, theme)
}

// CreateOrganization creates the organization, makes the owner an admin
// member, and mirrors the role into the authorization system.
func (s *Service) CreateOrganization(ctx context.Context, name, slug, ownerID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateOrganization")
	defer span.End()

	created, err := s.storage.CreateOrganization(ctx, &types.Organization{
		Name:    name,
		Slug:    slug,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	if _, err := s.storage.AddMember(ctx, created.ID, ownerID, types.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to add owner membership: %w", err)
	}

	if err := s.authz.AssignOrgRole(ctx, created.ID, ownerID, types.RoleAdmin); err != nil {
		s.logger.Errorf("failed to assign owner role in authz: %v", err)
		return nil, fmt.Errorf("failed to assign permissions")
	}

	return created, nil
}

// DeleteOrganization soft-deletes; the row stays for audit, the tuples go.
func (s *Service) DeleteOrganization(ctx context.Context, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.DeleteOrganization")
	defer span.End()

	if err := s.storage.SoftDeleteOrganization(ctx, orgID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	if err := s.authz.DeleteOrganization(ctx, orgID); err != nil {
		// Storage already updated; tuple sweep is retried out of band.
		s.logger.Errorf("failed to delete organization from authz: %v", err)
	}

	return nil
}

func (s *Service) TransferOwnership(ctx context.Context, orgID, newOwnerID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.TransferOwnership")
	defer span.End()

	if err := s.storage.TransferOwnership(ctx, orgID, newOwnerID); err != nil {
		return fmt.Errorf("failed to transfer ownership: %w", err)
	}

	return nil
}

// ListMembers returns the organization's active membership rows.
func (s *Service) ListMembers(ctx context.Context, orgID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembersByOrgID(ctx, orgID)
}

// UpdateMemberRole moves the member to a new role and keeps the authorization
// tuples in step with the membership row.
func (s *Service) UpdateMemberRole(ctx context.Context, orgID, identityID, role string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.UpdateMemberRole")
	defer span.End()

	current, err := s.storage.GetMembership(ctx, orgID, identityID)
	if err != nil {
		return err
	}
	if current.Role == role {
		return nil
	}

	if err := s.storage.UpdateMemberRole(ctx, orgID, identityID, role); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	if err := s.authz.RemoveOrgRole(ctx, orgID, identityID, current.Role); err != nil {
		// The stale tuple widens nothing once the new one lands; swept later.
		s.logger.Errorf("failed to remove old role tuple for %s in %s: %v", identityID, orgID, err)
	}
	if err := s.authz.AssignOrgRole(ctx, orgID, identityID, role); err != nil {
		s.logger.Errorf("failed to assign role in authz: %v", err)
		return fmt.Errorf("failed to assign permissions")
	}

	return nil
}

// RemoveMember unseats the identity from the organization. Removing an
// identity that is not a member is a no-op.
func (s *Service) RemoveMember(ctx context.Context, orgID, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.RemoveMember")
	defer span.End()

	current, err := s.storage.GetMembership(ctx, orgID, identityID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load membership: %w", err)
	}

	if err := s.storage.RemoveMember(ctx, orgID, identityID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if err := s.authz.RemoveOrgRole(ctx, orgID, identityID, current.Role); err != nil {
		s.logger.Errorf("failed to remove role tuple for %s in %s: %v", identityID, orgID, err)
	}

	return nil
}
