// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/caseflow/internal/db"
	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/tracing"
	"github.com/canonical/caseflow/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var created types.Organization
	err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "slug", "owner_id").
		Values(id.String(), o.Name, o.Slug, o.OwnerID).
		Suffix("RETURNING id, name, slug, owner_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Slug, &created.OwnerID, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "owner_id", "created_at", "deleted_at").
		From("organizations").
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Slug, &o.OwnerID, &o.CreatedAt, &o.DeletedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

// ListOrganizationsByIdentity returns all organizations the identity is an
// active member of, excluding soft-deleted rows on both sides, ordered by name.
func (s *Storage) ListOrganizationsByIdentity(ctx context.Context, identityID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationsByIdentity")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("o.id", "o.name", "o.slug", "o.owner_id", "o.created_at").
		From("organizations o").
		Join("memberships m ON o.id = m.org_id").
		Where(sq.Eq{"m.identity_id": identityID, "m.deleted_at": nil, "o.deleted_at": nil}).
		OrderBy("o.name ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &o.OwnerID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

func (s *Storage) SoftDeleteOrganization(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteOrganization")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("organizations").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete organization: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) TransferOwnership(ctx context.Context, orgID, newOwnerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.TransferOwnership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("organizations").
		Set("owner_id", newOwnerID).
		Where(sq.Eq{"id": orgID, "deleted_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to transfer ownership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) AddMember(ctx context.Context, orgID, identityID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "org_id", "identity_id", "role").
		Values(id.String(), orgID, identityID, role).
		ExecContext(ctx)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) GetMembership(ctx context.Context, orgID, identityID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "org_id", "identity_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"org_id": orgID, "identity_id": identityID, "deleted_at": nil}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.OrgID, &m.IdentityID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, orgID, identityID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", role).
		Where(sq.Eq{"org_id": orgID, "identity_id": identityID, "deleted_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) RemoveMember(ctx context.Context, orgID, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"org_id": orgID, "identity_id": identityID, "deleted_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByOrgID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "org_id", "identity_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"org_id": orgID, "deleted_at": nil}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.OrgID, &m.IdentityID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) ListMembershipsByIdentity(ctx context.Context, identityID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByIdentity")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "org_id", "identity_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"identity_id": identityID, "deleted_at": nil}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.OrgID, &m.IdentityID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

// ListActiveMemberIdentityIDs returns the distinct identities that hold at
// least one active membership in any organization.
func (s *Storage) ListActiveMemberIdentityIDs(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveMemberIdentityIDs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT identity_id").
		From("memberships").
		Where(sq.Eq{"deleted_at": nil}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list member identities: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan identity id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// DeleteMembershipsByIdentity hard-deletes every membership row for an
// identity. Used only by the privileged hard-delete-user flow.
func (s *Storage) DeleteMembershipsByIdentity(ctx context.Context, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembershipsByIdentity")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"identity_id": identityID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}

	return nil
}

func (s *Storage) CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotification")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate notification ID: %w", err)
	}

	var created types.Notification
	err = s.db.Statement(ctx).
		Insert("notifications").
		Columns("id", "identity_id", "org_id", "project_id", "type", "title", "message", "entity_type", "entity_id").
		Values(id.String(), n.IdentityID, n.OrgID, n.ProjectID, n.Type, n.Title, n.Message, n.EntityType, n.EntityID).
		Suffix("RETURNING id, identity_id, org_id, project_id, type, title, message, entity_type, entity_id, read_at, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.IdentityID, &created.OrgID, &created.ProjectID, &created.Type, &created.Title,
			&created.Message, &created.EntityType, &created.EntityID, &created.ReadAt, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return &created, nil
}

// ListNotifications returns up to limit notifications for the exact
// (identity, organization) pair, newest first.
func (s *Storage) ListNotifications(ctx context.Context, identityID, orgID string, limit uint64) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotifications")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "identity_id", "org_id", "project_id", "type", "title", "message", "entity_type", "entity_id", "read_at", "created_at").
		From("notifications").
		Where(sq.Eq{"identity_id": identityID, "org_id": orgID}).
		OrderBy("created_at DESC").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*types.Notification
	for rows.Next() {
		var n types.Notification
		if err := rows.Scan(&n.ID, &n.IdentityID, &n.OrgID, &n.ProjectID, &n.Type, &n.Title,
			&n.Message, &n.EntityType, &n.EntityID, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notifications, nil
}

// MarkNotificationRead sets read_at once. Already-read notifications are left
// untouched and return a nil timestamp, making the operation idempotent.
func (s *Storage) MarkNotificationRead(ctx context.Context, identityID, id string) (*time.Time, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationRead")
	defer span.End()

	var readAt time.Time
	err := s.db.Statement(ctx).
		Update("notifications").
		Set("read_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "identity_id": identityID, "read_at": nil}).
		Suffix("RETURNING read_at").
		QueryRowContext(ctx).
		Scan(&readAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing or already read; no transition happened.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return &readAt, nil
}

// MarkAllNotificationsRead stamps every unread notification of the pair in one
// statement and returns the timestamp used.
func (s *Storage) MarkAllNotificationsRead(ctx context.Context, identityID, orgID string) (time.Time, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkAllNotificationsRead")
	defer span.End()

	now := time.Now().UTC()
	_, err := s.db.Statement(ctx).
		Update("notifications").
		Set("read_at", now).
		Where(sq.Eq{"identity_id": identityID, "org_id": orgID, "read_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	return now, nil
}

func (s *Storage) GetUserSettings(ctx context.Context, identityID string) (*types.UserSettings, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserSettings")
	defer span.End()

	var us types.UserSettings
	err := s.db.Statement(ctx).
		Select("identity_id", "active_org_id", "theme", "updated_at").
		From("user_settings").
		Where(sq.Eq{"identity_id": identityID}).
		QueryRowContext(ctx).
		Scan(&us.IdentityID, &us.ActiveOrgID, &us.Theme, &us.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}

	return &us, nil
}

// SetActiveOrg persists (or clears, when orgID is nil) the identity's active
// organization selection.
func (s *Storage) SetActiveOrg(ctx context.Context, identityID string, orgID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetActiveOrg")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_settings").
		Columns("identity_id", "active_org_id").
		Values(identityID, orgID).
		Suffix("ON CONFLICT (identity_id) DO UPDATE SET active_org_id = EXCLUDED.active_org_id, updated_at = now()").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set active organization: %w", err)
	}

	return nil
}

func (s *Storage) SetTheme(ctx context.Context, identityID string, theme string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTheme")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_settings").
		Columns("identity_id", "theme").
		Values(identityID, theme).
		Suffix("ON CONFLICT (identity_id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = now()").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	return nil
}

func (s *Storage) CreateActivityRecord(ctx context.Context, rec *types.ActivityRecord) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateActivityRecord")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate activity ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("activity_log").
		Columns("id", "org_id", "actor_id", "action", "details").
		Values(id.String(), rec.OrgID, rec.ActorID, rec.Action, rec.Details).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert activity record: %w", err)
	}

	return nil
}
