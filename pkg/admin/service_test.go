// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/otel/trace"
	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/caseflow/internal/storage"
	"github.com/canonical/caseflow/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_admin.go -source=./interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthzInterface
	kratos   *MockKratosClientInterface
	notifier *MockNotifierInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) serviceMocks {
	return serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		kratos:   NewMockKratosClientInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}
}

func (m serviceMocks) service() *Service {
	return NewService(m.storage, m.authz, m.kratos, m.notifier, m.tracer, m.monitor, m.logger)
}

func (m serviceMocks) expectSpan(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func activeMembership(orgID, identityID, role string) *types.Membership {
	return &types.Membership{OrgID: orgID, IdentityID: identityID, Role: role}
}

func TestService_ResetPassword(t *testing.T) {
	deleted := time.Now()

	tests := []struct {
		name        string
		setupMocks  func(m serviceMocks)
		expectedErr error
	}{
		{
			name: "CallerAdminOverTarget",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "user-1").Return(
					[]*types.Membership{activeMembership("org-1", "user-1", types.RoleTester)}, nil,
				)
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.kratos.EXPECT().SetPassword(gomock.Any(), "user-1", "s3cret-pass").Return(nil)
				m.logger.EXPECT().Infof("password reset for %s by %s", "user-1", "caller-1")
			},
		},
		{
			name: "CallerNotAdminAnywhereTargetIs",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "user-1").Return(
					[]*types.Membership{activeMembership("org-1", "user-1", types.RoleTester)}, nil,
				)
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleManager), nil,
				)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("caller-1", "admin.reset-password")
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "CallerAdminButMembershipDeleted",
			setupMocks: func(m serviceMocks) {
				caller := activeMembership("org-1", "caller-1", types.RoleAdmin)
				caller.DeletedAt = &deleted
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "user-1").Return(
					[]*types.Membership{activeMembership("org-1", "user-1", types.RoleTester)}, nil,
				)
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(caller, nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("caller-1", "admin.reset-password")
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "CallerNotMemberOfAnyTargetOrg",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "user-1").Return(
					[]*types.Membership{activeMembership("org-1", "user-1", types.RoleTester)}, nil,
				)
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(nil, storage.ErrNotFound)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("caller-1", "admin.reset-password")
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "StorageError",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "user-1").Return(nil, fmt.Errorf("connection reset"))
			},
			expectedErr: errors.New("failed to check permissions: connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.expectSpan("admin.Service.ResetPassword")
			tt.setupMocks(mocks)

			err := mocks.service().ResetPassword(context.Background(), "caller-1", "user-1", "s3cret-pass")

			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if errors.Is(tt.expectedErr, ErrForbidden) {
				if !errors.Is(err, ErrForbidden) {
					t.Errorf("expected ErrForbidden, got %v", err)
				}
				return
			}
			if err.Error() != tt.expectedErr.Error() {
				t.Errorf("expected error %q, got %q", tt.expectedErr, err)
			}
		})
	}
}

func TestService_ResetPasswordWithoutKratos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newServiceMocks(ctrl)
	mocks.expectSpan("admin.Service.ResetPassword")

	svc := NewService(mocks.storage, mocks.authz, nil, mocks.notifier, mocks.tracer, mocks.monitor, mocks.logger)

	err := svc.ResetPassword(context.Background(), "caller-1", "user-1", "s3cret-pass")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestService_CreateUser(t *testing.T) {
	req := CreateUserRequest{
		Email:       "new@example.com",
		DisplayName: "New User",
		OrgID:       "org-1",
		Role:        types.RoleTester,
	}

	tests := []struct {
		name         string
		req          CreateUserRequest
		setupMocks   func(m serviceMocks)
		expectedErr  error
		expectedLink string
	}{
		{
			name: "Success",
			req:  req,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").Return("", nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "new@example.com", "New User", gomock.Any()).Return("user-new", nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "org-1", "user-new", types.RoleTester).Return("membership-1", nil)
				m.authz.EXPECT().AssignOrgRole(gomock.Any(), "org-1", "user-new", types.RoleTester).Return(nil)
				m.storage.EXPECT().CreateActivityRecord(gomock.Any(), gomock.Cond(func(rec *types.ActivityRecord) bool {
					return rec.OrgID == "org-1" && rec.ActorID == "caller-1" && rec.Action == "user.create"
				})).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Cond(func(n *types.Notification) bool {
					return n.IdentityID == "user-new" && n.OrgID == "org-1" && n.Title == "Welcome"
				})).Return(&types.Notification{ID: "n-1"}, nil)
				m.kratos.EXPECT().CreateRecoveryLink(gomock.Any(), "user-new", "72h").Return("https://recovery.link/abc", "code-1", nil)
			},
			expectedLink: "https://recovery.link/abc",
		},
		{
			name: "ProjectSeatRecordedInAuditTrail",
			req: CreateUserRequest{
				Email:       "new@example.com",
				DisplayName: "New User",
				OrgID:       "org-1",
				Role:        types.RoleTester,
				ProjectID:   "proj-1",
				ProjectRole: types.RoleManager,
			},
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").Return("", nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "new@example.com", "New User", gomock.Any()).Return("user-new", nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "org-1", "user-new", types.RoleTester).Return("membership-1", nil)
				m.authz.EXPECT().AssignOrgRole(gomock.Any(), "org-1", "user-new", types.RoleTester).Return(nil)
				m.storage.EXPECT().CreateActivityRecord(gomock.Any(), gomock.Cond(func(rec *types.ActivityRecord) bool {
					return rec.Details == "created user new@example.com with role tester, project proj-1 role manager"
				})).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(&types.Notification{ID: "n-1"}, nil)
				m.kratos.EXPECT().CreateRecoveryLink(gomock.Any(), "user-new", "72h").Return("", "", nil)
			},
		},
		{
			name: "CallerNotAdmin",
			req:  req,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleManager), nil,
				)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("caller-1", "admin.create-user")
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "CallerNotMember",
			req:  req,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(nil, storage.ErrNotFound)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("caller-1", "admin.create-user")
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "IdentityCreationFails",
			req:  req,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").Return("", nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "new@example.com", "New User", gomock.Any()).Return("", fmt.Errorf("conflict"))
			},
			expectedErr: errors.New("failed to create identity: conflict"),
		},
		{
			name: "AuthzAssignmentFails",
			req:  req,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").Return("", nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "new@example.com", "New User", gomock.Any()).Return("user-new", nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "org-1", "user-new", types.RoleTester).Return("membership-1", nil)
				m.authz.EXPECT().AssignOrgRole(gomock.Any(), "org-1", "user-new", types.RoleTester).Return(fmt.Errorf("fga unavailable"))
				m.logger.EXPECT().Errorf("failed to assign role in authz: %v", gomock.Any())
			},
			expectedErr: errors.New("failed to assign permissions"),
		},
		{
			name: "WelcomeNotificationFailureIsNotFatal",
			req:  req,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").Return("", nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "new@example.com", "New User", gomock.Any()).Return("user-new", nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "org-1", "user-new", types.RoleTester).Return("membership-1", nil)
				m.authz.EXPECT().AssignOrgRole(gomock.Any(), "org-1", "user-new", types.RoleTester).Return(nil)
				m.storage.EXPECT().CreateActivityRecord(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("hub down"))
				m.logger.EXPECT().Errorf("failed to send welcome notification: %v", gomock.Any())
				m.kratos.EXPECT().CreateRecoveryLink(gomock.Any(), "user-new", "72h").Return("", "", nil)
			},
		},
		{
			name: "DuplicateEmailRejected",
			req:  req,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").Return("user-existing", nil)
			},
			expectedErr: ErrUserExists,
		},
		{
			name: "RecoveryLinkFailureIsNotFatal",
			req:  req,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").Return("", nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "new@example.com", "New User", gomock.Any()).Return("user-new", nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "org-1", "user-new", types.RoleTester).Return("membership-1", nil)
				m.authz.EXPECT().AssignOrgRole(gomock.Any(), "org-1", "user-new", types.RoleTester).Return(nil)
				m.storage.EXPECT().CreateActivityRecord(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(&types.Notification{ID: "n-1"}, nil)
				m.kratos.EXPECT().CreateRecoveryLink(gomock.Any(), "user-new", "72h").Return("", "", fmt.Errorf("kratos unavailable"))
				m.logger.EXPECT().Errorf("failed to create recovery link: %v", gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.expectSpan("admin.Service.CreateUser")
			tt.setupMocks(mocks)

			created, err := mocks.service().CreateUser(context.Background(), "caller-1", tt.req)

			if tt.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if errors.Is(tt.expectedErr, ErrForbidden) && !errors.Is(err, ErrForbidden) {
					t.Errorf("expected ErrForbidden, got %v", err)
				}
				if errors.Is(tt.expectedErr, ErrUserExists) && !errors.Is(err, ErrUserExists) {
					t.Errorf("expected ErrUserExists, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if created.UserID != "user-new" {
				t.Errorf("expected user ID user-new, got %q", created.UserID)
			}
			if created.Email != "new@example.com" {
				t.Errorf("expected email to round-trip, got %q", created.Email)
			}
			if len(created.TempPassword) != tempPasswordLength {
				t.Errorf("expected a %d character temp password, got %q", tempPasswordLength, created.TempPassword)
			}
			if created.RecoveryLink != tt.expectedLink {
				t.Errorf("expected recovery link %q, got %q", tt.expectedLink, created.RecoveryLink)
			}
		})
	}
}

func TestService_HardDeleteUser(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(m serviceMocks)
		expectedErr error
	}{
		{
			name: "RemovesTuplesMembershipsAndIdentity",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "caller-1").Return(
					[]*types.Membership{activeMembership("org-9", "caller-1", types.RoleAdmin)}, nil,
				)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "user-1").Return(
					&ory.Identity{Id: "user-1", Traits: map[string]interface{}{"email": "doomed@example.com", "name": "Doomed"}}, nil,
				)
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "user-1").Return(
					[]*types.Membership{
						activeMembership("org-1", "user-1", types.RoleTester),
						activeMembership("org-2", "user-1", types.RoleViewer),
					}, nil,
				)
				m.authz.EXPECT().RemoveOrgRole(gomock.Any(), "org-1", "user-1", types.RoleTester).Return(nil)
				m.authz.EXPECT().RemoveOrgRole(gomock.Any(), "org-2", "user-1", types.RoleViewer).Return(nil)
				m.storage.EXPECT().CreateActivityRecord(gomock.Any(), gomock.Cond(func(rec *types.ActivityRecord) bool {
					return rec.OrgID == "org-1" && rec.Action == "user.hard_delete" && rec.Details == "hard-deleted user doomed@example.com"
				})).Return(nil)
				m.storage.EXPECT().CreateActivityRecord(gomock.Any(), gomock.Cond(func(rec *types.ActivityRecord) bool {
					return rec.OrgID == "org-2" && rec.Action == "user.hard_delete" && rec.Details == "hard-deleted user doomed@example.com"
				})).Return(nil)
				m.storage.EXPECT().DeleteMembershipsByIdentity(gomock.Any(), "user-1").Return(nil)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), "user-1").Return(nil)
				m.logger.EXPECT().Infof("user %s hard-deleted by %s", "user-1", "caller-1")
			},
		},
		{
			name: "AuthzTupleFailureIsLoggedNotFatal",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "caller-1").Return(
					[]*types.Membership{activeMembership("org-9", "caller-1", types.RoleAdmin)}, nil,
				)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "user-1").Return(nil, fmt.Errorf("kratos unavailable"))
				m.logger.EXPECT().Errorf("failed to load identity %s: %v", "user-1", gomock.Any())
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "user-1").Return(
					[]*types.Membership{activeMembership("org-1", "user-1", types.RoleTester)}, nil,
				)
				m.authz.EXPECT().RemoveOrgRole(gomock.Any(), "org-1", "user-1", types.RoleTester).Return(fmt.Errorf("fga unavailable"))
				m.logger.EXPECT().Errorf("failed to remove authz tuple for %s in %s: %v", "user-1", "org-1", gomock.Any())
				m.storage.EXPECT().CreateActivityRecord(gomock.Any(), gomock.Cond(func(rec *types.ActivityRecord) bool {
					return rec.Details == "hard-deleted user user-1"
				})).Return(fmt.Errorf("db down"))
				m.logger.EXPECT().Errorf("failed to record activity: %v", gomock.Any())
				m.storage.EXPECT().DeleteMembershipsByIdentity(gomock.Any(), "user-1").Return(nil)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), "user-1").Return(nil)
				m.logger.EXPECT().Infof("user %s hard-deleted by %s", "user-1", "caller-1")
			},
		},
		{
			name: "CallerAdminNowhere",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "caller-1").Return(
					[]*types.Membership{activeMembership("org-9", "caller-1", types.RoleManager)}, nil,
				)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("caller-1", "admin.hard-delete-user")
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "IdentityDeletionFails",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "caller-1").Return(
					[]*types.Membership{activeMembership("org-9", "caller-1", types.RoleAdmin)}, nil,
				)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "user-1").Return(
					&ory.Identity{Id: "user-1", Traits: map[string]interface{}{"email": "doomed@example.com"}}, nil,
				)
				m.storage.EXPECT().ListMembershipsByIdentity(gomock.Any(), "user-1").Return(nil, nil)
				m.storage.EXPECT().DeleteMembershipsByIdentity(gomock.Any(), "user-1").Return(nil)
				m.kratos.EXPECT().DeleteIdentity(gomock.Any(), "user-1").Return(fmt.Errorf("kratos unavailable"))
			},
			expectedErr: errors.New("failed to delete identity: kratos unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.expectSpan("admin.Service.HardDeleteUser")
			tt.setupMocks(mocks)

			err := mocks.service().HardDeleteUser(context.Background(), "caller-1", "user-1")

			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if errors.Is(tt.expectedErr, ErrForbidden) && !errors.Is(err, ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestService_UnassignedUsers(t *testing.T) {
	identity := func(id, email, name string) ory.Identity {
		return ory.Identity{
			Id:     id,
			Traits: map[string]interface{}{"email": email, "name": name},
		}
	}
	org := func(ownerID string) *types.Organization {
		return &types.Organization{ID: "org-1", Name: "Acme", OwnerID: ownerID}
	}

	tests := []struct {
		name        string
		setupMocks  func(m serviceMocks)
		expected    []types.OrgUser
		expectedErr error
	}{
		{
			name: "ReturnsIdentitiesWithoutMemberships",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(org("owner-9"), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleManager), nil,
				)
				m.storage.EXPECT().ListActiveMemberIdentityIDs(gomock.Any()).Return([]string{"user-1", "user-2"}, nil)
				m.kratos.EXPECT().ListIdentities(gomock.Any()).Return([]ory.Identity{
					identity("user-1", "one@example.com", "One"),
					identity("user-3", "three@example.com", "Three"),
					identity("user-4", "four@example.com", "Four"),
				}, nil)
			},
			expected: []types.OrgUser{
				{UserID: "user-3", Email: "three@example.com", DisplayName: "Three"},
				{UserID: "user-4", Email: "four@example.com", DisplayName: "Four"},
			},
		},
		{
			name: "MalformedTraitsFallBackToEmptyStrings",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(org("owner-9"), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.storage.EXPECT().ListActiveMemberIdentityIDs(gomock.Any()).Return(nil, nil)
				m.kratos.EXPECT().ListIdentities(gomock.Any()).Return([]ory.Identity{
					{Id: "user-5", Traits: "not a map"},
				}, nil)
			},
			expected: []types.OrgUser{{UserID: "user-5"}},
		},
		{
			name: "ViewerForbidden",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(org("owner-9"), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleViewer), nil,
				)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("caller-1", "admin.unassigned-users")
			},
			expectedErr: ErrForbidden,
		},
		{
			// Ownership can be transferred to an identity without seating a
			// membership row; the owner still gets the listing.
			name: "OwnerWithoutMembershipAllowed",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(org("caller-1"), nil)
				m.storage.EXPECT().ListActiveMemberIdentityIDs(gomock.Any()).Return([]string{"user-1"}, nil)
				m.kratos.EXPECT().ListIdentities(gomock.Any()).Return([]ory.Identity{
					identity("user-1", "one@example.com", "One"),
					identity("user-2", "two@example.com", "Two"),
				}, nil)
			},
			expected: []types.OrgUser{
				{UserID: "user-2", Email: "two@example.com", DisplayName: "Two"},
			},
		},
		{
			name: "NonOwnerWithoutMembershipForbidden",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(org("owner-9"), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(nil, storage.ErrNotFound)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("caller-1", "admin.unassigned-users")
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "UnknownOrganizationForbidden",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(nil, storage.ErrNotFound)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("caller-1", "admin.unassigned-users")
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "KratosListFails",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(org("owner-9"), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(
					activeMembership("org-1", "caller-1", types.RoleAdmin), nil,
				)
				m.storage.EXPECT().ListActiveMemberIdentityIDs(gomock.Any()).Return(nil, nil)
				m.kratos.EXPECT().ListIdentities(gomock.Any()).Return(nil, fmt.Errorf("kratos unavailable"))
			},
			expectedErr: errors.New("failed to list identities: kratos unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.expectSpan("admin.Service.UnassignedUsers")
			tt.setupMocks(mocks)

			users, err := mocks.service().UnassignedUsers(context.Background(), "caller-1", "org-1")

			if tt.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if errors.Is(tt.expectedErr, ErrForbidden) && !errors.Is(err, ErrForbidden) {
					t.Errorf("expected ErrForbidden, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(users) != len(tt.expected) {
				t.Fatalf("expected %d users, got %d", len(tt.expected), len(users))
			}
			for i, u := range users {
				if u != tt.expected[i] {
					t.Errorf("expected user %+v, got %+v", tt.expected[i], u)
				}
			}
		})
	}
}

func TestGenerateTempPassword(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		pw, err := generateTempPassword()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(pw) != tempPasswordLength {
			t.Errorf("expected length %d, got %d", tempPasswordLength, len(pw))
		}
		if _, ok := seen[pw]; ok {
			t.Errorf("generated password %q twice", pw)
		}
		seen[pw] = struct{}{}
	}
}
