// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package role

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/caseflow/internal/storage"
	"github.com/canonical/caseflow/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package role -destination ./mock_role.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package role -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package role -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package role -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestResolver_Resolve(t *testing.T) {
	identityID := "identity-123"
	orgID := "org-1"
	now := time.Now()
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		identityID   string
		orgID        string
		setupMocks   func(*MockStorageInterface, *MockLoggerInterface)
		expectedRole string
		expectedErr  error
	}{
		{
			name:       "admin membership",
			identityID: identityID,
			orgID:      orgID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, identityID).Return(&types.Membership{Role: types.RoleAdmin}, nil)
			},
			expectedRole: types.RoleAdmin,
		},
		{
			name:       "viewer membership",
			identityID: identityID,
			orgID:      orgID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, identityID).Return(&types.Membership{Role: types.RoleViewer}, nil)
			},
			expectedRole: types.RoleViewer,
		},
		{
			name:         "empty identity short-circuits",
			identityID:   "",
			orgID:        orgID,
			setupMocks:   func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectedRole: types.RoleNone,
		},
		{
			name:         "empty organization short-circuits",
			identityID:   identityID,
			orgID:        "",
			setupMocks:   func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectedRole: types.RoleNone,
		},
		{
			name:       "no membership",
			identityID: identityID,
			orgID:      orgID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, identityID).Return(nil, storage.ErrNotFound)
			},
			expectedRole: types.RoleNone,
		},
		{
			name:       "soft-deleted membership",
			identityID: identityID,
			orgID:      orgID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, identityID).Return(&types.Membership{Role: types.RoleAdmin, DeletedAt: &now}, nil)
			},
			expectedRole: types.RoleNone,
		},
		{
			name:       "lookup failure fails closed",
			identityID: identityID,
			orgID:      orgID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), orgID, identityID).Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedRole: types.RoleNone,
			expectedErr:  dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			r := NewResolver(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "role.Resolver.Resolve").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			role, err := r.Resolve(context.Background(), tc.identityID, tc.orgID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if role != tc.expectedRole {
				t.Errorf("expected role %q, got %q", tc.expectedRole, role)
			}
		})
	}
}

func TestResolution_Capabilities(t *testing.T) {
	testCases := []struct {
		role      string
		isAdmin   bool
		isManager bool
		canManage bool
	}{
		{types.RoleAdmin, true, false, true},
		{types.RoleManager, false, true, true},
		{types.RoleTester, false, false, false},
		{types.RoleViewer, false, false, false},
		{types.RoleNone, false, false, false},
	}

	for _, tc := range testCases {
		res := Resolution{Role: tc.role}
		if res.IsAdmin() != tc.isAdmin {
			t.Errorf("role %q: expected IsAdmin %v", tc.role, tc.isAdmin)
		}
		if res.IsManager() != tc.isManager {
			t.Errorf("role %q: expected IsManager %v", tc.role, tc.isManager)
		}
		if res.CanManage() != tc.canManage {
			t.Errorf("role %q: expected CanManage %v", tc.role, tc.canManage)
		}
	}
}
