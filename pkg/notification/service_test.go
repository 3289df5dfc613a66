// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/caseflow/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package notification -destination ./mock_notification.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notification -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notification -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notification -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_ListNotifications(t *testing.T) {
	identityID := "identity-123"
	orgID := "org-1"
	expected := []*types.Notification{
		{ID: "n-1", IdentityID: identityID, OrgID: orgID},
		{ID: "n-2", IdentityID: identityID, OrgID: orgID},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockHub := NewMockHubInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	s := NewService(mockStorage, mockHub, 50, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "notification.Service.ListNotifications").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListNotifications(gomock.Any(), identityID, orgID, uint64(50)).Return(expected, nil)

	got, err := s.ListNotifications(context.Background(), identityID, orgID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(got))
	}
}

func TestService_MarkRead(t *testing.T) {
	identityID := "identity-123"
	now := time.Now().UTC()
	dbErr := errors.New("db error")

	testCases := []struct {
		name           string
		setupMocks     func(*MockStorageInterface, *MockHubInterface)
		expectedReadAt *time.Time
		wantErr        bool
	}{
		{
			name: "first read publishes an update",
			setupMocks: func(mockStorage *MockStorageInterface, mockHub *MockHubInterface) {
				mockStorage.EXPECT().MarkNotificationRead(gomock.Any(), identityID, "n-1").Return(&now, nil)
				mockHub.EXPECT().Publish(identityID, gomock.Cond(func(ev Event) bool {
					return ev.Kind == EventUpdate && ev.Notification.ID == "n-1" && ev.Notification.ReadAt != nil
				}))
			},
			expectedReadAt: &now,
		},
		{
			name: "already read is a silent no-op",
			setupMocks: func(mockStorage *MockStorageInterface, mockHub *MockHubInterface) {
				mockStorage.EXPECT().MarkNotificationRead(gomock.Any(), identityID, "n-1").Return(nil, nil)
			},
			expectedReadAt: nil,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockHub *MockHubInterface) {
				mockStorage.EXPECT().MarkNotificationRead(gomock.Any(), identityID, "n-1").Return(nil, dbErr)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockHub := NewMockHubInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockHub, 50, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "notification.Service.MarkRead").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockHub)

			readAt, err := s.MarkRead(context.Background(), identityID, "n-1")

			if tc.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (readAt == nil) != (tc.expectedReadAt == nil) {
				t.Errorf("expected readAt %v, got %v", tc.expectedReadAt, readAt)
			}
		})
	}
}

func TestService_Notify(t *testing.T) {
	identityID := "identity-123"
	n := &types.Notification{IdentityID: identityID, OrgID: "org-1", Type: "system", Title: "Welcome"}
	created := &types.Notification{ID: "n-1", IdentityID: identityID, OrgID: "org-1", Type: "system", Title: "Welcome"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockHubInterface)
		wantErr    bool
	}{
		{
			name: "persists then publishes insert",
			setupMocks: func(mockStorage *MockStorageInterface, mockHub *MockHubInterface) {
				mockStorage.EXPECT().CreateNotification(gomock.Any(), n).Return(created, nil)
				mockHub.EXPECT().Publish(identityID, gomock.Cond(func(ev Event) bool {
					return ev.Kind == EventInsert && ev.Notification.ID == "n-1"
				}))
			},
		},
		{
			name: "storage error suppresses publish",
			setupMocks: func(mockStorage *MockStorageInterface, mockHub *MockHubInterface) {
				mockStorage.EXPECT().CreateNotification(gomock.Any(), n).Return(nil, dbErr)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockHub := NewMockHubInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockHub, 50, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "notification.Service.Notify").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockHub)

			got, err := s.Notify(context.Background(), n)

			if tc.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != "n-1" {
				t.Errorf("expected created notification, got %+v", got)
			}
		})
	}
}
