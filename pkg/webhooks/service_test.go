// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/trace"
	gomock "go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	tests := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(s *MockStorageInterface, l *MockLoggerInterface)
		expectedErr string
	}{
		{
			name:       "SeedsSettings",
			identityID: "identity-1",
			email:      "user@example.com",
			setupMocks: func(s *MockStorageInterface, l *MockLoggerInterface) {
				s.EXPECT().SetTheme(gomock.Any(), "identity-1", "system").Return(nil)
				l.EXPECT().Infof("provisioned settings for identity %s", "identity-1")
			},
		},
		{
			name:        "EmptyIdentityRejected",
			identityID:  "",
			email:       "user@example.com",
			setupMocks:  func(s *MockStorageInterface, l *MockLoggerInterface) {},
			expectedErr: "identity ID or email is empty",
		},
		{
			name:        "EmptyEmailRejected",
			identityID:  "identity-1",
			email:       "",
			setupMocks:  func(s *MockStorageInterface, l *MockLoggerInterface) {},
			expectedErr: "identity ID or email is empty",
		},
		{
			name:       "SettingsSeedFailureSurfaces",
			identityID: "identity-1",
			email:      "user@example.com",
			setupMocks: func(s *MockStorageInterface, l *MockLoggerInterface) {
				s.EXPECT().SetTheme(gomock.Any(), "identity-1", "system").Return(fmt.Errorf("connection reset"))
			},
			expectedErr: "failed to seed user settings: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			tt.setupMocks(mockStorage, mockLogger)

			svc := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)
			err := svc.HandleRegistration(context.Background(), tt.identityID, tt.email)

			if tt.expectedErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.expectedErr {
				t.Errorf("expected error %q, got %q", tt.expectedErr, err)
			}
		})
	}
}
