// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"
)

func TestAPI_Registration(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(s *MockServiceInterface, l *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"id": "identity-1", "traits": {"email": "user@example.com"}}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), "identity-1", "user@example.com").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "InvalidBody",
			body: `not-json`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "ServiceError",
			body: `{"id": "identity-1", "traits": {"email": "user@example.com"}}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), "identity-1", "user@example.com").Return(errors.New("storage down"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			api := NewAPI(mockService, mockLogger)
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(tt.body)))

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
