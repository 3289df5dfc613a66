// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package role

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/caseflow/internal/types"
	"github.com/canonical/caseflow/pkg/authentication"
)

func TestAPI_HandleResolve(t *testing.T) {
	identityID := "identity-123"

	tests := []struct {
		name           string
		identityID     string
		setupMocks     func(*MockResolverInterface)
		expectedStatus int
		validateResp   func(*testing.T, *http.Response)
	}{
		{
			name:       "manager role with derived capabilities",
			identityID: identityID,
			setupMocks: func(mockResolver *MockResolverInterface) {
				mockResolver.EXPECT().ResolveDetailed(gomock.Any(), identityID, "org-1").Return(Resolution{Role: types.RoleManager}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result resolveResponse
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Role != types.RoleManager {
					t.Errorf("expected role manager, got %q", result.Role)
				}
				if result.IsAdmin || !result.IsManager || !result.CanManage {
					t.Errorf("unexpected capabilities: %+v", result)
				}
			},
		},
		{
			name:       "no membership resolves to empty role",
			identityID: identityID,
			setupMocks: func(mockResolver *MockResolverInterface) {
				mockResolver.EXPECT().ResolveDetailed(gomock.Any(), identityID, "org-1").Return(Resolution{Role: types.RoleNone}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result resolveResponse
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Role != types.RoleNone || result.CanManage {
					t.Errorf("expected no role, got %+v", result)
				}
			},
		},
		{
			name:           "unauthenticated",
			identityID:     "",
			setupMocks:     func(mockResolver *MockResolverInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "resolver error",
			identityID: identityID,
			setupMocks: func(mockResolver *MockResolverInterface) {
				mockResolver.EXPECT().ResolveDetailed(gomock.Any(), identityID, "org-1").Return(Resolution{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := NewMockResolverInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockResolver)

			api := NewAPI(mockResolver, mockLogger)
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/orgs/org-1/role", nil)
			if tt.identityID != "" {
				req = req.WithContext(authentication.WithUserID(req.Context(), tt.identityID))
			}
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.validateResp != nil {
				tt.validateResp(t, rr.Result())
			}
		})
	}
}
