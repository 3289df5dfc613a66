// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/caseflow/internal/types"
	"github.com/canonical/caseflow/pkg/authentication"
)

func newAdminTestAPI(t *testing.T) (*API, *MockServiceInterface, *MockLoggerInterface, *chi.Mux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	api := NewAPI(mockService, mockLogger)
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	return api, mockService, mockLogger, mux
}

func adminRequest(method, target, identityID, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if identityID != "" {
		req = req.WithContext(authentication.WithUserID(req.Context(), identityID))
	}
	return req
}

func TestAPI_HandleResetPassword(t *testing.T) {
	tests := []struct {
		name           string
		identityID     string
		body           string
		setupMocks     func(s *MockServiceInterface, l *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:       "Success",
			identityID: "caller-1",
			body:       `{"user_id": "user-1", "new_password": "s3cret-pass"}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().ResetPassword(gomock.Any(), "caller-1", "user-1", "s3cret-pass").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unauthenticated",
			body:           `{"user_id": "user-1", "new_password": "s3cret-pass"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "PasswordTooShort",
			identityID:     "caller-1",
			body:           `{"user_id": "user-1", "new_password": "short"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MissingUserID",
			identityID:     "caller-1",
			body:           `{"new_password": "s3cret-pass"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MalformedBody",
			identityID:     "caller-1",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "Forbidden",
			identityID: "caller-1",
			body:       `{"user_id": "user-1", "new_password": "s3cret-pass"}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().ResetPassword(gomock.Any(), "caller-1", "user-1", "s3cret-pass").Return(ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "NotConfiguredStaysOpaque",
			identityID: "caller-1",
			body:       `{"user_id": "user-1", "new_password": "s3cret-pass"}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().ResetPassword(gomock.Any(), "caller-1", "user-1", "s3cret-pass").Return(ErrNotConfigured)
				l.EXPECT().Error(gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, mockLogger, mux := newAdminTestAPI(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService, mockLogger)
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, adminRequest(http.MethodPost, "/api/v0/admin/reset-password", tt.identityID, tt.body))

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
			if tt.name == "NotConfiguredStaysOpaque" && strings.Contains(rr.Body.String(), "configured") {
				t.Errorf("configuration detail leaked to the caller: %s", rr.Body.String())
			}
		})
	}
}

func TestAPI_HandleCreateUser(t *testing.T) {
	validBody := `{"email": "new@example.com", "display_name": "New User", "org_id": "org-1", "role": "tester"}`

	tests := []struct {
		name           string
		identityID     string
		body           string
		setupMocks     func(s *MockServiceInterface, l *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:       "Success",
			identityID: "caller-1",
			body:       validBody,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().CreateUser(gomock.Any(), "caller-1", gomock.Cond(func(req CreateUserRequest) bool {
					return req.Email == "new@example.com" && req.OrgID == "org-1" && req.Role == types.RoleTester
				})).Return(&CreatedUser{
					UserID:       "user-new",
					Email:        "new@example.com",
					DisplayName:  "New User",
					Role:         types.RoleTester,
					TempPassword: "Temp!Pass2345678",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "InvalidEmail",
			identityID:     "caller-1",
			body:           `{"email": "not-an-email", "display_name": "New User", "org_id": "org-1", "role": "tester"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "ProjectWithoutProjectRoleRejected",
			identityID:     "caller-1",
			body:           `{"email": "new@example.com", "display_name": "New User", "org_id": "org-1", "role": "tester", "project_id": "proj-1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "UnknownRoleRejected",
			identityID:     "caller-1",
			body:           `{"email": "new@example.com", "display_name": "New User", "org_id": "org-1", "role": "superuser"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "UnknownProjectRoleRejected",
			identityID:     "caller-1",
			body:           `{"email": "new@example.com", "display_name": "New User", "org_id": "org-1", "role": "tester", "project_id": "proj-1", "project_role": "owner"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "Forbidden",
			identityID: "caller-1",
			body:       validBody,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().CreateUser(gomock.Any(), "caller-1", gomock.Any()).Return(nil, ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "DuplicateEmailConflicts",
			identityID: "caller-1",
			body:       validBody,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().CreateUser(gomock.Any(), "caller-1", gomock.Any()).Return(nil, ErrUserExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:       "ServiceError",
			identityID: "caller-1",
			body:       validBody,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().CreateUser(gomock.Any(), "caller-1", gomock.Any()).Return(nil, fmt.Errorf("kratos unavailable"))
				l.EXPECT().Errorf("%s: %v", "failed to create user", gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, mockLogger, mux := newAdminTestAPI(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService, mockLogger)
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, adminRequest(http.MethodPost, "/api/v0/admin/users", tt.identityID, tt.body))

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
			if tt.expectedStatus == http.StatusCreated {
				var created CreatedUser
				if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
					t.Fatalf("expected a created user payload, got %v", err)
				}
				if created.TempPassword == "" {
					t.Error("expected the temp password in the response")
				}
			}
		})
	}
}

func TestAPI_HandleHardDeleteUser(t *testing.T) {
	_, mockService, _, mux := newAdminTestAPI(t)
	mockService.EXPECT().HardDeleteUser(gomock.Any(), "caller-1", "user-1").Return(nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, adminRequest(http.MethodPost, "/api/v0/admin/hard-delete-user", "caller-1", `{"user_id": "user-1"}`))

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAPI_HandleHardDeleteUserMissingTarget(t *testing.T) {
	_, _, _, mux := newAdminTestAPI(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, adminRequest(http.MethodPost, "/api/v0/admin/hard-delete-user", "caller-1", `{}`))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAPI_HandleUnassignedUsers(t *testing.T) {
	_, mockService, _, mux := newAdminTestAPI(t)
	mockService.EXPECT().UnassignedUsers(gomock.Any(), "caller-1", "org-1").Return([]types.OrgUser{
		{UserID: "user-3", Email: "three@example.com", DisplayName: "Three"},
	}, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, adminRequest(http.MethodPost, "/api/v0/admin/unassigned-users", "caller-1", `{"org_id": "org-1"}`))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var body struct {
		Users []types.OrgUser `json:"users"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a users payload, got %v", err)
	}
	if len(body.Users) != 1 || body.Users[0].UserID != "user-3" {
		t.Errorf("expected the unassigned user, got %+v", body.Users)
	}
}
