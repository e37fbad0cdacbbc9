package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-social-feed/internal/models"
	"github.com/sbilibin2017/gw-social-feed/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	createdUser := &models.UserDB{
		UserID:   userID,
		Email:    "john@example.com",
		IsActive: true,
	}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(svc *MockRegisterer)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"email":"john@example.com","password":"secret123"}`,
			setupMocks: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), "john@example.com", "secret123").Return(createdUser, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "InvalidJSON",
			body:           `{invalid`,
			setupMocks:     func(svc *MockRegisterer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "InvalidEmail",
			body:           `{"email":"not-an-email","password":"secret123"}`,
			setupMocks:     func(svc *MockRegisterer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "ShortPassword",
			body:           `{"email":"john@example.com","password":"123"}`,
			setupMocks:     func(svc *MockRegisterer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MissingFields",
			body:           `{}`,
			setupMocks:     func(svc *MockRegisterer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "DuplicateEmail",
			body: `{"email":"john@example.com","password":"secret123"}`,
			setupMocks: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), "john@example.com", "secret123").Return(nil, services.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "InternalError",
			body: `{"email":"john@example.com","password":"secret123"}`,
			setupMocks: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), "john@example.com", "secret123").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockRegisterer(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			NewRegisterHandler(svc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp RegisterResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, userID.String(), resp.ID)
				assert.Equal(t, "john@example.com", resp.Email)
				assert.True(t, resp.IsActive)
				assert.False(t, resp.IsSuperuser)
				assert.False(t, resp.IsVerified)
			}
		})
	}
}
