package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-social-feed/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		form           url.Values
		setupMocks     func(svc *MockLoginer)
		expectedStatus int
		expectedToken  string
	}{
		{
			name: "Success",
			form: url.Values{
				"username": {"john@example.com"},
				"password": {"secret123"},
			},
			setupMocks: func(svc *MockLoginer) {
				svc.EXPECT().Login(gomock.Any(), "john@example.com", "secret123").Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "jwt-token",
		},
		{
			name: "MissingUsername",
			form: url.Values{
				"password": {"secret123"},
			},
			setupMocks:     func(svc *MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "MissingPassword",
			form: url.Values{
				"username": {"john@example.com"},
			},
			setupMocks:     func(svc *MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "InvalidCredentials",
			form: url.Values{
				"username": {"john@example.com"},
				"password": {"wrongpassword"},
			},
			setupMocks: func(svc *MockLoginer) {
				svc.EXPECT().Login(gomock.Any(), "john@example.com", "wrongpassword").Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "InternalError",
			form: url.Values{
				"username": {"john@example.com"},
				"password": {"secret123"},
			},
			setupMocks: func(svc *MockLoginer) {
				svc.EXPECT().Login(gomock.Any(), "john@example.com", "secret123").Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockLoginer(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/jwt/login", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			NewLoginHandler(svc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp LoginResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, resp.AccessToken)
				assert.Equal(t, "bearer", resp.TokenType)
			}
		})
	}
}
