package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-social-feed/internal/middlewares"
	"github.com/sbilibin2017/gw-social-feed/internal/models"
	"github.com/sbilibin2017/gw-social-feed/internal/services"
)

func newDeleteRequest(id string, user *models.UserDB) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/posts/"+id, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if user != nil {
		ctx = middlewares.SetUserToContext(ctx, user)
	}

	return req.WithContext(ctx)
}

func TestDeletePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	postID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "john@example.com", IsActive: true}

	tests := []struct {
		name           string
		postID         string
		setupMocks     func(svc *MockPostDeleter)
		expectedStatus int
	}{
		{
			name:   "Success",
			postID: postID.String(),
			setupMocks: func(svc *MockPostDeleter) {
				svc.EXPECT().DeletePost(gomock.Any(), postID, userID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "MalformedID",
			postID:         "not-a-uuid",
			setupMocks:     func(svc *MockPostDeleter) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "NotFound",
			postID: postID.String(),
			setupMocks: func(svc *MockPostDeleter) {
				svc.EXPECT().DeletePost(gomock.Any(), postID, userID).Return(services.ErrPostNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Forbidden",
			postID: postID.String(),
			setupMocks: func(svc *MockPostDeleter) {
				svc.EXPECT().DeletePost(gomock.Any(), postID, userID).Return(services.ErrPostForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "InternalError",
			postID: postID.String(),
			setupMocks: func(svc *MockPostDeleter) {
				svc.EXPECT().DeletePost(gomock.Any(), postID, userID).Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockPostDeleter(ctrl)
			tt.setupMocks(svc)

			req := newDeleteRequest(tt.postID, user)
			rec := httptest.NewRecorder()

			NewDeletePostHandler(svc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp DeletePostResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "Post deleted", resp.Message)
			}
		})
	}
}

func TestDeletePostHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPostDeleter(ctrl)

	req := newDeleteRequest(uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	NewDeletePostHandler(svc)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
