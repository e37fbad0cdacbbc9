package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-social-feed/internal/middlewares"
	"github.com/sbilibin2017/gw-social-feed/internal/models"
)

func TestFeedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	otherID := uuid.New()
	caller := &models.UserDB{UserID: callerID, Email: "me@example.com", IsActive: true}

	now := time.Now().UTC().Truncate(time.Second)
	items := []models.FeedItemDB{
		{
			PostID:    uuid.New(),
			UserID:    callerID,
			Email:     "me@example.com",
			Caption:   "mine",
			URL:       "/media/a.jpg",
			FileType:  models.MediaTypeImage,
			CreatedAt: now,
		},
		{
			PostID:    uuid.New(),
			UserID:    otherID,
			Email:     "other@example.com",
			Caption:   "theirs",
			URL:       "/media/b.mp4",
			FileType:  models.MediaTypeVideo,
			CreatedAt: now.Add(-time.Hour),
		},
	}

	t.Run("Success", func(t *testing.T) {
		svc := NewMockFeedReader(ctrl)
		svc.EXPECT().GetFeed(gomock.Any()).Return(items, nil)

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), caller))
		rec := httptest.NewRecorder()

		NewFeedHandler(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp FeedResponse
		err := json.NewDecoder(rec.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp.Posts, 2)

		assert.True(t, resp.Posts[0].IsOwner)
		assert.Equal(t, "me@example.com", resp.Posts[0].Email)
		assert.Equal(t, "mine", resp.Posts[0].Caption)

		assert.False(t, resp.Posts[1].IsOwner)
		assert.Equal(t, "other@example.com", resp.Posts[1].Email)
		assert.Equal(t, models.MediaTypeVideo, resp.Posts[1].FileType)
	})

	t.Run("EmptyFeed", func(t *testing.T) {
		svc := NewMockFeedReader(ctrl)
		svc.EXPECT().GetFeed(gomock.Any()).Return([]models.FeedItemDB{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), caller))
		rec := httptest.NewRecorder()

		NewFeedHandler(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp FeedResponse
		err := json.NewDecoder(rec.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Empty(t, resp.Posts)
	})

	t.Run("ServiceError", func(t *testing.T) {
		svc := NewMockFeedReader(ctrl)
		svc.EXPECT().GetFeed(gomock.Any()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), caller))
		rec := httptest.NewRecorder()

		NewFeedHandler(svc)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		svc := NewMockFeedReader(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		rec := httptest.NewRecorder()

		NewFeedHandler(svc)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
