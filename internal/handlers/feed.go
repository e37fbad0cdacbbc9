package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-social-feed/internal/logger"
	"github.com/sbilibin2017/gw-social-feed/internal/middlewares"
	"github.com/sbilibin2017/gw-social-feed/internal/models"
)

// FeedReader defines the interface that the post service must implement.
type FeedReader interface {
	GetFeed(ctx context.Context) ([]models.FeedItemDB, error)
}

// FeedPost represents one post in the feed, enriched with the owner's
// email and an is_owner flag computed against the caller's identity.
// swagger:model FeedPost
type FeedPost struct {
	// Post id
	ID string `json:"id"`

	// Owner email
	// default: john@example.com
	Email string `json:"email"`

	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`

	// Media kind, image or video
	// default: image
	FileType string `json:"file_type"`

	// Opaque media URL
	URL string `json:"url"`

	// Caption text
	Caption string `json:"caption"`

	// Whether the caller owns this post
	// default: false
	IsOwner bool `json:"is_owner"`
}

// FeedResponse represents the full reverse-chronological feed
// swagger:model FeedResponse
type FeedResponse struct {
	// Posts, newest first
	Posts []FeedPost `json:"posts"`
}

// FeedErrorResponse represents an error response for the feed
// swagger:model FeedErrorResponse
type FeedErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewFeedHandler returns an HTTP handler for listing the feed.
// @Summary Get feed
// @Description Returns all posts newest first, each joined with the owner's email and flagged with is_owner for the caller.
// @Tags posts
// @Produce json
// @Success 200 {object} handlers.FeedResponse "Feed"
// @Failure 401 {object} handlers.FeedErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.FeedErrorResponse "Internal server error"
// @Router /feed [get]
// @Security BearerAuth
func NewFeedHandler(svc FeedReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FeedErrorResponse{Error: "Unauthorized"})
			return
		}

		items, err := svc.GetFeed(ctx)
		if err != nil {
			logger.Log.Errorw("failed to get feed", "userID", user.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FeedErrorResponse{Error: "Internal server error"})
			return
		}

		posts := make([]FeedPost, 0, len(items))
		for _, item := range items {
			posts = append(posts, FeedPost{
				ID:        item.PostID.String(),
				Email:     item.Email,
				CreatedAt: item.CreatedAt,
				FileType:  item.FileType,
				URL:       item.URL,
				Caption:   item.Caption,
				IsOwner:   item.UserID == user.UserID,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FeedResponse{Posts: posts})
	}
}
