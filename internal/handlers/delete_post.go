package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-feed/internal/logger"
	"github.com/sbilibin2017/gw-social-feed/internal/middlewares"
	"github.com/sbilibin2017/gw-social-feed/internal/services"
)

// PostDeleter defines the interface that the post service must implement.
type PostDeleter interface {
	DeletePost(ctx context.Context, postID, requesterID uuid.UUID) error
}

// DeletePostResponse represents a successful deletion response
// swagger:model DeletePostResponse
type DeletePostResponse struct {
	// Success message
	// default: Post deleted
	Message string `json:"message"`
}

// DeletePostErrorResponse represents an error response for post deletion
// swagger:model DeletePostErrorResponse
type DeletePostErrorResponse struct {
	// Error message
	// default: Post not found
	Error string `json:"error"`
}

// NewDeletePostHandler returns an HTTP handler for deleting a post.
// @Summary Delete a post
// @Description Deletes a post by id. Only the post's owner may delete it.
// @Tags posts
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} handlers.DeletePostResponse "Post deleted"
// @Failure 401 {object} handlers.DeletePostErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.DeletePostErrorResponse "Post belongs to another user"
// @Failure 404 {object} handlers.DeletePostErrorResponse "Post not found"
// @Router /posts/{id} [delete]
// @Security BearerAuth
func NewDeletePostHandler(svc PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeletePostErrorResponse{Error: "Unauthorized"})
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DeletePostErrorResponse{Error: "Post not found"})
			return
		}

		if err := svc.DeletePost(ctx, postID, user.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeletePostErrorResponse{Error: "Post not found"})
			case errors.Is(err, services.ErrPostForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(DeletePostErrorResponse{Error: "Post belongs to another user"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeletePostErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeletePostResponse{Message: "Post deleted"})
	}
}
