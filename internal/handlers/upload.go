package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-feed/internal/logger"
	"github.com/sbilibin2017/gw-social-feed/internal/middlewares"
	"github.com/sbilibin2017/gw-social-feed/internal/models"
	"github.com/sbilibin2017/gw-social-feed/internal/services"
)

// maxUploadBytes bounds the in-memory part of a multipart upload.
const maxUploadBytes = 32 << 20

// PostCreator defines the interface that the post service must implement.
type PostCreator interface {
	CreatePost(ctx context.Context, userID uuid.UUID, fileName string, content io.Reader, caption string) (*models.PostDB, error)
}

// UploadResponse represents the created post summary
// swagger:model UploadResponse
type UploadResponse struct {
	// Post id
	ID string `json:"id"`

	// Opaque media URL
	URL string `json:"url"`

	// Media kind, image or video
	// default: image
	FileType string `json:"file_type"`

	// Caption text
	Caption string `json:"caption"`

	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// UploadErrorResponse represents an error response for upload
// swagger:model UploadErrorResponse
type UploadErrorResponse struct {
	// Error message
	// default: Invalid or unsupported media file
	Error string `json:"error"`
}

// NewUploadHandler returns an HTTP handler for creating a post from an
// uploaded media file plus an optional caption.
// @Summary Upload a post
// @Description Accepts a multipart media file and optional caption, stores the media, and creates a post owned by the caller.
// @Tags posts
// @Accept mpfd
// @Produce json
// @Param file formData file true "Media file"
// @Param caption formData string false "Caption"
// @Success 200 {object} handlers.UploadResponse "Created post"
// @Failure 400 {object} handlers.UploadErrorResponse "Invalid or unsupported media file"
// @Failure 401 {object} handlers.UploadErrorResponse "Unauthorized"
// @Router /upload [post]
// @Security BearerAuth
func NewUploadHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			logger.Log.Errorw("failed to parse multipart form", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Invalid or unsupported media file"})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.Log.Errorw("missing media file", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Invalid or unsupported media file"})
			return
		}
		defer file.Close()

		caption := r.FormValue("caption")

		post, err := svc.CreatePost(ctx, user.UserID, header.Filename, file, caption)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnsupportedMediaType),
				errors.Is(err, services.ErrEmptyMediaURL):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Invalid or unsupported media file"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadResponse{
			ID:        post.PostID.String(),
			URL:       post.URL,
			FileType:  post.FileType,
			Caption:   post.Caption,
			CreatedAt: post.CreatedAt,
		})
	}
}
