package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported media kinds for a post.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// PostDB represents a post record in the database
type PostDB struct {
	PostID    uuid.UUID `json:"id" db:"post_id"`            // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owner foreign key
	Caption   string    `json:"caption" db:"caption"`       // Optional caption text
	URL       string    `json:"url" db:"url"`               // Opaque media URL, immutable once set
	FileType  string    `json:"file_type" db:"file_type"`   // "image" or "video"
	FileName  string    `json:"file_name" db:"file_name"`   // Original uploaded file name
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Feed ordering key
}

// FeedItemDB is a post row joined with its owner's email at read time.
type FeedItemDB struct {
	PostID    uuid.UUID `json:"id" db:"post_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	Caption   string    `json:"caption" db:"caption"`
	URL       string    `json:"url" db:"url"`
	FileType  string    `json:"file_type" db:"file_type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
