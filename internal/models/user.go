package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                  // Primary key
	Email        string    `json:"email" db:"email"`                 // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`             // Hashed password, never serialized
	IsActive     bool      `json:"is_active" db:"is_active"`         // Inactive users cannot authenticate
	IsSuperuser  bool      `json:"is_superuser" db:"is_superuser"`   // Administrative flag
	IsVerified   bool      `json:"is_verified" db:"is_verified"`     // Email verification flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
