package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social-feed/internal/middlewares"
)

// MeResponse represents the authenticated user summary
// swagger:model MeResponse
type MeResponse struct {
	// User id
	ID string `json:"id"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Active flag
	// default: true
	IsActive bool `json:"is_active"`

	// Superuser flag
	// default: false
	IsSuperuser bool `json:"is_superuser"`

	// Verified flag
	// default: false
	IsVerified bool `json:"is_verified"`
}

// MeErrorResponse represents an error response for the current-user endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler for fetching the authenticated user.
// @Summary Current user
// @Description Returns the user resolved from the bearer token
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MeResponse "Authenticated user"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Unauthorized"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			ID:          user.UserID.String(),
			Email:       user.Email,
			IsActive:    user.IsActive,
			IsSuperuser: user.IsSuperuser,
			IsVerified:  user.IsVerified,
		})
	}
}
