package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-social-feed/internal/middlewares"
	"github.com/sbilibin2017/gw-social-feed/internal/models"
)

func TestMeHandler(t *testing.T) {
	userID := uuid.New()
	user := &models.UserDB{
		UserID:     userID,
		Email:      "john@example.com",
		IsActive:   true,
		IsVerified: true,
	}

	t.Run("AuthenticatedUser", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rec := httptest.NewRecorder()

		NewMeHandler()(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp MeResponse
		err := json.NewDecoder(rec.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, userID.String(), resp.ID)
		assert.Equal(t, "john@example.com", resp.Email)
		assert.True(t, resp.IsActive)
		assert.False(t, resp.IsSuperuser)
		assert.True(t, resp.IsVerified)
	})

	t.Run("NoUserInContext", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		rec := httptest.NewRecorder()

		NewMeHandler()(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
