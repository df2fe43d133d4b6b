package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// Logouter ends a user's session by clearing the stored refresh token.
type Logouter interface {
	Logout(ctx context.Context, userID uuid.UUID) error
}

// NewLogoutHandler returns an HTTP handler that ends the caller's session.
// @Summary Log out
// @Description Clears the stored refresh token and both session cookies.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "User logged out"
// @Failure 401 {object} handlers.EnvelopeError "Unauthorized request"
// @Router /users/logout [post]
func NewLogoutHandler(svc Logouter, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		if err := svc.Logout(r.Context(), userID); err != nil {
			respond.Error(w, r, err)
			return
		}

		cookies.clearSession(w)
		respond.JSON(w, http.StatusOK, struct{}{}, "User logged Out")
	}
}
