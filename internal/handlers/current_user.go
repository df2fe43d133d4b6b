package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// CurrentUserGetter loads the authenticated user.
type CurrentUserGetter interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// NewCurrentUserHandler returns the authenticated user.
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.EnvelopeUser "Current user"
// @Failure 401 {object} handlers.EnvelopeError "Unauthorized request"
// @Router /users/current-user [get]
func NewCurrentUserHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		user, err := svc.GetCurrentUser(r.Context(), userID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, user, "User fetched successfully")
	}
}
