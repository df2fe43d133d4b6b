package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// PasswordChanger replaces a user's password after checking the old one.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body models.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} models.Response "Password changed"
// @Failure 400 {object} handlers.EnvelopeError "New password is required"
// @Failure 401 {object} handlers.EnvelopeError "Invalid old password"
// @Router /users/change-password [post]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		var req models.ChangePasswordRequest
		if err := respond.DecodeJSON(w, r, maxJSONBody, &req); err != nil {
			respond.Error(w, r, apperr.Validation("Invalid request body"))
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, struct{}{}, "Password changed successfully")
	}
}
