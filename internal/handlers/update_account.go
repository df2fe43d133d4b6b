package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// AccountUpdater changes a user's full name and email.
type AccountUpdater interface {
	UpdateAccountDetails(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.User, error)
}

// NewUpdateAccountHandler returns an HTTP handler for full name and email updates.
// @Summary Update account details
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateAccountRequest body models.UpdateAccountRequest true "New details"
// @Success 200 {object} handlers.EnvelopeUser "Updated user"
// @Failure 400 {object} handlers.EnvelopeError "All fields are required"
// @Failure 409 {object} handlers.EnvelopeError "Email is already in use"
// @Router /users/update-account [patch]
func NewUpdateAccountHandler(svc AccountUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		var req models.UpdateAccountRequest
		if err := respond.DecodeJSON(w, r, maxJSONBody, &req); err != nil {
			respond.Error(w, r, apperr.Validation("Invalid request body"))
			return
		}

		user, err := svc.UpdateAccountDetails(r.Context(), userID, req.FullName, req.Email)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, user, "Account details updated successfully")
	}
}
