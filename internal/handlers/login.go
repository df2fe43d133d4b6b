package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, email, password string) (*models.LoginResult, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticates by username or email. Returns both tokens in the body and sets them as HTTP-only cookies.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response "User logged in; data is a LoginResult"
// @Failure 400 {object} handlers.EnvelopeError "Username or email is required"
// @Failure 401 {object} handlers.EnvelopeError "Invalid user credentials"
// @Failure 404 {object} handlers.EnvelopeError "User does not exist"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := respond.DecodeJSON(w, r, maxJSONBody, &req); err != nil {
			respond.Error(w, r, apperr.Validation("Invalid request body"))
			return
		}

		res, err := svc.Login(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		cookies.setSession(w, res.AccessToken, res.RefreshToken)
		respond.JSON(w, http.StatusOK, res, "User logged In Successfully")
	}
}
