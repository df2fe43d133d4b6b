package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-video-accounts/internal/jwt"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// TokenRefresher exchanges a refresh token for a new token pair.
type TokenRefresher interface {
	RefreshAccessToken(ctx context.Context, token string) (*models.TokenPair, error)
}

// NewRefreshTokenHandler returns an HTTP handler that rotates the session tokens.
// @Summary Refresh access token
// @Description Exchanges the current refresh token (cookie or body) for a new token pair.
// @Tags users
// @Accept json
// @Produce json
// @Param refreshTokenRequest body models.RefreshTokenRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} models.Response "Access token refreshed; data is a TokenPair"
// @Failure 401 {object} handlers.EnvelopeError "Invalid, expired or used refresh token"
// @Router /users/refresh-token [post]
func NewRefreshTokenHandler(svc TokenRefresher, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(jwt.RefreshTokenCookie); err == nil {
			token = c.Value
		}
		if token == "" && r.ContentLength != 0 {
			var req models.RefreshTokenRequest
			if err := respond.DecodeJSON(w, r, maxJSONBody, &req); err == nil {
				token = req.RefreshToken
			}
		}

		pair, err := svc.RefreshAccessToken(r.Context(), token)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		cookies.setSession(w, pair.AccessToken, pair.RefreshToken)
		respond.JSON(w, http.StatusOK, pair, "Access token refreshed")
	}
}
