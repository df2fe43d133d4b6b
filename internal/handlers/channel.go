package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// ChannelProfileGetter loads a channel page as seen by the viewer.
type ChannelProfileGetter interface {
	GetChannelProfile(ctx context.Context, viewerID uuid.UUID, username string) (*models.ChannelProfile, error)
}

// NewChannelProfileHandler returns a channel page with subscription counts.
// @Summary Channel profile
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param username path string true "Channel username"
// @Success 200 {object} models.Response "Channel profile; data is a ChannelProfile"
// @Failure 404 {object} handlers.EnvelopeError "channel does not exist"
// @Router /users/c/{username} [get]
func NewChannelProfileHandler(svc ChannelProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetChannelProfile(r.Context(), viewerID, chi.URLParam(r, "username"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, profile, "User channel fetched successfully")
	}
}
