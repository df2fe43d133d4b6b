package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// Subscriber manages the caller's channel subscriptions.
type Subscriber interface {
	Subscribe(ctx context.Context, subscriberID uuid.UUID, username string) error
	Unsubscribe(ctx context.Context, subscriberID uuid.UUID, username string) error
}

// NewSubscribeHandler subscribes the caller to a channel.
// @Summary Subscribe to a channel
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param username path string true "Channel username"
// @Success 200 {object} models.Response "Subscribed"
// @Failure 400 {object} handlers.EnvelopeError "Cannot subscribe to your own channel"
// @Failure 404 {object} handlers.EnvelopeError "channel does not exist"
// @Router /users/c/{username}/subscription [post]
func NewSubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		if err := svc.Subscribe(r.Context(), userID, chi.URLParam(r, "username")); err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, struct{}{}, "Subscribed successfully")
	}
}

// NewUnsubscribeHandler removes the caller's subscription to a channel.
// @Summary Unsubscribe from a channel
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param username path string true "Channel username"
// @Success 200 {object} models.Response "Unsubscribed"
// @Failure 404 {object} handlers.EnvelopeError "channel does not exist"
// @Router /users/c/{username}/subscription [delete]
func NewUnsubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		if err := svc.Unsubscribe(r.Context(), userID, chi.URLParam(r, "username")); err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, struct{}{}, "Unsubscribed successfully")
	}
}
