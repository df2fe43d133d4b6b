package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// WatchHistoryService records and lists videos a user has watched.
type WatchHistoryService interface {
	AddToWatchHistory(ctx context.Context, userID uuid.UUID, videoID string) error
	GetWatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.WatchHistoryEntry, error)
}

// NewWatchHistoryHandler lists the caller's watch history, newest first.
// @Summary Watch history
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size, 1 to 100, default 20"
// @Success 200 {object} models.Response "Watch history; data is a list of WatchHistoryEntry"
// @Failure 400 {object} handlers.EnvelopeError "Invalid limit"
// @Router /users/history [get]
func NewWatchHistoryHandler(svc WatchHistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				respond.Error(w, r, apperr.Validation("Invalid limit"))
				return
			}
			limit = n
		}

		entries, err := svc.GetWatchHistory(r.Context(), userID, limit)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, entries, "Watch history fetched successfully")
	}
}

// NewAddWatchHistoryHandler records that the caller watched a video.
// @Summary Add to watch history
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param watchHistoryRequest body models.WatchHistoryRequest true "Video"
// @Success 200 {object} models.Response "Added"
// @Failure 400 {object} handlers.EnvelopeError "Invalid video id"
// @Router /users/history [post]
func NewAddWatchHistoryHandler(svc WatchHistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		var req models.WatchHistoryRequest
		if err := respond.DecodeJSON(w, r, maxJSONBody, &req); err != nil {
			respond.Error(w, r, apperr.Validation("Invalid request body"))
			return
		}

		if err := svc.AddToWatchHistory(r.Context(), userID, req.VideoID); err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, struct{}{}, "Added to watch history")
	}
}
