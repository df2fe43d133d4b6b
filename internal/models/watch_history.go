package models

import (
	"time"

	"github.com/google/uuid"
)

// WatchHistoryEntry is one watched video of a user.
// swagger:model WatchHistoryEntry
type WatchHistoryEntry struct {
	VideoID   uuid.UUID `json:"videoId" db:"video_id"`
	WatchedAt time.Time `json:"watchedAt" db:"watched_at"`
}

// WatchHistoryRequest records a watched video
// swagger:model WatchHistoryRequest
type WatchHistoryRequest struct {
	// required: true
	// example: 1b4e28ba-2fa1-11d2-883f-0016d3cca427
	VideoID string `json:"videoId"`
}
