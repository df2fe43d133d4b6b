package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// Pinger checks database connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler reports whether the database is reachable.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.Response "OK"
// @Failure 503 {object} models.Response "Database unavailable"
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.FromContext(r.Context()).Warnw("health check failed", "err", err)
			respond.JSON(w, http.StatusServiceUnavailable, nil, "database unavailable")
			return
		}
		respond.JSON(w, http.StatusOK, struct{}{}, "OK")
	}
}
