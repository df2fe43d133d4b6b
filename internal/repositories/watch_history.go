package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-video-accounts/internal/models"
)

type WatchHistoryRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWatchHistoryRepository(db *sqlx.DB, txGetter TxGetter) *WatchHistoryRepository {
	return &WatchHistoryRepository{db: db, txGetter: txGetter}
}

// Add records a view. Watching the same video again moves it to the top.
func (r *WatchHistoryRepository) Add(ctx context.Context, userID, videoID uuid.UUID) error {
	const query = `
		INSERT INTO watch_history (user_id, video_id, watched_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at`

	args := []any{userID, videoID}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	return err
}

// List returns up to limit entries, newest first.
func (r *WatchHistoryRepository) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.WatchHistoryEntry, error) {
	const query = `
		SELECT video_id, watched_at FROM watch_history
		WHERE user_id = $1
		ORDER BY watched_at DESC, video_id
		LIMIT $2`

	entries := []models.WatchHistoryEntry{}
	args := []any{userID, limit}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, args...)
	logQuery(query, args, len(entries), err)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
