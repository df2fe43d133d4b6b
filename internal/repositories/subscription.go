package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SubscriptionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSubscriptionRepository(db *sqlx.DB, txGetter TxGetter) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, txGetter: txGetter}
}

// Subscribe links subscriber to channel. Repeating it is a no-op.
func (r *SubscriptionRepository) Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	const query = `
		INSERT INTO subscriptions (subscription_id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING`

	args := []any{uuid.New(), subscriberID, channelID}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	return err
}

// Unsubscribe removes the link. Missing links are ignored.
func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	const query = `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`

	args := []any{subscriberID, channelID}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	return err
}

func (r *SubscriptionRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query, args...)
	logQuery(query, args, n, err)
	return n, err
}

// CountSubscribers counts users subscribed to the channel.
func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`, channelID)
}

// CountSubscribedTo counts channels the user is subscribed to.
func (r *SubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1`, subscriberID)
}

func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (
		SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2)`

	var exists bool
	args := []any{subscriberID, channelID}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, args...)
	logQuery(query, args, exists, err)
	return exists, err
}
