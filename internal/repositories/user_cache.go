package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
)

// UserCacheRepository keeps sanitized users in Redis keyed by ID.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	key := userKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("user cache",
			"key", key,
			"result", "miss",
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Infow("user cache",
			"key", key,
			"result", "corrupt",
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("user cache",
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &user, nil
}

// Set caches the user with the repository TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	if user == nil {
		return nil
	}
	key := userKey(user.UserID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("user cache",
		"key", key,
		"result", "set",
		"error", err,
	)

	return err
}

// Delete drops the cached user.
func (r *UserCacheRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := userKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("user cache",
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
