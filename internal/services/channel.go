package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// SubscriptionStore persists subscriber to channel links.
type SubscriptionStore interface {
	Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error
	Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int, error)
	CountSubscribedTo(ctx context.Context, subscriberID uuid.UUID) (int, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
}

// WatchHistoryStore persists watched videos per user.
type WatchHistoryStore interface {
	Add(ctx context.Context, userID, videoID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]models.WatchHistoryEntry, error)
}

// ChannelService handles channel pages, subscriptions and watch history.
type ChannelService struct {
	users         UserReader
	subscriptions SubscriptionStore
	history       WatchHistoryStore
	kafkaWriter   KafkaWriter
}

func NewChannelService(users UserReader, subscriptions SubscriptionStore, history WatchHistoryStore, kafkaWriter KafkaWriter) *ChannelService {
	return &ChannelService{
		users:         users,
		subscriptions: subscriptions,
		history:       history,
		kafkaWriter:   kafkaWriter,
	}
}

func (s *ChannelService) channel(ctx context.Context, username string) (*models.UserDB, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperr.Validation("username is missing")
	}

	user, err := s.users.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get channel", "username", username, "err", err)
		return nil, apperr.Internal("failed to get channel", err)
	}
	if user == nil {
		return nil, apperr.NotFound("channel does not exist")
	}
	return user, nil
}

// GetChannelProfile returns the public channel page as seen by viewerID.
func (s *ChannelService) GetChannelProfile(ctx context.Context, viewerID uuid.UUID, username string) (*models.ChannelProfile, error) {
	channel, err := s.channel(ctx, username)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.subscriptions.CountSubscribers(ctx, channel.UserID)
	if err != nil {
		return nil, apperr.Internal("failed to count subscribers", err)
	}
	subscribedTo, err := s.subscriptions.CountSubscribedTo(ctx, channel.UserID)
	if err != nil {
		return nil, apperr.Internal("failed to count subscriptions", err)
	}
	isSubscribed, err := s.subscriptions.IsSubscribed(ctx, viewerID, channel.UserID)
	if err != nil {
		return nil, apperr.Internal("failed to check subscription", err)
	}

	return &models.ChannelProfile{
		UserID:                    channel.UserID,
		Username:                  channel.Username,
		FullName:                  channel.FullName,
		Avatar:                    channel.Avatar,
		CoverImage:                channel.CoverImage,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}

// Subscribe makes subscriberID follow the channel. Repeating it is harmless.
func (s *ChannelService) Subscribe(ctx context.Context, subscriberID uuid.UUID, username string) error {
	channel, err := s.channel(ctx, username)
	if err != nil {
		return err
	}
	if channel.UserID == subscriberID {
		return apperr.Validation("cannot subscribe to your own channel")
	}

	if err := s.subscriptions.Subscribe(ctx, subscriberID, channel.UserID); err != nil {
		logger.Log.Errorw("failed to subscribe", "subscriber", subscriberID, "channel", channel.UserID, "err", err)
		return apperr.Internal("failed to subscribe", err)
	}

	publishEvent(ctx, s.kafkaWriter, models.EventChannelSubscribed, subscriberID, &channel.UserID)
	return nil
}

// Unsubscribe removes the subscription if there is one.
func (s *ChannelService) Unsubscribe(ctx context.Context, subscriberID uuid.UUID, username string) error {
	channel, err := s.channel(ctx, username)
	if err != nil {
		return err
	}

	if err := s.subscriptions.Unsubscribe(ctx, subscriberID, channel.UserID); err != nil {
		logger.Log.Errorw("failed to unsubscribe", "subscriber", subscriberID, "channel", channel.UserID, "err", err)
		return apperr.Internal("failed to unsubscribe", err)
	}

	publishEvent(ctx, s.kafkaWriter, models.EventChannelUnsubscribed, subscriberID, &channel.UserID)
	return nil
}

// AddToWatchHistory records that the user watched videoID.
func (s *ChannelService) AddToWatchHistory(ctx context.Context, userID uuid.UUID, videoID string) error {
	id, err := uuid.Parse(strings.TrimSpace(videoID))
	if err != nil {
		return apperr.Validation("invalid video id")
	}

	if err := s.history.Add(ctx, userID, id); err != nil {
		logger.Log.Errorw("failed to add to watch history", "userID", userID, "videoID", id, "err", err)
		return apperr.Internal("failed to add to watch history", err)
	}
	return nil
}

// ClampHistoryLimit maps a requested page size into [1, MaxHistoryLimit];
// non-positive values select the default.
func ClampHistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	}
	return limit
}

// GetWatchHistory returns the user's history, newest first.
func (s *ChannelService) GetWatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.WatchHistoryEntry, error) {
	entries, err := s.history.List(ctx, userID, ClampHistoryLimit(limit))
	if err != nil {
		logger.Log.Errorw("failed to get watch history", "userID", userID, "err", err)
		return nil, apperr.Internal("failed to get watch history", err)
	}
	return entries, nil
}
