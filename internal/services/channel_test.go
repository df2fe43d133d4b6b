package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/services"
)

type channelMocks struct {
	users   *services.MockUserReader
	subs    *services.MockSubscriptionStore
	history *services.MockWatchHistoryStore
	kafka   *services.MockKafkaWriter
}

func newChannelService(t *testing.T) (*services.ChannelService, channelMocks) {
	ctrl := gomock.NewController(t)
	m := channelMocks{
		users:   services.NewMockUserReader(ctrl),
		subs:    services.NewMockSubscriptionStore(ctrl),
		history: services.NewMockWatchHistoryStore(ctrl),
		kafka:   services.NewMockKafkaWriter(ctrl),
	}
	return services.NewChannelService(m.users, m.subs, m.history, m.kafka), m
}

func TestChannelService_GetChannelProfile(t *testing.T) {
	ctx := context.Background()
	viewer := uuid.New()
	channel := &models.UserDB{UserID: uuid.New(), Username: "alice", FullName: "Alice", Avatar: "a"}

	t.Run("success", func(t *testing.T) {
		svc, m := newChannelService(t)
		username := "alice"
		m.users.EXPECT().GetByUsernameOrEmail(ctx, &username, nil).Return(channel, nil)
		m.subs.EXPECT().CountSubscribers(ctx, channel.UserID).Return(3, nil)
		m.subs.EXPECT().CountSubscribedTo(ctx, channel.UserID).Return(1, nil)
		m.subs.EXPECT().IsSubscribed(ctx, viewer, channel.UserID).Return(true, nil)

		profile, err := svc.GetChannelProfile(ctx, viewer, " Alice ")
		require.NoError(t, err)
		assert.Equal(t, &models.ChannelProfile{
			UserID:                    channel.UserID,
			Username:                  "alice",
			FullName:                  "Alice",
			Avatar:                    "a",
			SubscribersCount:          3,
			ChannelsSubscribedToCount: 1,
			IsSubscribed:              true,
		}, profile)
	})

	t.Run("missing username", func(t *testing.T) {
		svc, _ := newChannelService(t)
		_, err := svc.GetChannelProfile(ctx, viewer, "  ")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("unknown channel", func(t *testing.T) {
		svc, m := newChannelService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).Return(nil, nil)
		_, err := svc.GetChannelProfile(ctx, viewer, "ghost")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("count error", func(t *testing.T) {
		svc, m := newChannelService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).Return(channel, nil)
		m.subs.EXPECT().CountSubscribers(ctx, channel.UserID).Return(0, errors.New("db down"))
		_, err := svc.GetChannelProfile(ctx, viewer, "alice")
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})
}

func TestChannelService_Subscribe(t *testing.T) {
	ctx := context.Background()
	subscriber := uuid.New()
	channel := &models.UserDB{UserID: uuid.New(), Username: "alice"}

	t.Run("publishes event", func(t *testing.T) {
		svc, m := newChannelService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).Return(channel, nil)
		m.subs.EXPECT().Subscribe(ctx, subscriber, channel.UserID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, subscriber.String(), string(msgs[0].Key))

				var event models.UserEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.EventChannelSubscribed, event.Type)
				assert.Equal(t, channel.UserID.String(), event.ChannelID)
				assert.WithinDuration(t, time.Now(), time.Unix(event.Timestamp, 0), 5*time.Second)
				return nil
			})

		assert.NoError(t, svc.Subscribe(ctx, subscriber, "alice"))
	})

	t.Run("self subscription", func(t *testing.T) {
		svc, m := newChannelService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).Return(channel, nil)

		err := svc.Subscribe(ctx, channel.UserID, "alice")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("store error", func(t *testing.T) {
		svc, m := newChannelService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).Return(channel, nil)
		m.subs.EXPECT().Subscribe(ctx, subscriber, channel.UserID).Return(errors.New("db down"))

		err := svc.Subscribe(ctx, subscriber, "alice")
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})

	t.Run("unsubscribe", func(t *testing.T) {
		svc, m := newChannelService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).Return(channel, nil)
		m.subs.EXPECT().Unsubscribe(ctx, subscriber, channel.UserID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Unsubscribe(ctx, subscriber, "alice"))
	})

	t.Run("unsubscribe unknown channel", func(t *testing.T) {
		svc, m := newChannelService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).Return(nil, nil)

		err := svc.Unsubscribe(ctx, subscriber, "ghost")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestChannelService_WatchHistory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	videoID := uuid.New()

	t.Run("add", func(t *testing.T) {
		svc, m := newChannelService(t)
		m.history.EXPECT().Add(ctx, userID, videoID).Return(nil)
		assert.NoError(t, svc.AddToWatchHistory(ctx, userID, videoID.String()))
	})

	t.Run("add invalid id", func(t *testing.T) {
		svc, _ := newChannelService(t)
		err := svc.AddToWatchHistory(ctx, userID, "not-a-uuid")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("list clamps limit", func(t *testing.T) {
		svc, m := newChannelService(t)
		entries := []models.WatchHistoryEntry{{VideoID: videoID, WatchedAt: time.Now()}}
		m.history.EXPECT().List(ctx, userID, services.MaxHistoryLimit).Return(entries, nil)

		got, err := svc.GetWatchHistory(ctx, userID, 1000)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("list error", func(t *testing.T) {
		svc, m := newChannelService(t)
		m.history.EXPECT().List(ctx, userID, services.DefaultHistoryLimit).Return(nil, errors.New("db down"))

		_, err := svc.GetWatchHistory(ctx, userID, 0)
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})
}

func TestClampHistoryLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, services.DefaultHistoryLimit},
		{0, services.DefaultHistoryLimit},
		{1, 1},
		{50, 50},
		{100, 100},
		{101, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.ClampHistoryLimit(tt.in), "limit %d", tt.in)
	}
}
