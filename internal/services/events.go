package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent sends an account event keyed by user ID once the request
// transaction commits. Failures are logged only.
func publishEvent(ctx context.Context, w KafkaWriter, eventType string, userID uuid.UUID, channelID *uuid.UUID) {
	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}
	if channelID != nil {
		event.ChannelID = channelID.String()
	}

	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	middlewares.AfterCommit(ctx, func() {
		if err := w.WriteMessages(ctx, msg); err != nil {
			logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
		} else {
			logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType, "user_id", event.UserID)
		}
	})
}
