package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionDB links a subscriber to a channel; both are users.
type SubscriptionDB struct {
	SubscriptionID uuid.UUID `db:"subscription_id"`
	SubscriberID   uuid.UUID `db:"subscriber_id"`
	ChannelID      uuid.UUID `db:"channel_id"`
	CreatedAt      time.Time `db:"created_at"`
}

// ChannelProfile is a user's public channel page.
// swagger:model ChannelProfile
type ChannelProfile struct {
	UserID                    uuid.UUID `json:"_id"`
	Username                  string    `json:"username"`
	FullName                  string    `json:"fullName"`
	Avatar                    string    `json:"avatar"`
	CoverImage                string    `json:"coverImage"`
	SubscribersCount          int       `json:"subscribersCount"`
	ChannelsSubscribedToCount int       `json:"channelsSubscribedToCount"`
	IsSubscribed              bool      `json:"isSubscribed"`
}
