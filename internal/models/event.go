package models

// Account event types published to Kafka.
const (
	EventUserRegistered      = "user.registered"
	EventUserLoggedIn        = "user.logged_in"
	EventUserLoggedOut       = "user.logged_out"
	EventUserTokenRefreshed  = "user.token_refreshed"
	EventUserPasswordChanged = "user.password_changed"
	EventUserProfileUpdated  = "user.profile_updated"
	EventChannelSubscribed   = "channel.subscribed"
	EventChannelUnsubscribed = "channel.unsubscribed"
)

// UserEvent is an account event, keyed by user ID on the topic.
type UserEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	UserID    string `json:"user_id"`   // UserID is the user the event is about.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the event.
	ChannelID string `json:"channel_id,omitempty"`
}
