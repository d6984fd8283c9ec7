package notify

import "time"

// Kind distinguishes the two notification families.
type Kind string

const (
	KindAlert  Kind = "alert"
	KindCrisis Kind = "crisis"
)

// Notification is the channel-agnostic payload handed to a Notifier.
type Notification struct {
	Kind      Kind      `json:"kind"`
	TrackerID string    `json:"tracker_id"`
	Severity  string    `json:"severity"`
	Channels  []string  `json:"channels"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	FiredAt   time.Time `json:"fired_at"`

	// Payload carries the full alert or crisis record for consumers that
	// want more than the message line.
	Payload any `json:"payload,omitempty"`
}
