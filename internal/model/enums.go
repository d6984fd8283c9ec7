package model

import "time"

// Sentiment is the polarity label attached to a content item by the
// upstream classifier. It is an input to this service, never computed here.
type Sentiment string

const (
	SentimentPositive Sentiment = "pos"
	SentimentNeutral  Sentiment = "neu"
	SentimentNegative Sentiment = "neg"

	// SentimentAll is only valid as a tracker filter value (wildcard).
	SentimentAll Sentiment = "all"
)

// Valid reports whether s is one of the three polarity labels.
func (s Sentiment) Valid() bool {
	return s == SentimentPositive || s == SentimentNeutral || s == SentimentNegative
}

// Score maps the label onto the numeric scale used by window metrics.
func (s Sentiment) Score() float64 {
	switch s {
	case SentimentPositive:
		return 1
	case SentimentNegative:
		return -1
	default:
		return 0
	}
}

// Timeframe is one of the fixed rolling-window durations metrics are
// aggregated over.
type Timeframe string

const (
	Timeframe15m Timeframe = "15m"
	Timeframe1h  Timeframe = "1h"
	Timeframe3h  Timeframe = "3h"
	Timeframe24h Timeframe = "24h"
)

// Timeframes lists all supported timeframes in ascending order.
var Timeframes = []Timeframe{Timeframe15m, Timeframe1h, Timeframe3h, Timeframe24h}

var timeframeDurations = map[Timeframe]time.Duration{
	Timeframe15m: 15 * time.Minute,
	Timeframe1h:  time.Hour,
	Timeframe3h:  3 * time.Hour,
	Timeframe24h: 24 * time.Hour,
}

// Valid reports whether tf is a supported timeframe.
func (tf Timeframe) Valid() bool {
	_, ok := timeframeDurations[tf]
	return ok
}

// Duration returns the window span. Zero for unknown timeframes.
func (tf Timeframe) Duration() time.Duration {
	return timeframeDurations[tf]
}

// Severity classifies alerts and crisis events.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical" // crisis events only
)

// Valid reports whether sv is a severity an alert rule may carry.
func (sv Severity) Valid() bool {
	return sv == SeverityLow || sv == SeverityMedium || sv == SeverityHigh
}

// Channel is a notification fan-out target. Delivery semantics belong to
// the channel adapters, not to this service.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelSlack   Channel = "slack"
	ChannelWebhook Channel = "webhook"
)

// Valid reports whether ch is a supported channel.
func (ch Channel) Valid() bool {
	return ch == ChannelEmail || ch == ChannelSlack || ch == ChannelWebhook
}
