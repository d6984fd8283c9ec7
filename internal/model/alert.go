package model

import "time"

// RuleCondition selects which threshold semantics an alert rule applies.
type RuleCondition string

const (
	ConditionVolumeSpike   RuleCondition = "volume_spike"
	ConditionSentimentDrop RuleCondition = "sentiment_drop"
	ConditionNewInfluencer RuleCondition = "new_influencer"
	ConditionKeywordTrend  RuleCondition = "keyword_trend"
)

// Valid reports whether rc is a known rule condition.
func (rc RuleCondition) Valid() bool {
	switch rc {
	case ConditionVolumeSpike, ConditionSentimentDrop, ConditionNewInfluencer, ConditionKeywordTrend:
		return true
	}
	return false
}

// ThresholdMode selects how a volume_spike threshold is interpreted.
type ThresholdMode string

const (
	// ThresholdAbsolute compares the window count against the raw threshold.
	ThresholdAbsolute ThresholdMode = "absolute"
	// ThresholdBaselineMultiple compares the window count against
	// threshold × the historical same-hour baseline.
	ThresholdBaselineMultiple ThresholdMode = "baseline_multiple"
)

// AlertRule is an operator-configured threshold on a tracker's window
// metrics. Evaluated continuously while enabled.
type AlertRule struct {
	ID        string        `json:"id"`
	OrgID     string        `json:"org_id"`
	Name      string        `json:"name"`
	TrackerID string        `json:"tracker_id"`
	Condition RuleCondition `json:"condition"`
	Threshold float64       `json:"threshold"`

	// Mode applies to volume_spike only; empty means absolute.
	Mode ThresholdMode `json:"mode,omitempty"`

	// Keyword applies to keyword_trend only.
	Keyword string `json:"keyword,omitempty"`

	Timeframe Timeframe `json:"timeframe"`
	Severity  Severity  `json:"severity"`
	Channels  []Channel `json:"channels"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Alert is the immutable event emitted when a rule's threshold crossing
// opens a new episode. At most one alert exists per episode.
type Alert struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	RuleID    string    `json:"rule_id"`
	TrackerID string    `json:"tracker_id"`
	FiredAt   time.Time `json:"fired_at"`
	Severity  Severity  `json:"severity"`
	Channels  []Channel `json:"channels"`
	Message   string    `json:"message"`
}
