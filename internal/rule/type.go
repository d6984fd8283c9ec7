package rule

import "monitoring-srv/internal/model"

// CreateInput carries a new alert rule definition.
type CreateInput struct {
	Name      string
	TrackerID string
	Condition model.RuleCondition
	Threshold float64
	Mode      model.ThresholdMode
	Keyword   string
	Timeframe model.Timeframe
	Severity  model.Severity
	Channels  []model.Channel
}

// UpdateInput carries a rule update. Nil fields are left unchanged.
type UpdateInput struct {
	ID        string
	Name      *string
	Threshold *float64
	Mode      *model.ThresholdMode
	Keyword   *string
	Timeframe *model.Timeframe
	Severity  *model.Severity
	Channels  []model.Channel
}

// ListInput filters the rule listing.
type ListInput struct {
	TrackerID string
}

// AlertsInput filters the fired-alert listing.
type AlertsInput struct {
	TrackerID string
	RuleID    string
	Limit     int
}
