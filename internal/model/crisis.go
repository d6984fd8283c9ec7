package model

import "time"

// CrisisStatus is the lifecycle state of a crisis event. Resolved is
// terminal; a later score crossing opens a new event.
type CrisisStatus string

const (
	CrisisMonitoring CrisisStatus = "monitoring"
	CrisisActive     CrisisStatus = "active"
	CrisisEscalated  CrisisStatus = "escalated"
	CrisisResolved   CrisisStatus = "resolved"
)

// TriggerSet is the boolean signal vector the crisis score is built from.
type TriggerSet struct {
	VolumeSpike             bool `json:"volume_spike"`
	SentimentDrop           bool `json:"sentiment_drop"`
	NegativeKeywords        bool `json:"negative_keywords"`
	InfluencerAmplification bool `json:"influencer_amplification"`
	GeographicSpread        bool `json:"geographic_spread"`
}

// CrisisMetrics is the metrics snapshot frozen onto the event at each
// rescore, consumed by the UI collaborators.
type CrisisMetrics struct {
	Mentions1h     int     `json:"mentions_1h"`
	Mentions24h    int     `json:"mentions_24h"`
	SentimentScore float64 `json:"sentiment_score"`
	ReachEstimate  int     `json:"reach_estimate"`
	Regions        int     `json:"regions"`
}

// TimelineEntryType classifies a timeline entry.
type TimelineEntryType string

const (
	TimelineDetection  TimelineEntryType = "detection"
	TimelineEscalation TimelineEntryType = "escalation"
	TimelineResponse   TimelineEntryType = "response"
	TimelineResolution TimelineEntryType = "resolution"
)

// TimelineEntry is one append-only log line of an incident's history.
type TimelineEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Event     string            `json:"event"`
	Type      TimelineEntryType `json:"type"`
	Details   string            `json:"details"`
}

// ActionStatus is the progress state of a response action.
type ActionStatus string

const (
	ActionPending    ActionStatus = "pending"
	ActionInProgress ActionStatus = "in_progress"
	ActionCompleted  ActionStatus = "completed"
)

// ResponseAction is an opaque work item operators attach to an incident.
// The scorer never touches these.
type ResponseAction struct {
	ID         string       `json:"id"`
	Action     string       `json:"action"`
	Status     ActionStatus `json:"status"`
	AssignedTo string       `json:"assigned_to"`
	DueDate    time.Time    `json:"due_date"`
}

// CrisisEvent is the mutable incident record driven by the crisis scorer
// and by manual operator actions.
type CrisisEvent struct {
	ID          string           `json:"id"`
	OrgID       string           `json:"org_id"`
	TrackerID   string           `json:"tracker_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DetectedAt  time.Time        `json:"detected_at"`
	Severity    Severity         `json:"severity"`
	Status      CrisisStatus     `json:"status"`
	Score       int              `json:"crisis_score"` // 0..100
	Triggers    TriggerSet       `json:"triggers"`
	Metrics     CrisisMetrics    `json:"metrics"`
	Timeline    []TimelineEntry  `json:"timeline"`
	AssignedTo  string           `json:"assigned_to,omitempty"`
	Actions     []ResponseAction `json:"response_actions"`
}

// CrisisSeverity maps a crisis score onto the severity scale.
func CrisisSeverity(score int) Severity {
	switch {
	case score >= 80:
		return SeverityCritical
	case score >= 60:
		return SeverityHigh
	case score >= 40:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
