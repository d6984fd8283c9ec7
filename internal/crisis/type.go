package crisis

import (
	"time"

	"monitoring-srv/internal/model"
)

// Config tunes trigger detection and the incident state machine.
type Config struct {
	// Score floors for entering each state.
	MonitoringFloor int
	ActiveFloor     int
	EscalateFloor   int

	// SpikeFactor is the baseline multiple that flags a volume spike.
	SpikeFactor float64
	// DropDelta flags a sentiment drop when mean[1h] - mean[72h] falls
	// below it (negative).
	DropDelta float64
	// HighReach is the author reach that counts as influencer amplification.
	HighReach int
	// MinRegions is the distinct-country count that flags geographic spread.
	MinRegions int
	// MinNegativeHits is the negative-keyword hit count that flags the
	// negative-keywords trigger.
	MinNegativeHits int

	// ObserveWindow is the horizon of the rolling observation signals.
	ObserveWindow time.Duration

	// ResolveCooldown is how long the score must stay below the
	// monitoring floor before an incident auto-resolves.
	ResolveCooldown time.Duration

	// NotifyChannels receive detection and escalation notifications.
	NotifyChannels []string
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MonitoringFloor: 30,
		ActiveFloor:     60,
		EscalateFloor:   80,
		SpikeFactor:     3,
		DropDelta:       -0.25,
		HighReach:       50000,
		MinRegions:      3,
		MinNegativeHits: 3,
		ObserveWindow:   time.Hour,
		ResolveCooldown: 30 * time.Minute,
		NotifyChannels:  []string{"email", "slack"},
	}
}

// ListInput filters the crisis listing.
type ListInput struct {
	TrackerID string
	Status    model.CrisisStatus
}

// AddActionInput attaches a response action to an incident.
type AddActionInput struct {
	Action     string
	AssignedTo string
	DueDate    time.Time
}

// UpdateActionInput updates one response action. Nil fields are left
// unchanged.
type UpdateActionInput struct {
	ActionID   string
	Status     *model.ActionStatus
	AssignedTo *string
	DueDate    *time.Time
}
