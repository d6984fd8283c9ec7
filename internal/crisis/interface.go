package crisis

import (
	"context"
	"time"

	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Rescore recomputes the tracker's crisis score from the current
	// metrics and drives the incident state machine. It returns the open
	// event when one exists after the rescore.
	Rescore(ctx context.Context, tr model.Tracker) (model.CrisisEvent, bool, error)

	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.CrisisEvent, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.CrisisEvent, error)

	Escalate(ctx context.Context, sc model.Scope, id string) (model.CrisisEvent, error)
	Resolve(ctx context.Context, sc model.Scope, id string) (model.CrisisEvent, error)
	AddAction(ctx context.Context, sc model.Scope, id string, ip AddActionInput) (model.CrisisEvent, error)
	UpdateAction(ctx context.Context, sc model.Scope, id string, ip UpdateActionInput) (model.CrisisEvent, error)
}

// MetricsSource is the aggregator view the scorer reads from.
type MetricsSource interface {
	Snapshot(trackerID string) metrics.Snapshot
	Observe(trackerID string, within time.Duration, negativeKeywords []string) metrics.Observation
}
