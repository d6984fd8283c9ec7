package rule

import (
	"context"

	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.AlertRule, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.AlertRule, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.AlertRule, error)
	Toggle(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// EvaluateTracker runs every enabled rule of the tracker against the
	// current metrics snapshot and dispatches the alerts that fired.
	// latest may be nil when evaluation was not triggered by a mention.
	EvaluateTracker(ctx context.Context, trackerID string, latest *model.Mention) ([]model.Alert, error)

	Alerts(ctx context.Context, sc model.Scope, ip AlertsInput) ([]model.Alert, error)
}

// MetricsSource is the aggregator view the evaluator reads from.
type MetricsSource interface {
	Snapshot(trackerID string) metrics.Snapshot
	KeywordCounts(trackerID, keyword string, tf model.Timeframe) (current, previous int)
}
