package inmem

import (
	"context"

	"monitoring-srv/internal/model"
	"monitoring-srv/internal/rule/repository"
)

func (r *implRepository) CreateAlert(ctx context.Context, opts repository.CreateAlertOptions) (model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts = append(r.alerts, opts.Alert)
	return opts.Alert, nil
}

func (r *implRepository) ListAlerts(ctx context.Context, sc model.Scope, opts repository.ListAlertsOptions) ([]model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first.
	alerts := make([]model.Alert, 0, len(r.alerts))
	for i := len(r.alerts) - 1; i >= 0; i-- {
		a := r.alerts[i]
		if !visible(a.OrgID, sc) {
			continue
		}
		if opts.Filter.TrackerID != "" && a.TrackerID != opts.Filter.TrackerID {
			continue
		}
		if opts.Filter.RuleID != "" && a.RuleID != opts.Filter.RuleID {
			continue
		}
		alerts = append(alerts, a)
		if opts.Limit > 0 && len(alerts) >= opts.Limit {
			break
		}
	}
	return alerts, nil
}
