package inmem

import (
	"context"

	"monitoring-srv/internal/crisis/repository"
	"monitoring-srv/internal/model"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.CrisisEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev := opts.Event
	r.events[ev.ID] = ev
	r.order = append(r.order, ev.ID)
	return ev, nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.CrisisEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[opts.Event.ID]; !ok {
		return model.CrisisEvent{}, repository.ErrNotFound
	}
	r.events[opts.Event.ID] = opts.Event
	return opts.Event, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.CrisisEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, ok := r.events[id]
	if !ok || !visible(ev.OrgID, sc) {
		return model.CrisisEvent{}, repository.ErrNotFound
	}
	return ev, nil
}

func (r *implRepository) GetOpen(ctx context.Context, trackerID string) (model.CrisisEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		ev := r.events[r.order[i]]
		if ev.TrackerID == trackerID && ev.Status != model.CrisisResolved {
			return ev, nil
		}
	}
	return model.CrisisEvent{}, repository.ErrNotFound
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.CrisisEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first.
	events := make([]model.CrisisEvent, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		ev := r.events[r.order[i]]
		if !visible(ev.OrgID, sc) {
			continue
		}
		if opts.Filter.TrackerID != "" && ev.TrackerID != opts.Filter.TrackerID {
			continue
		}
		if opts.Filter.Status != "" && ev.Status != opts.Filter.Status {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// visible reports whether a record owned by orgID may be seen under the
// scope. An empty scope is the internal (unscoped) caller.
func visible(orgID string, sc model.Scope) bool {
	return sc.OrgID == "" || sc.OrgID == orgID
}
