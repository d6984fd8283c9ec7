package inmem

import (
	"context"
	"sort"

	"monitoring-srv/internal/model"
	"monitoring-srv/internal/tracker/repository"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Tracker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr := opts.Tracker
	tr.OrgID = sc.OrgID
	r.trackers[tr.ID] = tr
	return tr, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Tracker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.trackers[opts.Tracker.ID]
	if !ok || !visible(cur.OrgID, sc) {
		return model.Tracker{}, repository.ErrNotFound
	}

	tr := opts.Tracker
	tr.OrgID = cur.OrgID
	r.trackers[tr.ID] = tr
	return tr, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Tracker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tr, ok := r.trackers[id]
	if !ok || !visible(tr.OrgID, sc) {
		return model.Tracker{}, repository.ErrNotFound
	}
	return tr, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Tracker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trackers := make([]model.Tracker, 0, len(r.trackers))
	for _, tr := range r.trackers {
		if !visible(tr.OrgID, sc) {
			continue
		}
		if opts.Filter.Enabled != nil && tr.Enabled != *opts.Filter.Enabled {
			continue
		}
		trackers = append(trackers, tr)
	}
	sort.Slice(trackers, func(i, j int) bool {
		return trackers[i].CreatedAt.Before(trackers[j].CreatedAt)
	})
	return trackers, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.trackers[id]
	if !ok || !visible(tr.OrgID, sc) {
		return repository.ErrNotFound
	}
	delete(r.trackers, id)
	return nil
}

// visible reports whether a record owned by orgID may be seen under the
// scope. An empty scope is the internal (unscoped) caller.
func visible(orgID string, sc model.Scope) bool {
	return sc.OrgID == "" || sc.OrgID == orgID
}
