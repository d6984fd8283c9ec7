package inmem

import (
	"context"
	"sort"

	"monitoring-srv/internal/model"
	"monitoring-srv/internal/rule/repository"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.AlertRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rl := opts.Rule
	rl.OrgID = sc.OrgID
	r.rules[rl.ID] = rl
	return rl, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.AlertRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rules[opts.Rule.ID]
	if !ok || !visible(cur.OrgID, sc) {
		return model.AlertRule{}, repository.ErrNotFound
	}

	rl := opts.Rule
	rl.OrgID = cur.OrgID
	r.rules[rl.ID] = rl
	return rl, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rl, ok := r.rules[id]
	if !ok || !visible(rl.OrgID, sc) {
		return model.AlertRule{}, repository.ErrNotFound
	}
	return rl, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.AlertRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]model.AlertRule, 0, len(r.rules))
	for _, rl := range r.rules {
		if !visible(rl.OrgID, sc) {
			continue
		}
		if opts.Filter.TrackerID != "" && rl.TrackerID != opts.Filter.TrackerID {
			continue
		}
		if opts.Filter.Enabled != nil && rl.Enabled != *opts.Filter.Enabled {
			continue
		}
		rules = append(rules, rl)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].CreatedAt.Before(rules[j].CreatedAt) })
	return rules, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rl, ok := r.rules[id]
	if !ok || !visible(rl.OrgID, sc) {
		return repository.ErrNotFound
	}
	delete(r.rules, id)
	return nil
}

// visible reports whether a record owned by orgID may be seen under the
// scope. An empty scope is the internal (unscoped) caller.
func visible(orgID string, sc model.Scope) bool {
	return sc.OrgID == "" || sc.OrgID == orgID
}
