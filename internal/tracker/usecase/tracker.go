package usecase

import (
	"context"
	"time"

	"monitoring-srv/internal/model"
	"monitoring-srv/internal/query"
	"monitoring-srv/internal/tracker"
	"monitoring-srv/internal/tracker/repository"
	postgresPkg "monitoring-srv/pkg/postgre"
)

// Create validates the condition list by compiling it; a tracker never
// exists with an uncompilable query.
func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip tracker.CreateInput) (model.Tracker, error) {
	if ip.Name == "" {
		return model.Tracker{}, tracker.ErrNameRequired
	}
	if err := validateFilters(ip.Filters); err != nil {
		return model.Tracker{}, err
	}

	q, err := query.Compile(ip.Conditions)
	if err != nil {
		return model.Tracker{}, err
	}

	now := time.Now()
	tr := model.Tracker{
		ID:               postgresPkg.NewUUID(),
		Name:             ip.Name,
		Query:            q.String(),
		Conditions:       ip.Conditions,
		Filters:          ip.Filters,
		NegativeKeywords: ip.NegativeKeywords,
		Enabled:          true,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Tracker: tr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.Create: %v", err)
		return model.Tracker{}, err
	}

	return created, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Tracker, error) {
	tr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Tracker{}, tracker.ErrTrackerNotFound
		}
		uc.l.Errorf(ctx, "internal.tracker.usecase.Detail: %v", err)
		return model.Tracker{}, err
	}
	return tr, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip tracker.ListInput) ([]model.Tracker, error) {
	trackers, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{Enabled: ip.Enabled},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.List: %v", err)
		return nil, err
	}
	return trackers, nil
}

// EditQuery replaces the condition list. The version bump invalidates
// every cached compiled query downstream.
func (uc *usecase) EditQuery(ctx context.Context, sc model.Scope, ip tracker.EditQueryInput) (model.Tracker, error) {
	q, err := query.Compile(ip.Conditions)
	if err != nil {
		return model.Tracker{}, err
	}

	tr, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Tracker{}, tracker.ErrTrackerNotFound
		}
		uc.l.Errorf(ctx, "internal.tracker.usecase.EditQuery.Detail: %v", err)
		return model.Tracker{}, err
	}

	tr.Conditions = ip.Conditions
	tr.Query = q.String()
	tr.Version++
	tr.UpdatedAt = time.Now()

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Tracker: tr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.EditQuery: %v", err)
		return model.Tracker{}, err
	}
	return updated, nil
}

func (uc *usecase) SetFilters(ctx context.Context, sc model.Scope, ip tracker.SetFiltersInput) (model.Tracker, error) {
	if err := validateFilters(ip.Filters); err != nil {
		return model.Tracker{}, err
	}

	tr, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Tracker{}, tracker.ErrTrackerNotFound
		}
		uc.l.Errorf(ctx, "internal.tracker.usecase.SetFilters.Detail: %v", err)
		return model.Tracker{}, err
	}

	tr.Filters = ip.Filters
	tr.NegativeKeywords = ip.NegativeKeywords
	tr.Version++
	tr.UpdatedAt = time.Now()

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Tracker: tr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.SetFilters: %v", err)
		return model.Tracker{}, err
	}
	return updated, nil
}

func (uc *usecase) Toggle(ctx context.Context, sc model.Scope, id string) (model.Tracker, error) {
	tr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Tracker{}, tracker.ErrTrackerNotFound
		}
		uc.l.Errorf(ctx, "internal.tracker.usecase.Toggle.Detail: %v", err)
		return model.Tracker{}, err
	}

	tr.Enabled = !tr.Enabled
	tr.UpdatedAt = time.Now()

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Tracker: tr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.Toggle: %v", err)
		return model.Tracker{}, err
	}
	return updated, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return tracker.ErrTrackerNotFound
		}
		uc.l.Errorf(ctx, "internal.tracker.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) ListActive(ctx context.Context) ([]model.Tracker, error) {
	enabled := true
	trackers, err := uc.repo.List(ctx, model.Scope{}, repository.ListOptions{
		Filter: repository.Filter{Enabled: &enabled},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.ListActive: %v", err)
		return nil, err
	}
	return trackers, nil
}

func validateFilters(f model.TrackerFilters) error {
	if f.Sentiment != "" && f.Sentiment != model.SentimentAll && !f.Sentiment.Valid() {
		return tracker.ErrInvalidFilters
	}
	return nil
}
