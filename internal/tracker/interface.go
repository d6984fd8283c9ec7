package tracker

import (
	"context"

	"monitoring-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Tracker, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Tracker, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Tracker, error)
	EditQuery(ctx context.Context, sc model.Scope, ip EditQueryInput) (model.Tracker, error)
	SetFilters(ctx context.Context, sc model.Scope, ip SetFiltersInput) (model.Tracker, error)
	Toggle(ctx context.Context, sc model.Scope, id string) (model.Tracker, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ListActive returns every enabled tracker across orgs, for the
	// ingest pipeline.
	ListActive(ctx context.Context) ([]model.Tracker, error)
}
