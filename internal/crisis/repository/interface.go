package repository

import (
	"context"
	"errors"

	"monitoring-srv/internal/model"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.CrisisEvent, error)
	Update(ctx context.Context, opts UpdateOptions) (model.CrisisEvent, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.CrisisEvent, error)
	// GetOpen returns the tracker's non-resolved event, ErrNotFound when
	// there is none. At most one event per tracker is open at a time.
	GetOpen(ctx context.Context, trackerID string) (model.CrisisEvent, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.CrisisEvent, error)
}
