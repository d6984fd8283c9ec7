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
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Tracker, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Tracker, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Tracker, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Tracker, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
