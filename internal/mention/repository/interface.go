package repository

import (
	"context"
	"errors"

	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/paginator"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Mention, error)
	Get(ctx context.Context, opts GetOptions) ([]model.Mention, paginator.Paginator, error)
	// List returns every matching mention oldest first, for exports.
	List(ctx context.Context, opts ListOptions) ([]model.Mention, error)
}
