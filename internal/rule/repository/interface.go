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
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.AlertRule, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.AlertRule, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.AlertRule, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	CreateAlert(ctx context.Context, opts CreateAlertOptions) (model.Alert, error)
	ListAlerts(ctx context.Context, sc model.Scope, opts ListAlertsOptions) ([]model.Alert, error)
}
