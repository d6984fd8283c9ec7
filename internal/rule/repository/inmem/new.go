// Package inmem is the in-memory rule repository used by the single-node
// deployment and the tests.
package inmem

import (
	"sync"

	"monitoring-srv/internal/model"
	"monitoring-srv/internal/rule/repository"
	pkgLog "monitoring-srv/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger

	mu     sync.RWMutex
	rules  map[string]model.AlertRule
	alerts []model.Alert
}

// New returns an empty in-memory repository.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{
		l:     l,
		rules: make(map[string]model.AlertRule),
	}
}
