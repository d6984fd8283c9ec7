// Package inmem is the in-memory crisis repository used by the
// single-node deployment and the tests.
package inmem

import (
	"sync"

	"monitoring-srv/internal/crisis/repository"
	"monitoring-srv/internal/model"
	pkgLog "monitoring-srv/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger

	mu     sync.RWMutex
	events map[string]model.CrisisEvent
	order  []string
}

// New returns an empty in-memory repository.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{
		l:      l,
		events: make(map[string]model.CrisisEvent),
	}
}
