// Package inmem is the in-memory tracker repository used by the
// single-node deployment and the tests.
package inmem

import (
	"sync"

	"monitoring-srv/internal/model"
	"monitoring-srv/internal/tracker/repository"
	pkgLog "monitoring-srv/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger

	mu       sync.RWMutex
	trackers map[string]model.Tracker
}

// New returns an empty in-memory repository.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{
		l:        l,
		trackers: make(map[string]model.Tracker),
	}
}
