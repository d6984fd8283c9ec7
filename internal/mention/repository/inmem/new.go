// Package inmem is the in-memory mention repository used by the
// single-node deployment and the tests.
package inmem

import (
	"sync"

	"monitoring-srv/internal/mention/repository"
	"monitoring-srv/internal/model"
	pkgLog "monitoring-srv/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger

	mu       sync.RWMutex
	mentions []model.Mention
}

// New returns an empty in-memory repository.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{l: l}
}
