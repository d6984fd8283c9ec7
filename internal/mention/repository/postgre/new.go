// Package postgres is the durable mention store. Mentions are the only
// high-volume record in the service; everything else stays in memory.
package postgres

import (
	"database/sql"

	"monitoring-srv/internal/mention/repository"
	pkgLog "monitoring-srv/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) *implRepository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
