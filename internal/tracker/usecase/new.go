package usecase

import (
	"monitoring-srv/internal/tracker"
	"monitoring-srv/internal/tracker/repository"
	pkgLog "monitoring-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) tracker.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
