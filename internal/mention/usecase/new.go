package usecase

import (
	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/mention/repository"
	pkgLog "monitoring-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) mention.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
