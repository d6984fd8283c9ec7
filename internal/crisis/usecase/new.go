package usecase

import (
	"sync"
	"time"

	"monitoring-srv/internal/crisis"
	"monitoring-srv/internal/crisis/repository"
	pkgLog "monitoring-srv/pkg/log"
	"monitoring-srv/pkg/notify"
)

type usecase struct {
	l        pkgLog.Logger
	cfg      crisis.Config
	repo     repository.Repository
	metrics  crisis.MetricsSource
	notifier notify.Notifier

	// belowSince tracks when each tracker's score last fell below the
	// monitoring floor, for auto-resolution.
	mu         sync.Mutex
	belowSince map[string]time.Time
}

func New(l pkgLog.Logger, cfg crisis.Config, repo repository.Repository, metrics crisis.MetricsSource, notifier notify.Notifier) crisis.UseCase {
	return &usecase{
		l:          l,
		cfg:        cfg,
		repo:       repo,
		metrics:    metrics,
		notifier:   notifier,
		belowSince: make(map[string]time.Time),
	}
}
