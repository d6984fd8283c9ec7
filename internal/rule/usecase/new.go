package usecase

import (
	"sync"
	"time"

	"monitoring-srv/internal/rule"
	"monitoring-srv/internal/rule/repository"
	pkgLog "monitoring-srv/pkg/log"
	"monitoring-srv/pkg/notify"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	metrics  rule.MetricsSource
	notifier notify.Notifier

	// episodes tracks threshold-crossing state per rule ID for dedup.
	epMu     sync.Mutex
	episodes map[string]*episode
}

// episode is one contiguous threshold crossing of a rule.
type episode struct {
	active  bool
	firedAt time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, metrics rule.MetricsSource, notifier notify.Notifier) rule.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		metrics:  metrics,
		notifier: notifier,
		episodes: make(map[string]*episode),
	}
}
