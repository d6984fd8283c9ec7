package http

import (
	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/tracker"
	"monitoring-srv/pkg/log"
)

// Handler serves mention listings and exports. The tracker usecase
// enforces the org boundary: mentions are only reachable through a
// tracker the caller can see.
type Handler struct {
	l         log.Logger
	uc        mention.UseCase
	trackerUC tracker.UseCase
}

func New(l log.Logger, uc mention.UseCase, trackerUC tracker.UseCase) *Handler {
	return &Handler{
		l:         l,
		uc:        uc,
		trackerUC: trackerUC,
	}
}
