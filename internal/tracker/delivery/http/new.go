package http

import (
	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/tracker"
	"monitoring-srv/pkg/log"
)

type Handler struct {
	l   log.Logger
	uc  tracker.UseCase
	agg *metrics.Aggregator
}

func New(l log.Logger, uc tracker.UseCase, agg *metrics.Aggregator) *Handler {
	return &Handler{
		l:   l,
		uc:  uc,
		agg: agg,
	}
}
