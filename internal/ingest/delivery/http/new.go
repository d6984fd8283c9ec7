package http

import (
	"monitoring-srv/internal/ingest"
	"monitoring-srv/pkg/log"
)

type Handler struct {
	l      log.Logger
	engine *ingest.Engine
}

func New(l log.Logger, engine *ingest.Engine) *Handler {
	return &Handler{
		l:      l,
		engine: engine,
	}
}
