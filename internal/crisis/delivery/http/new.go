package http

import (
	"monitoring-srv/internal/crisis"
	"monitoring-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc crisis.UseCase
}

func New(l log.Logger, uc crisis.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
