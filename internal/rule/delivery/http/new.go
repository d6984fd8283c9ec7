package http

import (
	"monitoring-srv/internal/rule"
	"monitoring-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc rule.UseCase
}

func New(l log.Logger, uc rule.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
