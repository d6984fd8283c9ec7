package http

import (
	"errors"
	"net/http"

	"monitoring-srv/internal/rule"
	pkgErrors "monitoring-srv/pkg/errors"
)

var errBadBody = errors.New("invalid request body")

func (h *Handler) mapError(err error) error {
	switch err {
	case errBadBody:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	case rule.ErrRuleNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Alert rule not found")
	case rule.ErrNameRequired,
		rule.ErrTrackerRequired,
		rule.ErrInvalidCondition,
		rule.ErrInvalidThreshold,
		rule.ErrInvalidMode,
		rule.ErrKeywordRequired,
		rule.ErrInvalidTimeframe,
		rule.ErrInvalidSeverity,
		rule.ErrChannelRequired,
		rule.ErrInvalidChannel:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		panic(err)
	}
}
