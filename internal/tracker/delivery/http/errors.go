package http

import (
	"errors"
	"net/http"

	"monitoring-srv/internal/query"
	"monitoring-srv/internal/tracker"
	pkgErrors "monitoring-srv/pkg/errors"
)

var errBadBody = errors.New("invalid request body")

func (h *Handler) mapError(err error) error {
	var compileErr *query.CompileError
	if errors.As(err, &compileErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, compileErr.Error())
	}

	switch err {
	case errBadBody:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	case tracker.ErrTrackerNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Tracker not found")
	case tracker.ErrNameRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Tracker name is required")
	case tracker.ErrInvalidFilters:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid tracker filters")
	default:
		panic(err)
	}
}
