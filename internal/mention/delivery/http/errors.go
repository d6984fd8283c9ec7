package http

import (
	"errors"
	"net/http"

	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/tracker"
	pkgErrors "monitoring-srv/pkg/errors"
)

var (
	errBadBody         = errors.New("invalid request")
	errBadFormat       = errors.New("invalid export format")
	errBadTimeRange    = errors.New("invalid time range")
	errTrackerRequired = errors.New("tracker id required")
)

func (h *Handler) mapError(err error) error {
	switch err {
	case errBadBody:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request")
	case errBadFormat:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Export format must be csv or json")
	case errBadTimeRange:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Time bounds must be RFC3339")
	case errTrackerRequired, mention.ErrTrackerRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "tracker_id is required")
	case mention.ErrInvalidFilter:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid mention filter")
	case tracker.ErrTrackerNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Tracker not found")
	default:
		panic(err)
	}
}
