package http

import (
	"errors"
	"net/http"

	"monitoring-srv/internal/ingest"
	pkgErrors "monitoring-srv/pkg/errors"
)

var (
	errBadBody          = errors.New("invalid request body")
	errIDRequired       = errors.New("item id required")
	errPostedAtRequired = errors.New("posted_at required")
)

func (h *Handler) mapError(err error) error {
	switch err {
	case errBadBody:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	case errIDRequired, errPostedAtRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case ingest.ErrRateLimited:
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded, retry later")
	case ingest.ErrQueueFull:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Intake queue full, retry later")
	case ingest.ErrStopped:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Service shutting down")
	default:
		panic(err)
	}
}
