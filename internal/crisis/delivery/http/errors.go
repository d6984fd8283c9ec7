package http

import (
	"errors"
	"net/http"

	"monitoring-srv/internal/crisis"
	pkgErrors "monitoring-srv/pkg/errors"
)

var errBadBody = errors.New("invalid request body")

func (h *Handler) mapError(err error) error {
	switch err {
	case errBadBody:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	case crisis.ErrCrisisNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Crisis event not found")
	case crisis.ErrActionNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Response action not found")
	case crisis.ErrCrisisResolved:
		return pkgErrors.NewHTTPError(http.StatusConflict, "Crisis event already resolved")
	case crisis.ErrActionRequired, crisis.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		panic(err)
	}
}
