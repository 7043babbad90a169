package http

import (
	"errors"
	"net/http"

	"eventask/internal/breadcrumb"
	pkgErrors "eventask/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, breadcrumb.ErrMissingSessionID),
		errors.Is(err, breadcrumb.ErrMissingPath):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
