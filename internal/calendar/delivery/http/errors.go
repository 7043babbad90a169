package http

import (
	"errors"
	"net/http"

	"eventask/internal/calendar"
	pkgErrors "eventask/pkg/errors"
)

var errMonthWithoutYear = pkgErrors.NewHTTPError(http.StatusBadRequest, "month and year must be given together")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendar.ErrInvalidYear),
		errors.Is(err, calendar.ErrInvalidAnchor):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
