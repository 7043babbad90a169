package http

import (
	"errors"
	"net/http"

	"eventask/internal/event"
	pkgErrors "eventask/pkg/errors"
)

var (
	errMissingID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidFilter = pkgErrors.NewHTTPError(http.StatusBadRequest, "from and to must be RFC 3339 timestamps")
)

// mapError translates domain errors into HTTP errors. Anything unknown maps
// to ErrInternalServerError.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrEmptyTitle),
		errors.Is(err, event.ErrMissingStart),
		errors.Is(err, event.ErrInvalidTimeRange),
		errors.Is(err, event.ErrInvalidRRule):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
