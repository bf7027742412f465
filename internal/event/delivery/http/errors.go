package http

import (
	"errors"
	"net/http"

	"calendar-clipper/internal/event"
	pkgErrors "calendar-clipper/pkg/errors"
	"calendar-clipper/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Extraction failures never reach this mapper; they are reported inside
// a 200 body so the popup can render them.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")

	case errors.Is(err, event.ErrInvalidDate),
		errors.Is(err, event.ErrInvalidTime),
		errors.Is(err, event.ErrEndBeforeStart),
		errors.Is(err, event.ErrInvalidEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, event.ErrAuthExpired):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Calendar authorization expired. Please reconnect.")

	case errors.Is(err, event.ErrAuthFailed):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Calendar authentication failed.")

	default:
		var apiErr *event.CalendarAPIError
		if errors.As(err, &apiErr) {
			return pkgErrors.NewHTTPError(http.StatusBadGateway, apiErr.Message)
		}
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
