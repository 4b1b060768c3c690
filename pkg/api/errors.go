package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/c-varun14/Yugantar/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	var cfgErr *services.ConfigurationError
	if errors.As(err, &cfgErr) {
		// Configuration errors are operator-facing and surfaced verbatim.
		return echo.NewHTTPError(http.StatusInternalServerError, cfgErr.Message)
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrUnauthenticated) {
		return echo.NewHTTPError(http.StatusUnauthorized, "user identity is required")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
