package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// listVisualizationsHandler handles GET /api/v1/visualizations.
// Returns the caller's persisted prompt logs, most recent first.
func (s *Server) listVisualizationsHandler(c *echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	if s.promptLogs == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "persistence is not available")
	}

	limit, err := parseIntParam(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := parseIntParam(c, "offset", 0)
	if err != nil {
		return err
	}

	records, err := s.promptLogs.List(c.Request().Context(), user, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]VisualizationRecord, 0, len(records))
	for _, record := range records {
		out = append(out, toVisualizationRecord(record))
	}
	return c.JSON(http.StatusOK, out)
}

func parseIntParam(c *echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}
