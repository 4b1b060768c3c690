package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to
// ConnectionManager. With no configured origin patterns the library's
// same-host origin check applies.
func (s *Server) wsHandler(c *echo.Context) error {
	opts := &websocket.AcceptOptions{
		OriginPatterns: s.cfg.Server.AllowedWSOrigins,
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}
