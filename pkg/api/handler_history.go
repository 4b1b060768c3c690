package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listConversationsHandler handles GET /api/v1/conversations.
// Conversations live in process memory; the prompt log table is the durable
// record.
func (s *Server) listConversationsHandler(c *echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	if s.history == nil {
		return c.JSON(http.StatusOK, []any{})
	}
	return c.JSON(http.StatusOK, s.history.List(user))
}

// getConversationHandler handles GET /api/v1/conversations/:id.
func (s *Server) getConversationHandler(c *echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}
	if s.history == nil {
		return echo.NewHTTPError(http.StatusNotFound, "conversation not found")
	}

	conv, ok := s.history.Get(user, conversationID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "conversation not found")
	}
	return c.JSON(http.StatusOK, conv)
}
