package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/c-varun14/Yugantar/pkg/services"
)

// createVisualizationHandler handles POST /api/v1/visualizations.
// Accepts the request, launches the generation pipeline and returns
// immediately; the caller follows progress on the returned channel.
func (s *Server) createVisualizationHandler(c *echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	started, err := s.generation.Start(services.StartGenerationInput{
		UserID:         user,
		Prompt:         req.Prompt,
		Instructions:   req.Instructions,
		NarrativeGuide: req.NarrativeGuide,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &GenerateResponse{
		GenerationID:   started.GenerationID,
		ConversationID: started.ConversationID,
		Channel:        started.Channel,
		Status:         "accepted",
	})
}

// cancelGenerationHandler handles POST /api/v1/visualizations/:id/cancel.
func (s *Server) cancelGenerationHandler(c *echo.Context) error {
	if _, err := requireUser(c); err != nil {
		return err
	}

	generationID := c.Param("id")
	if generationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "generation id is required")
	}

	if err := s.generation.Cancel(generationID); err != nil {
		return mapServiceError(err)
	}
	// Cancellation is asynchronous; the pipeline publishes the terminal
	// cancelled status on its channel.
	return c.JSON(http.StatusAccepted, &CancelResponse{Status: "cancelling"})
}
