// Package api exposes the HTTP surface: visualization generation, prompt
// history, the WebSocket event stream and the embedded web UI.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/c-varun14/Yugantar/pkg/config"
	"github.com/c-varun14/Yugantar/pkg/database"
	"github.com/c-varun14/Yugantar/pkg/events"
	"github.com/c-varun14/Yugantar/pkg/history"
	"github.com/c-varun14/Yugantar/pkg/services"
)

// Server wires the service layer to HTTP routes.
type Server struct {
	cfg         *config.Config
	generation  *services.GenerationService
	promptLogs  *services.PromptLogService
	history     *history.Store
	db          *database.Client
	connManager *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server and registers all routes. promptLogs and
// db may be nil when persistence is disabled; their routes degrade
// accordingly.
func NewServer(
	cfg *config.Config,
	generation *services.GenerationService,
	promptLogs *services.PromptLogService,
	hist *history.Store,
	db *database.Client,
	connManager *events.ConnectionManager,
) *Server {
	if cfg == nil {
		panic("api.NewServer: cfg must not be nil")
	}
	if generation == nil {
		panic("api.NewServer: generation service must not be nil")
	}
	if connManager == nil {
		panic("api.NewServer: connection manager must not be nil")
	}

	s := &Server{
		cfg:         cfg,
		generation:  generation,
		promptLogs:  promptLogs,
		history:     hist,
		db:          db,
		connManager: connManager,
		echo:        echo.New(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/visualizations", s.createVisualizationHandler)
	v1.POST("/visualizations/:id/cancel", s.cancelGenerationHandler)
	v1.GET("/visualizations", s.listVisualizationsHandler)
	v1.GET("/conversations", s.listConversationsHandler)
	v1.GET("/conversations/:id", s.getConversationHandler)

	s.registerUIRoutes(e)
}

// Start runs the HTTP server until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
