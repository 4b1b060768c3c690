package api

import (
	"embed"
	"io/fs"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

//go:embed static
var staticFS embed.FS

// registerUIRoutes serves the embedded web UI at the root path. API and
// WebSocket routes are registered first and take precedence.
func (s *Server) registerUIRoutes(e *echo.Echo) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("api: embedded static assets missing: " + err.Error())
	}
	e.GET("/*", echo.WrapHandler(http.FileServer(http.FS(sub))))
}
