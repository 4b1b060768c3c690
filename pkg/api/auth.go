package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// extractUser extracts the user identity from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy). Empty when no identity is present.
func extractUser(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return ""
}

// requireUser returns the caller's identity or a 401 error. Persisting
// operations never run anonymously.
func requireUser(c *echo.Context) (string, error) {
	user := extractUser(c)
	if user == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "user identity is required")
	}
	return user, nil
}
