package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestListVisualizationsHandler(t *testing.T) {
	s := newTestServer(t)

	t.Run("anonymous request is rejected", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/visualizations", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.listVisualizationsHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusUnauthorized, he.Code)
			}
		}
	})

	t.Run("degrades to 503 without persistence", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/visualizations", nil)
		req.Header.Set("X-Forwarded-User", "alice")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.listVisualizationsHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusServiceUnavailable, he.Code)
			}
		}
	})
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{"absent uses fallback", "", 10, false},
		{"valid value", "limit=50", 50, false},
		{"zero is valid", "limit=0", 0, false},
		{"negative rejected", "limit=-1", 0, true},
		{"non-numeric rejected", "limit=abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/visualizations?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			v, err := parseIntParam(c, "limit", 10)
			if tt.wantErr {
				if assert.Error(t, err) {
					he, ok := err.(*echo.HTTPError)
					if assert.True(t, ok) {
						assert.Equal(t, http.StatusBadRequest, he.Code)
						assert.Contains(t, he.Message, "limit")
					}
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}
