package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c-varun14/Yugantar/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "validation error becomes 400",
			err:      services.NewValidationError("prompt", "either prompt or instructions is required"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "either prompt or instructions is required",
		},
		{
			name:     "configuration error is surfaced verbatim",
			err:      &services.ConfigurationError{Message: "generation credential is not configured: GEMINI_API_KEY is not set"},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "GEMINI_API_KEY is not set",
		},
		{
			name:     "not found becomes 404",
			err:      services.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "wrapped not found becomes 404",
			err:      fmt.Errorf("cancel: %w", services.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "unauthenticated becomes 401",
			err:      services.ErrUnauthenticated,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "user identity is required",
		},
		{
			name:     "unknown errors are hidden behind a generic 500",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.Contains(t, fmt.Sprintf("%v", he.Message), tt.wantMsg)
		})
	}
}
