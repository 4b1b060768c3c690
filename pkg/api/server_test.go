package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-varun14/Yugantar/pkg/compiler"
	"github.com/c-varun14/Yugantar/pkg/config"
	"github.com/c-varun14/Yugantar/pkg/events"
	"github.com/c-varun14/Yugantar/pkg/history"
	"github.com/c-varun14/Yugantar/pkg/llm"
	"github.com/c-varun14/Yugantar/pkg/prompt"
	"github.com/c-varun14/Yugantar/pkg/services"
)

// stubLLM satisfies llm.Client for handler tests; the pipeline's output is
// irrelevant here.
type stubLLM struct{}

func (stubLLM) GenerateStream(ctx context.Context, _ llm.GenerateInput) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk)
	close(ch)
	return ch, nil
}

func (stubLLM) GenerateOnce(context.Context, llm.GenerateInput) (string, error) {
	return "<!DOCTYPE html><html><head></head><body></body></html>", nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg, err := config.Load("/nonexistent/yugantar.yaml")
	require.NoError(t, err)
	cfg.LLM.APIKeyEnv = "YUGANTAR_TEST_API_KEY"
	t.Setenv("YUGANTAR_TEST_API_KEY", "test-key")

	manager := events.NewConnectionManager(time.Second)
	builder := prompt.NewBuilder()
	client := stubLLM{}
	generation := services.NewGenerationService(
		cfg, client,
		compiler.New(client, builder, ""),
		builder,
		events.NewEventPublisher(manager),
		nil,
		history.NewStore(),
	)

	return NewServer(cfg, generation, nil, history.NewStore(), nil, manager)
}

func TestServer_RoutesRegistered(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestServer_SecurityHeaders(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"))
	assert.NotEmpty(t, resp.Header.Get("Permissions-Policy"))
}

func TestServer_ServesEmbeddedUI(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
