package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, ch <-chan Chunk) []Chunk {
	t.Helper()
	var out []Chunk
	for c := range ch {
		out = append(out, c)
	}
	return out
}

func TestGenerateOnce(t *testing.T) {
	var gotPath, gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"<html>"},{"text":"</html>"}]}}]}`)
	}))
	defer ts.Close()

	c := NewGeminiClient("test-key", "test-model", WithBaseURL(ts.URL))
	text, err := c.GenerateOnce(context.Background(), GenerateInput{UserPrompt: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "<html></html>", text)
	assert.Equal(t, "/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
}

func TestGenerateOnce_ModelOverride(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer ts.Close()

	c := NewGeminiClient("k", "default-model", WithBaseURL(ts.URL))
	_, err := c.GenerateOnce(context.Background(), GenerateInput{UserPrompt: "hi", Model: "other-model"})
	require.NoError(t, err)
	assert.Equal(t, "/models/other-model:generateContent", gotPath)
}

func TestGenerateOnce_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	}))
	defer ts.Close()

	c := NewGeminiClient("bad", "test-model", WithBaseURL(ts.URL))
	_, err := c.GenerateOnce(context.Background(), GenerateInput{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_ARGUMENT")
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateStream(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:streamGenerateContent", r.URL.Path)
		assert.Equal(t, "sse", r.URL.Query().Get("alt"))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"{\\\"scene\\\"\"}]}}]}\n\n")
		fmt.Fprint(w, ": keep-alive comment\n\n")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\": {}}\"}]}}]}\n\n")
		fmt.Fprint(w, "data: {\"candidates\":[],\"usageMetadata\":{\"promptTokenCount\":5,\"candidatesTokenCount\":9,\"totalTokenCount\":14}}\n\n")
	}))
	defer ts.Close()

	c := NewGeminiClient("k", "test-model", WithBaseURL(ts.URL))
	ch, err := c.GenerateStream(context.Background(), GenerateInput{UserPrompt: "hi"})
	require.NoError(t, err)

	chunks := collect(t, ch)
	require.Len(t, chunks, 3)
	assert.Equal(t, `{"scene"`, chunks[0].(*TextChunk).Content)
	assert.Equal(t, ": {}}", chunks[1].(*TextChunk).Content)
	usage := chunks[2].(*UsageChunk)
	assert.Equal(t, 5, usage.InputTokens)
	assert.Equal(t, 9, usage.OutputTokens)
	assert.Equal(t, 14, usage.TotalTokens)
}

func TestGenerateStream_ErrorEvent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"partial\"}]}}]}\n\n")
		fmt.Fprint(w, "data: {\"error\":{\"code\":429,\"message\":\"quota exceeded\",\"status\":\"RESOURCE_EXHAUSTED\"}}\n\n")
	}))
	defer ts.Close()

	c := NewGeminiClient("k", "test-model", WithBaseURL(ts.URL))
	ch, err := c.GenerateStream(context.Background(), GenerateInput{UserPrompt: "hi"})
	require.NoError(t, err)

	chunks := collect(t, ch)
	require.Len(t, chunks, 2)
	assert.Equal(t, "partial", chunks[0].(*TextChunk).Content)
	assert.Equal(t, "quota exceeded", chunks[1].(*ErrorChunk).Message)
}

func TestGenerateStream_HTTPErrorBeforeStream(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewGeminiClient("k", "test-model", WithBaseURL(ts.URL))
	_, err := c.GenerateStream(context.Background(), GenerateInput{UserPrompt: "hi"})
	assert.Error(t, err)
}

func TestWithKeyFunc_ResolvedPerRequest(t *testing.T) {
	var gotKeys []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKeys = append(gotKeys, r.Header.Get("x-goog-api-key"))
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer ts.Close()

	key := "first"
	c := NewGeminiClient("ignored", "test-model",
		WithBaseURL(ts.URL),
		WithKeyFunc(func() string { return key }))

	_, err := c.GenerateOnce(context.Background(), GenerateInput{UserPrompt: "hi"})
	require.NoError(t, err)
	key = "second"
	_, err = c.GenerateOnce(context.Background(), GenerateInput{UserPrompt: "hi"})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, gotKeys)
}
