package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient talks to the Google Generative Language API over HTTPS.
// Streaming uses the server-sent-events variant of streamGenerateContent.
type GeminiClient struct {
	apiKey     string
	keyFunc    func() string
	model      string
	baseURL    string
	httpClient *http.Client
}

// GeminiOption customizes a GeminiClient.
type GeminiOption func(*GeminiClient)

// WithBaseURL overrides the API endpoint (used by tests and proxies).
func WithBaseURL(url string) GeminiOption {
	return func(c *GeminiClient) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) GeminiOption {
	return func(c *GeminiClient) { c.httpClient = hc }
}

// WithKeyFunc resolves the API key per request instead of at construction,
// so a credential set after startup is picked up without a restart.
func WithKeyFunc(f func() string) GeminiOption {
	return func(c *GeminiClient) { c.keyFunc = f }
}

// NewGeminiClient creates a client for the given model.
func NewGeminiClient(apiKey, model string, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// geminiRequest is the generateContent request body.
type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the subset of the response we consume. The same shape
// arrives per-event on the streaming endpoint.
type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *GeminiClient) resolveModel(input GenerateInput) string {
	if input.Model != "" {
		return input.Model
	}
	return c.model
}

func (c *GeminiClient) newRequest(ctx context.Context, url string, input GenerateInput) (*http.Request, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: input.UserPrompt}}},
		},
	}
	if input.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: input.SystemPrompt}}}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("create generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	key := c.apiKey
	if c.keyFunc != nil {
		key = c.keyFunc()
	}
	req.Header.Set("x-goog-api-key", key)
	return req, nil
}

// GenerateOnce performs a blocking generateContent call and returns the
// concatenated candidate text.
func (c *GeminiClient) GenerateOnce(ctx context.Context, input GenerateInput) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.resolveModel(input))
	req, err := c.newRequest(ctx, url, input)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp.StatusCode, raw)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parse generation response: %w", err)
	}
	return candidateText(&parsed), nil
}

// GenerateStream starts a streamGenerateContent call with SSE framing and
// relays text deltas on the returned channel. The producer goroutine exits
// when the stream ends, an error chunk is delivered, or ctx is cancelled.
func (c *GeminiClient) GenerateStream(ctx context.Context, input GenerateInput) (<-chan Chunk, error) {
	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", c.baseURL, c.resolveModel(input))
	req, err := c.newRequest(ctx, url, input)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("streaming request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, apiError(resp.StatusCode, raw)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				continue
			}

			var event geminiResponse
			if err := json.Unmarshal([]byte(data), &event); err != nil {
				// Skip unparseable keep-alive frames.
				continue
			}
			if event.Error != nil {
				send(ctx, ch, &ErrorChunk{Message: event.Error.Message})
				return
			}
			if text := candidateText(&event); text != "" {
				if !send(ctx, ch, &TextChunk{Content: text}) {
					return
				}
			}
			if u := event.UsageMetadata; u != nil {
				if !send(ctx, ch, &UsageChunk{
					InputTokens:  u.PromptTokenCount,
					OutputTokens: u.CandidatesTokenCount,
					TotalTokens:  u.TotalTokenCount,
				}) {
					return
				}
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			send(ctx, ch, &ErrorChunk{Message: err.Error()})
		}
	}()

	return ch, nil
}

// send delivers a chunk unless ctx is done. Reports whether delivery happened.
func send(ctx context.Context, ch chan<- Chunk, chunk Chunk) bool {
	select {
	case ch <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

func candidateText(resp *geminiResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func apiError(status int, body []byte) error {
	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil {
		return fmt.Errorf("generation service error (%d %s): %s", status, parsed.Error.Status, parsed.Error.Message)
	}
	return fmt.Errorf("generation service error (%d)", status)
}
