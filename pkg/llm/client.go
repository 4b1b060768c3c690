// Package llm provides the client for the hosted text-generation service.
// The service is treated as opaque: one streaming call and one one-shot
// call, no retries on either side.
package llm

import "context"

// GenerateInput is a single system+user exchange sent to the model.
type GenerateInput struct {
	SystemPrompt string
	UserPrompt   string

	// Model overrides the client's default model when set.
	Model string
}

// Chunk is one element of a streaming response.
type Chunk interface{ isChunk() }

// TextChunk carries an incremental piece of response text.
type TextChunk struct {
	Content string
}

// UsageChunk carries token accounting, delivered once near stream end.
type UsageChunk struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// ErrorChunk signals a mid-stream upstream failure. The stream closes after
// delivering it.
type ErrorChunk struct {
	Message string
}

func (*TextChunk) isChunk()  {}
func (*UsageChunk) isChunk() {}
func (*ErrorChunk) isChunk() {}

// Client is the text-generation service interface.
type Client interface {
	// GenerateStream starts a streaming generation and returns a channel of
	// chunks. The channel closes when the stream ends or ctx is cancelled;
	// cancelling ctx is the caller's abort mechanism.
	GenerateStream(ctx context.Context, input GenerateInput) (<-chan Chunk, error)

	// GenerateOnce performs a blocking one-shot generation and returns the
	// full response text.
	GenerateOnce(ctx context.Context, input GenerateInput) (string, error)
}
