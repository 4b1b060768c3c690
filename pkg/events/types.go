// Package events provides real-time delivery of generation progress to
// browser clients over WebSocket.
//
// Channel model: each generation has its own channel ("generation:{id}").
// Clients subscribe after receiving the generation id from the submit
// endpoint. Because the model stream may begin before the client's
// subscribe arrives, every channel keeps a bounded replay buffer; new
// subscribers receive buffered events in order before live ones, so a late
// subscriber still sees the narrative guide and the final document.
//
// Event flow for one generation:
//
//	generation.status      {status: "streaming"}
//	stream.chunk           {delta: "..."}  (repeated; replayed from buffer)
//	narrative_guide.ready  {guide: {...}}  (at most once, may precede stream end)
//	visualization.ready    {html: "...", warnings: [...]}
//	generation.status      {status: "completed" | "failed" | "cancelled"}
package events

// Event types published on generation channels.
const (
	// EventTypeGenerationStatus marks lifecycle transitions.
	EventTypeGenerationStatus = "generation.status"

	// EventTypeStreamChunk carries one instruction-stream text delta.
	// Clients concatenate deltas locally for a live typing effect.
	EventTypeStreamChunk = "stream.chunk"

	// EventTypeNarrativeGuide delivers the guide the moment it parses,
	// even while the outer instruction object is still streaming.
	EventTypeNarrativeGuide = "narrative_guide.ready"

	// EventTypeVisualizationReady delivers the compiled document.
	EventTypeVisualizationReady = "visualization.ready"
)

// Generation lifecycle status values (GenerationStatusPayload.Status).
const (
	StatusStreaming = "streaming"
	StatusCompiling = "compiling"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// GenerationChannel returns the channel name for a generation's events.
func GenerationChannel(generationID string) string {
	return "generation:" + generationID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // e.g. "generation:abc-123"
}
