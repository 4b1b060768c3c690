package events

import "github.com/c-varun14/Yugantar/pkg/instructions"

// GenerationStatusPayload is the payload for generation.status events.
type GenerationStatusPayload struct {
	Type         string `json:"type"` // always EventTypeGenerationStatus
	GenerationID string `json:"generation_id"`
	Status       string `json:"status"`          // streaming, compiling, completed, failed, cancelled
	Error        string `json:"error,omitempty"` // taxonomy-level message on failed; never raw upstream text
	Timestamp    string `json:"timestamp"`       // RFC3339Nano
}

// StreamChunkPayload is the payload for stream.chunk events — one
// instruction-stream delta, high frequency, small.
type StreamChunkPayload struct {
	Type         string `json:"type"` // always EventTypeStreamChunk
	GenerationID string `json:"generation_id"`
	Delta        string `json:"delta"`
	Timestamp    string `json:"timestamp"` // RFC3339Nano
}

// NarrativeGuidePayload is the payload for narrative_guide.ready events.
type NarrativeGuidePayload struct {
	Type         string                       `json:"type"` // always EventTypeNarrativeGuide
	GenerationID string                       `json:"generation_id"`
	Guide        *instructions.NarrativeGuide `json:"guide"`
	Timestamp    string                       `json:"timestamp"` // RFC3339Nano
}

// VisualizationReadyPayload is the payload for visualization.ready events.
type VisualizationReadyPayload struct {
	Type         string   `json:"type"` // always EventTypeVisualizationReady
	GenerationID string   `json:"generation_id"`
	HTML         string   `json:"html"`
	Warnings     []string `json:"warnings,omitempty"` // structural/contract warnings, non-fatal
	Timestamp    string   `json:"timestamp"`          // RFC3339Nano
}
