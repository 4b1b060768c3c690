package api

import (
	"time"

	"github.com/c-varun14/Yugantar/ent"
)

// GenerateResponse acknowledges an accepted generation request. Progress and
// the finished document arrive on the named WebSocket channel.
type GenerateResponse struct {
	GenerationID   string `json:"generation_id"`
	ConversationID string `json:"conversation_id,omitempty"`
	Channel        string `json:"channel"`
	Status         string `json:"status"` // always "accepted"
}

// CancelResponse acknowledges a cancellation request.
type CancelResponse struct {
	Status string `json:"status"` // always "cancelling"
}

// VisualizationRecord is one persisted prompt log in list responses. The
// stored HTML is included so past visualizations can be replayed.
type VisualizationRecord struct {
	ID           string         `json:"id"`
	Prompt       string         `json:"prompt"`
	Status       string         `json:"status"`
	Instructions map[string]any `json:"instructions,omitempty"`
	HTML         string         `json:"html,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toVisualizationRecord(record *ent.PromptLog) VisualizationRecord {
	out := VisualizationRecord{
		ID:           record.ID,
		Prompt:       record.Prompt,
		Status:       string(record.Status),
		Instructions: record.Instructions,
		CreatedAt:    record.CreatedAt,
	}
	if record.HTML != nil {
		out.HTML = *record.HTML
	}
	if record.ErrorMessage != nil {
		out.ErrorMessage = *record.ErrorMessage
	}
	return out
}
