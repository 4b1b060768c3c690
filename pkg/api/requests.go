package api

import (
	"github.com/c-varun14/Yugantar/pkg/instructions"
)

// GenerateRequest is the request body for POST /api/v1/visualizations.
// Either prompt or instructions must be set; instructions take priority.
// The narrativeGuide key matches the instruction document's own spelling so
// a client can pass a guide extracted from a previous stream back verbatim.
type GenerateRequest struct {
	Prompt         string                       `json:"prompt,omitempty"`
	Instructions   string                       `json:"instructions,omitempty"`
	NarrativeGuide *instructions.NarrativeGuide `json:"narrativeGuide,omitempty"`
}
