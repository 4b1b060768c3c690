package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequest_FieldNames(t *testing.T) {
	// The request keys are a fixed client-facing interface; narrativeGuide
	// uses the instruction document's own spelling.
	body := `{
		"prompt": "explain quicksort",
		"instructions": "{}",
		"narrativeGuide": {
			"introduction": "intro",
			"steps": [{"timestamp": 1500, "text": "step"}]
		}
	}`

	var req GenerateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "explain quicksort", req.Prompt)
	assert.Equal(t, "{}", req.Instructions)
	require.NotNil(t, req.NarrativeGuide, "narrativeGuide must not be dropped")
	assert.Equal(t, "intro", req.NarrativeGuide.Introduction)
	require.Len(t, req.NarrativeGuide.Steps, 1)
	assert.Equal(t, 1500, req.NarrativeGuide.Steps[0].Timestamp)
}
