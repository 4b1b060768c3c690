package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-varun14/Yugantar/pkg/instructions"
)

func lastReplayed(t *testing.T, m *ConnectionManager, generationID string) map[string]any {
	t.Helper()
	events := m.snapshotReplay(GenerationChannel(generationID))
	require.NotEmpty(t, events)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(events[len(events)-1], &msg))
	return msg
}

func TestEventPublisher_Status(t *testing.T) {
	m := NewConnectionManager(time.Second)
	p := NewEventPublisher(m)

	require.NoError(t, p.PublishStatus("gen-1", StatusFailed, "visualization generation failed"))

	msg := lastReplayed(t, m, "gen-1")
	assert.Equal(t, EventTypeGenerationStatus, msg["type"])
	assert.Equal(t, "gen-1", msg["generation_id"])
	assert.Equal(t, StatusFailed, msg["status"])
	assert.Equal(t, "visualization generation failed", msg["error"])
	assert.NotEmpty(t, msg["timestamp"])
}

func TestEventPublisher_StreamChunk(t *testing.T) {
	m := NewConnectionManager(time.Second)
	p := NewEventPublisher(m)

	require.NoError(t, p.PublishStreamChunk("gen-1", `{"scene":`))

	msg := lastReplayed(t, m, "gen-1")
	assert.Equal(t, EventTypeStreamChunk, msg["type"])
	assert.Equal(t, `{"scene":`, msg["delta"])
}

func TestEventPublisher_NarrativeGuide(t *testing.T) {
	m := NewConnectionManager(time.Second)
	p := NewEventPublisher(m)

	guide := &instructions.NarrativeGuide{
		Introduction: "intro",
		Steps:        []instructions.GuideStep{{Timestamp: 1000, TimeInSeconds: 1, Text: "step"}},
	}
	require.NoError(t, p.PublishNarrativeGuide("gen-1", NarrativeGuidePayload{Guide: guide}))

	msg := lastReplayed(t, m, "gen-1")
	assert.Equal(t, EventTypeNarrativeGuide, msg["type"])
	inner, ok := msg["guide"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "intro", inner["introduction"])
}

func TestEventPublisher_VisualizationReady(t *testing.T) {
	m := NewConnectionManager(time.Second)
	p := NewEventPublisher(m)

	require.NoError(t, p.PublishVisualizationReady("gen-1", VisualizationReadyPayload{
		HTML:     "<html></html>",
		Warnings: []string{"document has no canvas with id \"animationCanvas\""},
	}))

	msg := lastReplayed(t, m, "gen-1")
	assert.Equal(t, EventTypeVisualizationReady, msg["type"])
	assert.Equal(t, "<html></html>", msg["html"])
	assert.Len(t, msg["warnings"], 1)
}

func TestEventPublisher_CloseChannel(t *testing.T) {
	m := NewConnectionManager(time.Second)
	p := NewEventPublisher(m)

	require.NoError(t, p.PublishStatus("gen-1", StatusCompleted, ""))
	p.CloseChannel("gen-1")
	assert.Empty(t, m.snapshotReplay(GenerationChannel("gen-1")))
}
