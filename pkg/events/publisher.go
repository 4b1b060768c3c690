package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventPublisher publishes typed generation events to the connection
// manager. Each public method accepts one payload struct from payloads.go,
// fills its constant fields, and broadcasts it on the generation's channel.
type EventPublisher struct {
	manager *ConnectionManager
}

// NewEventPublisher creates an EventPublisher.
func NewEventPublisher(manager *ConnectionManager) *EventPublisher {
	if manager == nil {
		panic("events.NewEventPublisher: manager must not be nil")
	}
	return &EventPublisher{manager: manager}
}

// PublishStatus broadcasts a generation.status lifecycle event.
func (p *EventPublisher) PublishStatus(generationID, status, errMsg string) error {
	return p.publish(generationID, GenerationStatusPayload{
		Type:         EventTypeGenerationStatus,
		GenerationID: generationID,
		Status:       status,
		Error:        errMsg,
		Timestamp:    now(),
	})
}

// PublishStreamChunk broadcasts one instruction-stream delta.
func (p *EventPublisher) PublishStreamChunk(generationID, delta string) error {
	return p.publish(generationID, StreamChunkPayload{
		Type:         EventTypeStreamChunk,
		GenerationID: generationID,
		Delta:        delta,
		Timestamp:    now(),
	})
}

// PublishNarrativeGuide broadcasts the surfaced guide.
func (p *EventPublisher) PublishNarrativeGuide(generationID string, payload NarrativeGuidePayload) error {
	payload.Type = EventTypeNarrativeGuide
	payload.GenerationID = generationID
	payload.Timestamp = now()
	return p.publish(generationID, payload)
}

// PublishVisualizationReady broadcasts the compiled document.
func (p *EventPublisher) PublishVisualizationReady(generationID string, payload VisualizationReadyPayload) error {
	payload.Type = EventTypeVisualizationReady
	payload.GenerationID = generationID
	payload.Timestamp = now()
	return p.publish(generationID, payload)
}

// CloseChannel releases the generation's replay buffer once the channel is
// no longer needed.
func (p *EventPublisher) CloseChannel(generationID string) {
	p.manager.CloseChannel(GenerationChannel(generationID))
}

func (p *EventPublisher) publish(generationID string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	p.manager.Broadcast(GenerationChannel(generationID), raw)
	return nil
}

func now() string {
	return time.Now().Format(time.RFC3339Nano)
}
