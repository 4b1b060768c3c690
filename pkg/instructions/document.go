// Package instructions defines the animation instruction document model and
// the incremental decoder that extracts it from a live model stream.
package instructions

import (
	"encoding/json"
	"fmt"
)

// Document is the structured animation description the model produces before
// the final HTML compilation pass. All recognized fields are optional — the
// model may truncate mid-stream, and downstream consumers work with whatever
// subset parsed.
type Document struct {
	Scene          *Scene           `json:"scene,omitempty"`
	Objects        []Object         `json:"objects,omitempty"`
	Animations     []Animation      `json:"animations,omitempty"`
	Timeline       []TimelineAction `json:"timeline,omitempty"`
	Controls       *Controls        `json:"controls,omitempty"`
	NarrativeGuide *NarrativeGuide  `json:"narrativeGuide,omitempty"`
}

// Scene describes the drawing surface and its framing.
type Scene struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Canvas      Canvas `json:"canvas,omitempty"`
}

// Canvas holds the drawing surface dimensions and background.
type Canvas struct {
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Background string `json:"background,omitempty"`
}

// Object is a drawable entity referenced by animations.
// Positional and visual properties are model-defined and kept free-form.
type Object struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Animation is a timed transform applied to an object. Duration and delay
// are milliseconds — the same unit as guide step timestamps.
type Animation struct {
	ID       string         `json:"id"`
	ObjectID string         `json:"objectId"`
	Type     string         `json:"type"`
	Duration int            `json:"duration"`
	Delay    int            `json:"delay,omitempty"`
	Easing   string         `json:"easing,omitempty"`
	From     map[string]any `json:"from,omitempty"`
	To       map[string]any `json:"to,omitempty"`
}

// TimelineAction is a time-stamped textual action referencing an animation.
type TimelineAction struct {
	Time        int    `json:"time"`
	Action      string `json:"action,omitempty"`
	AnimationID string `json:"animationId,omitempty"`
}

// Controls flags which playback capabilities the generated document exposes.
type Controls struct {
	PlayPause    bool `json:"playPause"`
	Reset        bool `json:"reset"`
	SpeedControl bool `json:"speedControl"`
	StepForward  bool `json:"stepForward"`
	StepBackward bool `json:"stepBackward"`
}

// NarrativeGuide is the timed narration subset of the instructions, used for
// subtitles and the accompanying narration sheet.
type NarrativeGuide struct {
	Introduction string      `json:"introduction,omitempty"`
	Steps        []GuideStep `json:"steps,omitempty"`
	Conclusion   string      `json:"conclusion,omitempty"`
}

// GuideStep is one narration entry. Timestamp is milliseconds from animation
// start; TimeInSeconds is derived and filled by Normalize.
type GuideStep struct {
	Timestamp     int     `json:"timestamp"`
	TimeInSeconds float64 `json:"timeInSeconds,omitempty"`
	Text          string  `json:"text"`
	Highlight     string  `json:"highlight,omitempty"`
}

// Normalize fills derived fields: each step's TimeInSeconds from its
// millisecond timestamp. Safe on a nil receiver.
func (g *NarrativeGuide) Normalize() {
	if g == nil {
		return
	}
	for i := range g.Steps {
		g.Steps[i].TimeInSeconds = float64(g.Steps[i].Timestamp) / 1000.0
	}
}

// Validate checks the guide's ordering invariant: step timestamps must be
// monotonically non-decreasing.
func (g *NarrativeGuide) Validate() error {
	if g == nil {
		return nil
	}
	for i := 1; i < len(g.Steps); i++ {
		if g.Steps[i].Timestamp < g.Steps[i-1].Timestamp {
			return fmt.Errorf("guide step %d: timestamp %dms precedes step %d at %dms",
				i, g.Steps[i].Timestamp, i-1, g.Steps[i-1].Timestamp)
		}
	}
	return nil
}

// Parse decodes a complete instruction document from text. Unlike the
// decoder's best-effort path, this requires the whole input to be one valid
// JSON object.
func Parse(text string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parse instruction document: %w", err)
	}
	doc.NarrativeGuide.Normalize()
	return &doc, nil
}

// AsMap converts the document to a generic JSON map for ent storage.
func (d *Document) AsMap() (map[string]any, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal instruction document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("convert instruction document: %w", err)
	}
	return m, nil
}
