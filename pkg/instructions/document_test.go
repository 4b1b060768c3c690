package instructions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrativeGuide_Validate(t *testing.T) {
	t.Run("non-decreasing timestamps pass", func(t *testing.T) {
		g := &NarrativeGuide{Steps: []GuideStep{
			{Timestamp: 0}, {Timestamp: 500}, {Timestamp: 500}, {Timestamp: 2000},
		}}
		assert.NoError(t, g.Validate())
	})

	t.Run("regressing timestamp fails", func(t *testing.T) {
		g := &NarrativeGuide{Steps: []GuideStep{
			{Timestamp: 1000}, {Timestamp: 400},
		}}
		err := g.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "precedes")
	})

	t.Run("nil guide passes", func(t *testing.T) {
		var g *NarrativeGuide
		assert.NoError(t, g.Validate())
	})
}

func TestNarrativeGuide_Normalize(t *testing.T) {
	g := &NarrativeGuide{Steps: []GuideStep{
		{Timestamp: 0}, {Timestamp: 250}, {Timestamp: 1500},
	}}
	g.Normalize()

	assert.Equal(t, 0.0, g.Steps[0].TimeInSeconds)
	assert.Equal(t, 0.25, g.Steps[1].TimeInSeconds)
	assert.Equal(t, 1.5, g.Steps[2].TimeInSeconds)

	var nilGuide *NarrativeGuide
	nilGuide.Normalize() // must not panic
}

func TestParse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc, err := Parse(`{"scene": {"title": "t"}, "narrativeGuide": {"steps": [{"timestamp": 2000, "text": "x"}]}}`)
		require.NoError(t, err)
		assert.Equal(t, "t", doc.Scene.Title)
		assert.Equal(t, 2.0, doc.NarrativeGuide.Steps[0].TimeInSeconds)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Parse(`{"scene":`)
		assert.Error(t, err)
	})
}

func TestDocument_AsMap(t *testing.T) {
	doc := &Document{
		Scene:          &Scene{Title: "t"},
		NarrativeGuide: &NarrativeGuide{Introduction: "intro"},
	}
	m, err := doc.AsMap()
	require.NoError(t, err)

	scene, ok := m["scene"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "t", scene["title"])
	guide, ok := m["narrativeGuide"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "intro", guide["introduction"])
}
