package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c-varun14/Yugantar/pkg/instructions"
)

func TestBuildInstructionInput(t *testing.T) {
	b := NewBuilder()
	in := b.BuildInstructionInput("  explain gravity  ")

	assert.Equal(t, "explain gravity", in.UserPrompt)
	assert.Contains(t, in.SystemPrompt, "narrativeGuide")
	assert.Contains(t, in.SystemPrompt, "milliseconds")
}

func TestBuildCompileInput_ContractNames(t *testing.T) {
	b := NewBuilder()
	in := b.BuildCompileInput(CompileRequest{Prompt: "a pendulum"})

	assert.Contains(t, in.SystemPrompt, CanvasID)
	for _, fn := range EntryPoints {
		assert.Contains(t, in.SystemPrompt, fn+"()")
	}
	assert.Contains(t, in.SystemPrompt, `"message"`)
	assert.Contains(t, in.UserPrompt, "a pendulum")
}

func TestBuildCompileInput_InstructionsPriority(t *testing.T) {
	b := NewBuilder()
	in := b.BuildCompileInput(CompileRequest{
		Instructions: `{"scene": {}}`,
		Prompt:       "should not appear",
	})

	assert.Contains(t, in.UserPrompt, `{"scene": {}}`)
	assert.NotContains(t, in.UserPrompt, "should not appear")
}

func TestBuildCompileInput_NarrationSection(t *testing.T) {
	b := NewBuilder()

	t.Run("guide with steps is appended", func(t *testing.T) {
		in := b.BuildCompileInput(CompileRequest{
			Prompt: "x",
			NarrativeGuide: &instructions.NarrativeGuide{
				Steps: []instructions.GuideStep{{Timestamp: 500, Text: "watch the middle"}},
			},
		})
		assert.Contains(t, in.UserPrompt, "watch the middle")
		assert.Contains(t, in.UserPrompt, "Narration")
	})

	t.Run("empty guide is omitted", func(t *testing.T) {
		in := b.BuildCompileInput(CompileRequest{
			Prompt:         "x",
			NarrativeGuide: &instructions.NarrativeGuide{},
		})
		assert.NotContains(t, in.UserPrompt, "Narration")
	})
}
