package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/c-varun14/Yugantar/pkg/instructions"
	"github.com/c-varun14/Yugantar/pkg/llm"
)

// Builder builds the prompt text for both model calls. Thread-safe — no
// mutable state.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildInstructionInput builds the streamed instruction-generation exchange
// from the user's natural-language prompt.
func (b *Builder) BuildInstructionInput(userPrompt string) llm.GenerateInput {
	return llm.GenerateInput{
		SystemPrompt: instructionsSystem,
		UserPrompt:   strings.TrimSpace(userPrompt),
	}
}

// CompileRequest carries whichever generation sources the caller has.
// Instructions take priority over the raw prompt when both are present.
type CompileRequest struct {
	Instructions   string
	Prompt         string
	NarrativeGuide *instructions.NarrativeGuide
}

// BuildCompileInput builds the one-shot HTML compilation exchange.
func (b *Builder) BuildCompileInput(req CompileRequest) llm.GenerateInput {
	var task string
	if strings.TrimSpace(req.Instructions) != "" {
		task = fmt.Sprintf(compileFromInstructionsTask, strings.TrimSpace(req.Instructions))
	} else {
		task = fmt.Sprintf(compileFromPromptTask, strings.TrimSpace(req.Prompt))
	}

	if req.NarrativeGuide != nil && len(req.NarrativeGuide.Steps) > 0 {
		if guideJSON, err := json.MarshalIndent(req.NarrativeGuide, "", "  "); err == nil {
			task += fmt.Sprintf(narrationSection, guideJSON)
		}
	}

	return llm.GenerateInput{
		SystemPrompt: compilerSystem,
		UserPrompt:   task,
	}
}
