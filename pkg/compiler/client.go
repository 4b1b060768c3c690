package compiler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/c-varun14/Yugantar/pkg/instructions"
	"github.com/c-varun14/Yugantar/pkg/llm"
	"github.com/c-varun14/Yugantar/pkg/prompt"
)

// ErrEmptyDocument is returned when the generator's response is empty after
// fence stripping.
var ErrEmptyDocument = errors.New("generator returned an empty document")

// ErrNoSource is returned when neither instructions nor a prompt drives the
// compilation.
var ErrNoSource = errors.New("either instructions or a prompt is required")

// Input selects the generation source. Instructions take priority when both
// are present; NarrativeGuide is optional narration context.
type Input struct {
	Instructions   string
	Prompt         string
	NarrativeGuide *instructions.NarrativeGuide
}

// Result is an accepted compilation. Warnings list structural markers or
// contract elements the document is missing — non-fatal, the document is
// still returned for best-effort display.
type Result struct {
	HTML     string
	Warnings []string
}

// Compiler performs the one-shot HTML compilation call.
type Compiler struct {
	llm     llm.Client
	builder *prompt.Builder
	model   string
}

// New creates a Compiler. model may be empty to use the client's default.
func New(client llm.Client, builder *prompt.Builder, model string) *Compiler {
	if client == nil {
		panic("compiler.New: client must not be nil")
	}
	if builder == nil {
		panic("compiler.New: builder must not be nil")
	}
	return &Compiler{llm: client, builder: builder, model: model}
}

// Compile requests the final document from the generator and validates it.
// The call blocks until the generator responds; no partial results are
// streamed at this stage.
func (c *Compiler) Compile(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.Instructions) == "" && strings.TrimSpace(input.Prompt) == "" {
		return nil, ErrNoSource
	}

	genInput := c.builder.BuildCompileInput(prompt.CompileRequest{
		Instructions:   input.Instructions,
		Prompt:         input.Prompt,
		NarrativeGuide: input.NarrativeGuide,
	})
	genInput.Model = c.model

	raw, err := c.llm.GenerateOnce(ctx, genInput)
	if err != nil {
		return nil, fmt.Errorf("compile visualization: %w", err)
	}

	html := StripMarkdownFences(raw)
	if html == "" {
		return nil, ErrEmptyDocument
	}

	var warnings []string
	for _, marker := range missingMarkers(html) {
		warnings = append(warnings, fmt.Sprintf("document is missing %s", marker))
	}
	warnings = append(warnings, ValidateDocumentContract(html)...)

	return &Result{HTML: html, Warnings: warnings}, nil
}
