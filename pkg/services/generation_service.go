package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/c-varun14/Yugantar/ent"
	"github.com/c-varun14/Yugantar/ent/promptlog"
	"github.com/c-varun14/Yugantar/pkg/compiler"
	"github.com/c-varun14/Yugantar/pkg/config"
	"github.com/c-varun14/Yugantar/pkg/events"
	"github.com/c-varun14/Yugantar/pkg/history"
	"github.com/c-varun14/Yugantar/pkg/instructions"
	"github.com/c-varun14/Yugantar/pkg/llm"
	"github.com/c-varun14/Yugantar/pkg/prompt"
	"github.com/google/uuid"
)

// replayRetention keeps a completed generation's event replay available for
// late page loads before the channel buffer is released.
const replayRetention = 5 * time.Minute

// GenerationPublisher is the event surface the pipeline publishes to.
// Implemented by events.EventPublisher; faked in tests.
type GenerationPublisher interface {
	PublishStatus(generationID, status, errMsg string) error
	PublishStreamChunk(generationID, delta string) error
	PublishNarrativeGuide(generationID string, payload events.NarrativeGuidePayload) error
	PublishVisualizationReady(generationID string, payload events.VisualizationReadyPayload) error
	CloseChannel(generationID string)
}

// PromptLogRecorder persists terminal generation records. Implemented by
// PromptLogService; nil disables persistence (write failures are swallowed
// either way — logging must never affect the user-visible result).
type PromptLogRecorder interface {
	Create(ctx context.Context, input CreatePromptLogInput) (*ent.PromptLog, error)
}

// StartGenerationInput is one generation request. Exactly one of Prompt or
// Instructions drives generation; instructions take priority when both are
// present.
type StartGenerationInput struct {
	UserID         string
	Prompt         string
	Instructions   string
	NarrativeGuide *instructions.NarrativeGuide
}

// StartedGeneration identifies an accepted generation request.
type StartedGeneration struct {
	GenerationID   string
	ConversationID string
	Channel        string
}

// inflight tracks one running generation for cancellation and supersession.
type inflight struct {
	userID string
	cancel context.CancelFunc
}

// GenerationService orchestrates the decode → compile → publish → persist
// pipeline. One generation may be in flight per user: starting a new one
// cancels the previous via its context, and a cancelled pipeline performs
// no final parse, no compile and no persistence — the abort is
// authoritative, so a slow stale generation can never overwrite a newer
// result.
type GenerationService struct {
	cfg       *config.Config
	llm       llm.Client
	compiler  *compiler.Compiler
	prompts   *prompt.Builder
	publisher GenerationPublisher
	recorder  PromptLogRecorder
	history   *history.Store

	mu       sync.Mutex
	inflight map[string]*inflight // generation id → state
	current  map[string]string    // user id → active generation id
}

// NewGenerationService creates a GenerationService. recorder may be nil.
func NewGenerationService(
	cfg *config.Config,
	llmClient llm.Client,
	comp *compiler.Compiler,
	prompts *prompt.Builder,
	publisher GenerationPublisher,
	recorder PromptLogRecorder,
	hist *history.Store,
) *GenerationService {
	if cfg == nil {
		panic("NewGenerationService: cfg must not be nil")
	}
	if llmClient == nil {
		panic("NewGenerationService: llmClient must not be nil")
	}
	if comp == nil {
		panic("NewGenerationService: compiler must not be nil")
	}
	if publisher == nil {
		panic("NewGenerationService: publisher must not be nil")
	}
	return &GenerationService{
		cfg:       cfg,
		llm:       llmClient,
		compiler:  comp,
		prompts:   prompts,
		publisher: publisher,
		recorder:  recorder,
		history:   hist,
		inflight:  make(map[string]*inflight),
		current:   make(map[string]string),
	}
}

// Start validates the request, supersedes the user's previous in-flight
// generation and launches the pipeline. Returns immediately with the
// generation id; progress arrives on the generation's event channel.
func (s *GenerationService) Start(input StartGenerationInput) (*StartedGeneration, error) {
	if input.UserID == "" {
		return nil, ErrUnauthenticated
	}
	promptText := strings.TrimSpace(input.Prompt)
	instrText := strings.TrimSpace(input.Instructions)
	if promptText == "" && instrText == "" {
		return nil, NewValidationError("prompt", "either prompt or instructions is required")
	}
	if len(promptText) > s.cfg.Limits.MaxPromptChars {
		return nil, NewValidationError("prompt",
			fmt.Sprintf("prompt exceeds maximum length of %d characters", s.cfg.Limits.MaxPromptChars))
	}
	if len(instrText) > s.cfg.Limits.MaxInstructionChars {
		return nil, NewValidationError("instructions",
			fmt.Sprintf("instructions exceed maximum length of %d characters", s.cfg.Limits.MaxInstructionChars))
	}
	if s.cfg.APIKey() == "" {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("generation credential is not configured: %s is not set", s.cfg.LLM.APIKeyEnv),
		}
	}

	generationID := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Limits.GenerationTimeout.Std())

	s.mu.Lock()
	// Supersede: a newer request makes any previous in-flight generation
	// for this user stale. Cancelling its context stops its stream, and
	// the pipeline's cancellation checks prevent any late mutation.
	if prevID, ok := s.current[input.UserID]; ok {
		if prev, ok := s.inflight[prevID]; ok {
			prev.cancel()
		}
	}
	s.inflight[generationID] = &inflight{userID: input.UserID, cancel: cancel}
	s.current[input.UserID] = generationID
	s.mu.Unlock()

	var conversationID string
	if s.history != nil {
		title := promptText
		if title == "" {
			title = "instructions"
		}
		conversationID = s.history.StartConversation(input.UserID, title)
	}

	go s.run(ctx, generationID, conversationID, StartGenerationInput{
		UserID:         input.UserID,
		Prompt:         promptText,
		Instructions:   instrText,
		NarrativeGuide: input.NarrativeGuide,
	})

	return &StartedGeneration{
		GenerationID:   generationID,
		ConversationID: conversationID,
		Channel:        events.GenerationChannel(generationID),
	}, nil
}

// Cancel aborts an in-flight generation. Idempotent for already-finished
// generations only in the sense that they are no longer found.
func (s *GenerationService) Cancel(generationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.inflight[generationID]
	if !ok {
		return ErrNotFound
	}
	g.cancel()
	return nil
}

// run executes one pipeline. All user-visible errors published here are
// taxonomy-level messages; raw upstream text never crosses this boundary.
func (s *GenerationService) run(ctx context.Context, generationID, conversationID string, input StartGenerationInput) {
	defer s.finish(generationID, input.UserID)

	instrText := input.Instructions
	guide := input.NarrativeGuide
	var doc *instructions.Document

	if instrText == "" {
		// Stream the instruction document from the generator, relaying
		// deltas and surfacing the guide the moment it parses.
		_ = s.publisher.PublishStatus(generationID, events.StatusStreaming, "")

		decoder := instructions.NewDecoder(func(g *instructions.NarrativeGuide) {
			_ = s.publisher.PublishNarrativeGuide(generationID, events.NarrativeGuidePayload{Guide: g})
		})

		genInput := s.prompts.BuildInstructionInput(input.Prompt)
		genInput.Model = s.cfg.LLM.InstructionModel

		stream, err := s.llm.GenerateStream(ctx, genInput)
		if err != nil {
			if ctx.Err() != nil {
				s.abort(generationID)
				return
			}
			slog.Error("Instruction stream failed to start", "generation_id", generationID, "error", err)
			s.fail(generationID, conversationID, input, nil, nil)
			return
		}

		for chunk := range stream {
			switch c := chunk.(type) {
			case *llm.TextChunk:
				decoder.Feed(c.Content)
				_ = s.publisher.PublishStreamChunk(generationID, c.Content)
			case *llm.UsageChunk:
				slog.Debug("Instruction stream usage",
					"generation_id", generationID,
					"input_tokens", c.InputTokens,
					"output_tokens", c.OutputTokens)
			case *llm.ErrorChunk:
				if ctx.Err() != nil {
					s.abort(generationID)
					return
				}
				slog.Error("Instruction stream error", "generation_id", generationID, "upstream", c.Message)
				s.fail(generationID, conversationID, input, nil, nil)
				return
			}
		}

		// An aborted stream skips the final parse and everything after it.
		if ctx.Err() != nil {
			s.abort(generationID)
			return
		}

		raw, parsed := decoder.Finalize()
		instrText = raw
		doc = parsed
		if guide == nil {
			guide = decoder.Guide()
		}
	} else {
		// Caller supplied instructions directly — parse best-effort and
		// surface the guide so the narration panel still populates.
		if parsed, err := instructions.Parse(instrText); err == nil {
			doc = parsed
			if guide == nil {
				guide = parsed.NarrativeGuide
			}
		}
		if guide != nil {
			guide.Normalize()
			_ = s.publisher.PublishNarrativeGuide(generationID, events.NarrativeGuidePayload{Guide: guide})
		}
	}

	_ = s.publisher.PublishStatus(generationID, events.StatusCompiling, "")

	result, err := s.compiler.Compile(ctx, compiler.Input{
		Instructions:   instrText,
		Prompt:         input.Prompt,
		NarrativeGuide: guide,
	})
	if err != nil {
		if ctx.Err() != nil {
			s.abort(generationID)
			return
		}
		slog.Error("Visualization compile failed", "generation_id", generationID, "error", err)
		s.fail(generationID, conversationID, input, doc, guide)
		return
	}

	if len(result.Warnings) > 0 {
		slog.Warn("Generated document has structural warnings",
			"generation_id", generationID, "warnings", result.Warnings)
	}

	_ = s.publisher.PublishVisualizationReady(generationID, events.VisualizationReadyPayload{
		HTML:     result.HTML,
		Warnings: result.Warnings,
	})
	_ = s.publisher.PublishStatus(generationID, events.StatusCompleted, "")

	s.persist(generationID, input, doc, guide, &result.HTML, nil)
	s.appendHistory(input.UserID, conversationID, input.Prompt, result.HTML)
}

// abort handles a cancelled pipeline: a single cancelled status, no error,
// no persistence.
func (s *GenerationService) abort(generationID string) {
	_ = s.publisher.PublishStatus(generationID, events.StatusCancelled, "")
}

// fail publishes the generic failure status and records the failed attempt.
func (s *GenerationService) fail(
	generationID, conversationID string,
	input StartGenerationInput,
	doc *instructions.Document,
	guide *instructions.NarrativeGuide,
) {
	_ = s.publisher.PublishStatus(generationID, events.StatusFailed, upstreamFailureMessage)
	errMsg := upstreamFailureMessage
	s.persist(generationID, input, doc, guide, nil, &errMsg)
	s.appendHistory(input.UserID, conversationID, input.Prompt, "")
}

// persist writes the terminal prompt log record. Failures are logged and
// swallowed — they never reach the user.
func (s *GenerationService) persist(
	generationID string,
	input StartGenerationInput,
	doc *instructions.Document,
	guide *instructions.NarrativeGuide,
	html *string,
	errMsg *string,
) {
	if s.recorder == nil {
		return
	}

	record := CreatePromptLogInput{
		UserID:       input.UserID,
		Prompt:       input.Prompt,
		HTML:         html,
		Status:       promptlog.StatusVisualizationComplete,
		ErrorMessage: errMsg,
	}
	if record.Prompt == "" {
		record.Prompt = input.Instructions
	}
	if errMsg != nil {
		record.Status = promptlog.StatusFailed
	}
	if doc != nil {
		if m, err := doc.AsMap(); err == nil {
			record.Instructions = m
		}
	}
	if guide != nil {
		if m, err := guideAsMap(guide); err == nil {
			record.NarrativeGuide = m
		}
	}

	persistCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := s.recorder.Create(persistCtx, record); err != nil {
		slog.Error("Failed to persist prompt log", "generation_id", generationID, "error", err)
	}
}

func (s *GenerationService) appendHistory(userID, conversationID, prompt, html string) {
	if s.history == nil || conversationID == "" {
		return
	}
	if err := s.history.Append(userID, conversationID, history.Entry{Prompt: prompt, HTML: html}); err != nil {
		slog.Warn("Failed to append conversation history", "conversation_id", conversationID, "error", err)
	}
}

// finish unregisters the generation and schedules the replay buffer release.
func (s *GenerationService) finish(generationID, userID string) {
	s.mu.Lock()
	if g, ok := s.inflight[generationID]; ok {
		g.cancel()
		delete(s.inflight, generationID)
	}
	if s.current[userID] == generationID {
		delete(s.current, userID)
	}
	s.mu.Unlock()

	time.AfterFunc(replayRetention, func() {
		s.publisher.CloseChannel(generationID)
	})
}

func guideAsMap(guide *instructions.NarrativeGuide) (map[string]any, error) {
	doc := instructions.Document{NarrativeGuide: guide}
	m, err := doc.AsMap()
	if err != nil {
		return nil, err
	}
	inner, ok := m["narrativeGuide"].(map[string]any)
	if !ok {
		return nil, errors.New("unexpected narrative guide shape")
	}
	return inner, nil
}
