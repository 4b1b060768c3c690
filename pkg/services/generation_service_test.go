package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-varun14/Yugantar/ent"
	"github.com/c-varun14/Yugantar/ent/promptlog"
	"github.com/c-varun14/Yugantar/pkg/compiler"
	"github.com/c-varun14/Yugantar/pkg/config"
	"github.com/c-varun14/Yugantar/pkg/events"
	"github.com/c-varun14/Yugantar/pkg/history"
	"github.com/c-varun14/Yugantar/pkg/instructions"
	"github.com/c-varun14/Yugantar/pkg/llm"
	"github.com/c-varun14/Yugantar/pkg/prompt"
)

const testInstructionStream = `{"scene": {"title": "t"}, "narrativeGuide": {"steps": [{"timestamp": 0, "text": "s"}]}, "animations": []}`

const testCompiledHTML = `<!DOCTYPE html><html><head></head><body><canvas id="animationCanvas"></canvas><script>
function stepForward(){}
function stepBackward(){}
function resetAnimation(){}
function playAnimation(){}
window.addEventListener("message", function(){});
</script></body></html>`

// scriptedLLM serves both the streaming and one-shot calls from canned data.
type scriptedLLM struct {
	streamChunks []llm.Chunk
	streamErr    error
	blockStream  bool // emit chunks, then hold the stream open until ctx cancels
	onceResp     string
	onceErr      error
}

func (s *scriptedLLM) GenerateStream(ctx context.Context, _ llm.GenerateInput) (<-chan llm.Chunk, error) {
	if s.streamErr != nil {
		return nil, s.streamErr
	}
	ch := make(chan llm.Chunk)
	go func() {
		defer close(ch)
		for _, c := range s.streamChunks {
			select {
			case ch <- c:
			case <-ctx.Done():
				return
			}
		}
		if s.blockStream {
			<-ctx.Done()
		}
	}()
	return ch, nil
}

func (s *scriptedLLM) GenerateOnce(_ context.Context, _ llm.GenerateInput) (string, error) {
	return s.onceResp, s.onceErr
}

// recordingPublisher captures every published event for assertions.
type recordingPublisher struct {
	mu       sync.Mutex
	statuses map[string][]string // generation id → status sequence
	chunks   map[string][]string
	guides   map[string][]*instructions.NarrativeGuide
	ready    map[string][]events.VisualizationReadyPayload
	errors   map[string][]string
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{
		statuses: make(map[string][]string),
		chunks:   make(map[string][]string),
		guides:   make(map[string][]*instructions.NarrativeGuide),
		ready:    make(map[string][]events.VisualizationReadyPayload),
		errors:   make(map[string][]string),
	}
}

func (p *recordingPublisher) PublishStatus(generationID, status, errMsg string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses[generationID] = append(p.statuses[generationID], status)
	if errMsg != "" {
		p.errors[generationID] = append(p.errors[generationID], errMsg)
	}
	return nil
}

func (p *recordingPublisher) PublishStreamChunk(generationID, delta string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chunks[generationID] = append(p.chunks[generationID], delta)
	return nil
}

func (p *recordingPublisher) PublishNarrativeGuide(generationID string, payload events.NarrativeGuidePayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.guides[generationID] = append(p.guides[generationID], payload.Guide)
	return nil
}

func (p *recordingPublisher) PublishVisualizationReady(generationID string, payload events.VisualizationReadyPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ready[generationID] = append(p.ready[generationID], payload)
	return nil
}

func (p *recordingPublisher) CloseChannel(string) {}

func (p *recordingPublisher) statusSeq(generationID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.statuses[generationID]))
	copy(out, p.statuses[generationID])
	return out
}

func (p *recordingPublisher) waitForTerminal(t *testing.T, generationID string) string {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		for _, s := range p.statusSeq(generationID) {
			if s == events.StatusCompleted || s == events.StatusFailed || s == events.StatusCancelled {
				return s
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("generation %s never reached a terminal status: %v", generationID, p.statusSeq(generationID))
	return ""
}

// memoryRecorder captures persisted records without a database.
type memoryRecorder struct {
	mu      sync.Mutex
	records []CreatePromptLogInput
	err     error
}

func (r *memoryRecorder) Create(_ context.Context, input CreatePromptLogInput) (*ent.PromptLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.records = append(r.records, input)
	return &ent.PromptLog{}, nil
}

func (r *memoryRecorder) snapshot() []CreatePromptLogInput {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CreatePromptLogInput, len(r.records))
	copy(out, r.records)
	return out
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("/nonexistent/yugantar.yaml")
	require.NoError(t, err)
	cfg.LLM.APIKeyEnv = "YUGANTAR_TEST_GEN_KEY"
	t.Setenv("YUGANTAR_TEST_GEN_KEY", "test-key")
	return cfg
}

func newTestService(t *testing.T, client llm.Client, pub GenerationPublisher, rec PromptLogRecorder) *GenerationService {
	t.Helper()
	builder := prompt.NewBuilder()
	return NewGenerationService(
		testConfig(t), client,
		compiler.New(client, builder, "test-model"),
		builder, pub, rec, history.NewStore(),
	)
}

func TestGeneration_FullPipeline(t *testing.T) {
	client := &scriptedLLM{
		streamChunks: []llm.Chunk{
			&llm.TextChunk{Content: testInstructionStream[:20]},
			&llm.TextChunk{Content: testInstructionStream[20:]},
			&llm.UsageChunk{InputTokens: 10, OutputTokens: 50},
		},
		onceResp: testCompiledHTML,
	}
	pub := newRecordingPublisher()
	rec := &memoryRecorder{}
	svc := newTestService(t, client, pub, rec)

	started, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "explain quicksort"})
	require.NoError(t, err)
	assert.Equal(t, events.GenerationChannel(started.GenerationID), started.Channel)

	status := pub.waitForTerminal(t, started.GenerationID)
	assert.Equal(t, events.StatusCompleted, status)

	seq := pub.statusSeq(started.GenerationID)
	assert.Equal(t, []string{events.StatusStreaming, events.StatusCompiling, events.StatusCompleted}, seq)

	pub.mu.Lock()
	assert.Len(t, pub.chunks[started.GenerationID], 2, "every text delta is relayed")
	require.Len(t, pub.guides[started.GenerationID], 1, "guide surfaces exactly once")
	require.Len(t, pub.ready[started.GenerationID], 1)
	assert.Equal(t, testCompiledHTML, pub.ready[started.GenerationID][0].HTML)
	assert.Empty(t, pub.ready[started.GenerationID][0].Warnings)
	pub.mu.Unlock()

	records := rec.snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, "alice", records[0].UserID)
	assert.Equal(t, promptlog.StatusVisualizationComplete, records[0].Status)
	require.NotNil(t, records[0].HTML)
	assert.Equal(t, testCompiledHTML, *records[0].HTML)
	assert.NotNil(t, records[0].Instructions)
}

func TestGeneration_Validation(t *testing.T) {
	svc := newTestService(t, &scriptedLLM{}, newRecordingPublisher(), nil)

	t.Run("no user", func(t *testing.T) {
		_, err := svc.Start(StartGenerationInput{Prompt: "x"})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("no source", func(t *testing.T) {
		_, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "   "})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("prompt too long", func(t *testing.T) {
		long := make([]byte, 5000)
		for i := range long {
			long[i] = 'a'
		}
		_, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: string(long)})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "prompt", validErr.Field)
	})
}

func TestGeneration_MissingCredential(t *testing.T) {
	svc := newTestService(t, &scriptedLLM{}, newRecordingPublisher(), nil)
	t.Setenv("YUGANTAR_TEST_GEN_KEY", "")

	_, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "x"})
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Message, "YUGANTAR_TEST_GEN_KEY")
}

func TestGeneration_CancelAbortsQuietly(t *testing.T) {
	client := &scriptedLLM{
		streamChunks: []llm.Chunk{&llm.TextChunk{Content: `{"scene":`}},
		blockStream:  true,
		onceResp:     testCompiledHTML,
	}
	pub := newRecordingPublisher()
	rec := &memoryRecorder{}
	svc := newTestService(t, client, pub, rec)

	started, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "x"})
	require.NoError(t, err)

	// Let the stream begin before aborting.
	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.chunks[started.GenerationID]) > 0
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, svc.Cancel(started.GenerationID))
	status := pub.waitForTerminal(t, started.GenerationID)

	assert.Equal(t, events.StatusCancelled, status)
	pub.mu.Lock()
	assert.Empty(t, pub.ready[started.GenerationID], "no document after abort")
	assert.Empty(t, pub.errors[started.GenerationID], "abort is not an error")
	pub.mu.Unlock()
	assert.Empty(t, rec.snapshot(), "aborted generations are not persisted")
}

func TestGeneration_CancelUnknownID(t *testing.T) {
	svc := newTestService(t, &scriptedLLM{}, newRecordingPublisher(), nil)
	assert.ErrorIs(t, svc.Cancel("nope"), ErrNotFound)
}

func TestGeneration_SupersessionCancelsPrevious(t *testing.T) {
	client := &scriptedLLM{
		streamChunks: []llm.Chunk{&llm.TextChunk{Content: `{"scene":`}},
		blockStream:  true,
		onceResp:     testCompiledHTML,
	}
	pub := newRecordingPublisher()
	rec := &memoryRecorder{}
	svc := newTestService(t, client, pub, rec)

	first, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "first"})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.chunks[first.GenerationID]) > 0
	}, 2*time.Second, 5*time.Millisecond)

	second, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "second"})
	require.NoError(t, err)
	require.NotEqual(t, first.GenerationID, second.GenerationID)

	assert.Equal(t, events.StatusCancelled, pub.waitForTerminal(t, first.GenerationID))
	for _, r := range rec.snapshot() {
		assert.NotEqual(t, "first", r.Prompt, "superseded generation must not persist")
	}
}

func TestGeneration_SupersessionIsPerUser(t *testing.T) {
	client := &scriptedLLM{
		streamChunks: []llm.Chunk{&llm.TextChunk{Content: `{"scene":`}},
		blockStream:  true,
		onceResp:     testCompiledHTML,
	}
	pub := newRecordingPublisher()
	svc := newTestService(t, client, pub, nil)

	alice, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "a"})
	require.NoError(t, err)
	_, err = svc.Start(StartGenerationInput{UserID: "bob", Prompt: "b"})
	require.NoError(t, err)

	// Bob's start must not cancel Alice's generation.
	time.Sleep(50 * time.Millisecond)
	for _, s := range pub.statusSeq(alice.GenerationID) {
		assert.NotEqual(t, events.StatusCancelled, s)
	}
}

func TestGeneration_UpstreamFailureIsGeneric(t *testing.T) {
	client := &scriptedLLM{
		streamChunks: []llm.Chunk{&llm.ErrorChunk{Message: "secret internal quota detail"}},
	}
	pub := newRecordingPublisher()
	rec := &memoryRecorder{}
	svc := newTestService(t, client, pub, rec)

	started, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "x"})
	require.NoError(t, err)

	assert.Equal(t, events.StatusFailed, pub.waitForTerminal(t, started.GenerationID))
	pub.mu.Lock()
	require.NotEmpty(t, pub.errors[started.GenerationID])
	for _, msg := range pub.errors[started.GenerationID] {
		assert.Equal(t, upstreamFailureMessage, msg)
		assert.NotContains(t, msg, "quota")
	}
	pub.mu.Unlock()

	records := rec.snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, promptlog.StatusFailed, records[0].Status)
}

func TestGeneration_CompileFailurePersistsFailedRecord(t *testing.T) {
	client := &scriptedLLM{
		streamChunks: []llm.Chunk{&llm.TextChunk{Content: testInstructionStream}},
		onceErr:      errors.New("upstream 500"),
	}
	pub := newRecordingPublisher()
	rec := &memoryRecorder{}
	svc := newTestService(t, client, pub, rec)

	started, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "x"})
	require.NoError(t, err)

	assert.Equal(t, events.StatusFailed, pub.waitForTerminal(t, started.GenerationID))
	records := rec.snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, promptlog.StatusFailed, records[0].Status)
	assert.Nil(t, records[0].HTML)
}

func TestGeneration_PersistenceFailureIsSwallowed(t *testing.T) {
	client := &scriptedLLM{
		streamChunks: []llm.Chunk{&llm.TextChunk{Content: testInstructionStream}},
		onceResp:     testCompiledHTML,
	}
	pub := newRecordingPublisher()
	rec := &memoryRecorder{err: errors.New("connection refused")}
	svc := newTestService(t, client, pub, rec)

	started, err := svc.Start(StartGenerationInput{UserID: "alice", Prompt: "x"})
	require.NoError(t, err)

	// The pipeline still completes: persistence never affects the result.
	assert.Equal(t, events.StatusCompleted, pub.waitForTerminal(t, started.GenerationID))
}

func TestGeneration_CallerSuppliedInstructionsSkipStreaming(t *testing.T) {
	client := &scriptedLLM{
		streamErr: errors.New("stream must not be called"),
		onceResp:  testCompiledHTML,
	}
	pub := newRecordingPublisher()
	svc := newTestService(t, client, pub, nil)

	started, err := svc.Start(StartGenerationInput{
		UserID:       "alice",
		Instructions: testInstructionStream,
	})
	require.NoError(t, err)

	assert.Equal(t, events.StatusCompleted, pub.waitForTerminal(t, started.GenerationID))
	seq := pub.statusSeq(started.GenerationID)
	assert.NotContains(t, seq, events.StatusStreaming)

	pub.mu.Lock()
	assert.Empty(t, pub.chunks[started.GenerationID])
	assert.Len(t, pub.guides[started.GenerationID], 1, "guide parsed from supplied instructions")
	pub.mu.Unlock()
}
