package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-varun14/Yugantar/ent/promptlog"
	"github.com/c-varun14/Yugantar/test/util"
)

func setupPromptLogService(t *testing.T) *PromptLogService {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)
	return NewPromptLogService(entClient)
}

func strPtr(s string) *string { return &s }

func TestPromptLog_CreateRoundTrip(t *testing.T) {
	svc := setupPromptLogService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, CreatePromptLogInput{
		UserID: "alice",
		Prompt: "explain quicksort",
		Instructions: map[string]any{
			"scene": map[string]any{"title": "Quicksort"},
		},
		NarrativeGuide: map[string]any{"introduction": "intro"},
		HTML:           strPtr("<html></html>"),
		Status:         promptlog.StatusVisualizationComplete,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "alice", record.UserID)
	assert.Equal(t, "explain quicksort", record.Prompt)
	assert.Equal(t, promptlog.StatusVisualizationComplete, record.Status)
	require.NotNil(t, record.HTML)
	assert.Equal(t, "<html></html>", *record.HTML)
	assert.Nil(t, record.ErrorMessage)
	assert.NotZero(t, record.CreatedAt)

	scene, ok := record.Instructions["scene"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Quicksort", scene["title"])
}

func TestPromptLog_CreateFailedRecord(t *testing.T) {
	svc := setupPromptLogService(t)

	record, err := svc.Create(context.Background(), CreatePromptLogInput{
		UserID:       "alice",
		Prompt:       "explain quicksort",
		Status:       promptlog.StatusFailed,
		ErrorMessage: strPtr("visualization generation failed"),
	})
	require.NoError(t, err)

	assert.Equal(t, promptlog.StatusFailed, record.Status)
	assert.Nil(t, record.HTML, "failed generations carry no document")
	require.NotNil(t, record.ErrorMessage)
	assert.Equal(t, "visualization generation failed", *record.ErrorMessage)
}

func TestPromptLog_CreateValidation(t *testing.T) {
	svc := setupPromptLogService(t)

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreatePromptLogInput{
			Prompt: "x",
			Status: promptlog.StatusFailed,
		})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("missing prompt", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreatePromptLogInput{
			UserID: "alice",
			Status: promptlog.StatusFailed,
		})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "prompt", validErr.Field)
	})
}

func TestPromptLog_ListOrderingAndScoping(t *testing.T) {
	svc := setupPromptLogService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, CreatePromptLogInput{
			UserID: "alice",
			Prompt: fmt.Sprintf("prompt %d", i),
			Status: promptlog.StatusVisualizationComplete,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, CreatePromptLogInput{
		UserID: "bob",
		Prompt: "bob's prompt",
		Status: promptlog.StatusVisualizationComplete,
	})
	require.NoError(t, err)

	records, err := svc.List(ctx, "alice", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 3, "listing is scoped to the user")

	// Most recent first.
	assert.Equal(t, "prompt 2", records[0].Prompt)
	assert.Equal(t, "prompt 0", records[2].Prompt)
}

func TestPromptLog_ListPagination(t *testing.T) {
	svc := setupPromptLogService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, CreatePromptLogInput{
			UserID: "alice",
			Prompt: fmt.Sprintf("prompt %d", i),
			Status: promptlog.StatusVisualizationComplete,
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, "alice", 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "prompt 2", page[0].Prompt)
	assert.Equal(t, "prompt 1", page[1].Prompt)

	// Out-of-range limits fall back to the default page size.
	all, err := svc.List(ctx, "alice", 500, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestPromptLog_ListRequiresUser(t *testing.T) {
	svc := setupPromptLogService(t)
	_, err := svc.List(context.Background(), "", 10, 0)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
