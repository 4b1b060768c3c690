package services

import (
	"context"
	"fmt"

	"github.com/c-varun14/Yugantar/ent"
	"github.com/c-varun14/Yugantar/ent/promptlog"
	"github.com/google/uuid"
)

// CreatePromptLogInput is the domain-level data for one prompt log record.
// Artifact fields are nil when the generation did not produce them.
type CreatePromptLogInput struct {
	UserID         string
	Prompt         string
	Instructions   map[string]any
	NarrativeGuide map[string]any
	HTML           *string
	Status         promptlog.Status
	ErrorMessage   *string
}

// PromptLogService persists and lists prompt log records. It never mutates
// existing rows — a generation writes exactly one terminal record.
type PromptLogService struct {
	client *ent.Client
}

// NewPromptLogService creates a PromptLogService.
func NewPromptLogService(client *ent.Client) *PromptLogService {
	if client == nil {
		panic("NewPromptLogService: client must not be nil")
	}
	return &PromptLogService{client: client}
}

// Create writes one prompt log record.
func (s *PromptLogService) Create(ctx context.Context, input CreatePromptLogInput) (*ent.PromptLog, error) {
	if input.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if input.Prompt == "" {
		return nil, NewValidationError("prompt", "prompt is required")
	}

	builder := s.client.PromptLog.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetPrompt(input.Prompt).
		SetStatus(input.Status)

	if input.Instructions != nil {
		builder.SetInstructions(input.Instructions)
	}
	if input.NarrativeGuide != nil {
		builder.SetNarrativeGuide(input.NarrativeGuide)
	}
	if input.HTML != nil {
		builder.SetHTML(*input.HTML)
	}
	if input.ErrorMessage != nil {
		builder.SetErrorMessage(*input.ErrorMessage)
	}

	record, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt log: %w", err)
	}
	return record, nil
}

// List returns a user's prompt logs, most recent first.
func (s *PromptLogService) List(ctx context.Context, userID string, limit, offset int) ([]*ent.PromptLog, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.client.PromptLog.Query().
		Where(promptlog.UserIDEQ(userID)).
		Order(ent.Desc(promptlog.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompt logs: %w", err)
	}
	return records, nil
}
