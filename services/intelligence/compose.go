package ai

import (
	"context"
	"fmt"
	"strings"

	"postpilot/models"
)

const maxContextTurns = 6

// ComposeDraft generates a LinkedIn post draft from the prompt, feeding the
// recent conversation turns back into the model so follow-up prompts refine
// the previous draft instead of starting over.
func (s *DefaultAIService) ComposeDraft(ctx context.Context, userID string, req models.AIComposeRequest) (*models.AIComposeResponse, error) {
	aiCtx, err := s.ctxStore.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	prompt := buildPrompt(aiCtx, req)
	draft, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate draft: %w", err)
	}
	draft = strings.TrimSpace(draft)

	aiCtx.Turns = append(aiCtx.Turns, models.AITurn{Prompt: req.Prompt, Draft: draft})
	if len(aiCtx.Turns) > maxContextTurns {
		aiCtx.Turns = aiCtx.Turns[len(aiCtx.Turns)-maxContextTurns:]
	}
	if err := s.ctxStore.Set(ctx, userID, aiCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	return &models.AIComposeResponse{Draft: draft}, nil
}

// ResetContext drops the user's composing session.
func (s *DefaultAIService) ResetContext(ctx context.Context, userID string) error {
	return s.ctxStore.Clear(ctx, userID)
}

func buildPrompt(aiCtx *models.AIContext, req models.AIComposeRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a professional LinkedIn ghostwriter. ")
	sb.WriteString("Write a single LinkedIn post, no hashtag spam, no preamble.\n")
	if req.Tone != "" {
		sb.WriteString("Tone: " + req.Tone + "\n")
	}
	for _, turn := range aiCtx.Turns {
		sb.WriteString("\nEarlier request: " + turn.Prompt)
		sb.WriteString("\nEarlier draft: " + turn.Draft + "\n")
	}
	sb.WriteString("\nRequest: " + req.Prompt + "\n")
	return sb.String()
}
