package ai

import (
	"context"

	"postpilot/models"
)

// AIService turns prompts into LinkedIn post drafts.
type AIService interface {
	ComposeDraft(ctx context.Context, userID string, req models.AIComposeRequest) (*models.AIComposeResponse, error)
	ResetContext(ctx context.Context, userID string) error
}

// DefaultAIService is the Gemini-backed implementation.
type DefaultAIService struct {
	client   *GeminiClient
	ctxStore *RedisContextStore
}

// NewDefaultAIService constructs the AI composer.
func NewDefaultAIService(apiKey string, ctxStore *RedisContextStore) *DefaultAIService {
	return &DefaultAIService{
		client:   NewGeminiClient(apiKey),
		ctxStore: ctxStore,
	}
}
