package ai

import (
	"context"
	"time"

	"interview-ai-backend/internal/domain/ports/adapter"
)

var _ adapter.AIClient = (*NoopAIAdapter)(nil)

// NoopAIAdapter serves canned completions for local development so the whole
// flow can be exercised without provider keys. Question prompts yield a short
// scripted interview; JSON prompts yield a well-formed verdict.
type NoopAIAdapter struct{}

func NewNoopAIAdapter() *NoopAIAdapter {
	return &NoopAIAdapter{}
}

func (a *NoopAIAdapter) ModelName() string { return "noop-model" }

func (a *NoopAIAdapter) Complete(ctx context.Context, prompt string, format adapter.CompletionFormat) (string, error) {
	// Simulate slight processing time and respect ctx
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if format == adapter.FormatJSON {
		return `{"correct": true, "feedback": "Thanks, noted.", "correct_answer": "", "follow_up_question": "",` +
			` "ats_score": 50, "best_practices_score": 50, "suggestions": "No suggestions in development mode."}`, nil
	}
	return "Welcome, and thanks for joining today.\n" +
		"Could you start by telling me about yourself?\n" +
		"What interests you most about this role?\n" +
		"Where do you see yourself in five years?", nil
}
