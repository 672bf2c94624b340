package ai

import (
	"context"

	"interview-ai-backend/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.AIClient = (*limitedAI)(nil)

type limitedAI struct {
	inner adapter.AIClient
	sem   chan struct{}
}

// NewLimitedAI caps the number of in-flight completions. Callers beyond the
// cap block until a slot frees or their context is done.
func NewLimitedAI(inner adapter.AIClient, maxConcurrent int) adapter.AIClient {
	if maxConcurrent <= 0 {
		return inner
	}
	return &limitedAI{
		inner: inner,
		sem:   make(chan struct{}, maxConcurrent),
	}
}

func (l *limitedAI) ModelName() string { return l.inner.ModelName() }

func (l *limitedAI) Complete(ctx context.Context, prompt string, format adapter.CompletionFormat) (string, error) {
	select {
	case l.sem <- struct{}{}:
		defer func() { <-l.sem }()
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return l.inner.Complete(ctx, prompt, format)
}
