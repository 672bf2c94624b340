package tts

import (
	"context"

	"interview-ai-backend/internal/domain/ports/adapter"
)

var _ adapter.SpeechSynthesizer = (*NoopSynthesizer)(nil)

// NoopSynthesizer is used when speech is disabled. It returns no data, which
// callers treat as "no audio for this question".
type NoopSynthesizer struct{}

func NewNoopSynthesizer() *NoopSynthesizer {
	return &NoopSynthesizer{}
}

func (NoopSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return nil, nil
}
