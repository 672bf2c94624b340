package ai

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"interview-ai-backend/internal/config"
	"interview-ai-backend/internal/domain"
	"interview-ai-backend/internal/domain/ports/adapter"
)

var _ adapter.AIClient = (*breakerAI)(nil)

// breakerAI stops hammering a failing provider. Once the failure ratio trips
// the breaker, calls fail fast with ErrUpstream until the cool-down elapses.
type breakerAI struct {
	inner adapter.AIClient
	cb    *gobreaker.CircuitBreaker[string]
}

// NewBreakerAI wraps inner with a circuit breaker. A disabled config returns
// inner unchanged.
func NewBreakerAI(inner adapter.AIClient, cfg config.BreakerConfig, logger *zerolog.Logger) adapter.AIClient {
	if !cfg.Enabled {
		return inner
	}
	settings := gobreaker.Settings{
		Name:        "ai-" + inner.ModelName(),
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests && failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).
				Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}
	return &breakerAI{inner: inner, cb: gobreaker.NewCircuitBreaker[string](settings)}
}

func (b *breakerAI) ModelName() string { return b.inner.ModelName() }

func (b *breakerAI) Complete(ctx context.Context, prompt string, format adapter.CompletionFormat) (string, error) {
	out, err := b.cb.Execute(func() (string, error) {
		return b.inner.Complete(ctx, prompt, format)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return out, err
}
