package ai

import (
	"context"
	"errors"
	"time"

	"google.golang.org/genai"

	"interview-ai-backend/internal/domain/ports/adapter"
	"interview-ai-backend/internal/infra/metrics"
)

var _ adapter.AIClient = (*GeminiAdapter)(nil)

// GeminiAdapter completes prompts against the Gemini API using the official
// SDK. JSON-format requests set the response MIME type so the model is held
// to emitting a JSON document.
type GeminiAdapter struct {
	client *genai.Client
	model  string
}

func NewGeminiAdapter(ctx context.Context, apiKey, model string) (*GeminiAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: empty api key")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiAdapter{client: c, model: model}, nil
}

func (g *GeminiAdapter) ModelName() string { return g.model }

func (g *GeminiAdapter) Complete(ctx context.Context, prompt string, format adapter.CompletionFormat) (string, error) {
	start := time.Now()
	cfg := &genai.GenerateContentConfig{}
	if format == adapter.FormatJSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	metrics.ObserveAICall("gemini", g.model, start, err)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: no candidate content")
	}
	return text, nil
}
