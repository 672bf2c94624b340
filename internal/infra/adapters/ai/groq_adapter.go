package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"interview-ai-backend/internal/domain/ports/adapter"
	"interview-ai-backend/internal/infra/metrics"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.AIClient = (*GroqAdapter)(nil)

// GroqAdapter talks to Groq's OpenAI-compatible gateway. Base URL defaults
// to https://api.groq.com/openai/v1; any OpenAI-compatible endpoint works.
type GroqAdapter struct {
	client openai.Client
	model  string
}

func NewGroqAdapter(apiKey, base, model string, timeout time.Duration) (*GroqAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("groq api key empty")
	}
	if base == "" {
		base = "https://api.groq.com/openai/v1"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(strings.TrimRight(base, "/")),
		option.WithRequestTimeout(timeout),
	)
	return &GroqAdapter{client: client, model: model}, nil
}

func (g *GroqAdapter) ModelName() string { return g.model }

func (g *GroqAdapter) Complete(ctx context.Context, prompt string, format adapter.CompletionFormat) (string, error) {
	start := time.Now()
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if format == adapter.FormatJSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	metrics.ObserveAICall("groq", g.model, start, err)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("groq: no choice content")
	}
	return resp.Choices[0].Message.Content, nil
}
