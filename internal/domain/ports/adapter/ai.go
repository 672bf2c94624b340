package adapter

import "context"

// CompletionFormat tells the provider how the response body must be shaped.
type CompletionFormat string

const (
	FormatText CompletionFormat = "text"
	FormatJSON CompletionFormat = "json_object"
)

// AIClient is the port for single-prompt LLM completions. The model is an
// untrusted, non-deterministic text generator: callers own the parsing and
// must not assume the returned text honors the requested format.
type AIClient interface {
	// Complete sends one user prompt and returns the assistant text.
	Complete(ctx context.Context, prompt string, format CompletionFormat) (string, error)

	// ModelName reports the configured model, for logs and metrics labels.
	ModelName() string
}
