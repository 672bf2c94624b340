// Package llmparse turns raw LLM output into typed results. The model is an
// untrusted text generator: it may wrap JSON in code fences, interleave
// control characters, or ignore the requested schema entirely, so every
// parser here is an explicit ordered fallback chain rather than a single
// optimistic decode.
package llmparse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"interview-ai-backend/internal/domain/model"
)

// Fixed fallbacks for the scoring path. Numeric scores tolerate a defaulted
// answer; a boolean correctness verdict does not (see Evaluation).
const (
	fallbackScore       = 50.0
	fallbackSuggestions = "Unable to fully evaluate resume. Please review manually."
	defaultSuggestions  = "No specific suggestions available."
)

// Error reports an LLM response that violated the expected schema, carrying
// the raw text for diagnostics.
type Error struct {
	Raw string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm response did not match expected schema: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type Parser struct {
	log *zerolog.Logger
}

func NewParser(logger *zerolog.Logger) *Parser {
	return &Parser{log: logger}
}

// Scores parses a resume-scoring response. It never fails: unparseable text
// degrades to the fixed fallback, out-of-range scores are clamped into
// [0,100], and missing fields take defaults.
func (p *Parser) Scores(raw string) model.ResumeScores {
	payload := struct {
		ATSScore           *float64 `json:"ats_score"`
		BestPracticesScore *float64 `json:"best_practices_score"`
		Suggestions        *string  `json:"suggestions"`
	}{}

	err := json.Unmarshal([]byte(raw), &payload)
	if err != nil {
		// Second attempt: control characters removed, surrounding
		// whitespace trimmed.
		cleaned := strings.TrimSpace(strings.Map(func(r rune) rune {
			if r < 0x20 || r == 0x7F {
				return -1
			}
			return r
		}, raw))
		err = json.Unmarshal([]byte(cleaned), &payload)
	}
	if err != nil {
		p.log.Warn().Str("raw", raw).Msg("failed to parse scoring response, using fallback")
		return model.ResumeScores{
			ATSScore:           fallbackScore,
			BestPracticesScore: fallbackScore,
			Suggestions:        fallbackSuggestions,
		}
	}

	out := model.ResumeScores{Suggestions: defaultSuggestions}
	if payload.ATSScore != nil {
		out.ATSScore = clamp(*payload.ATSScore)
	}
	if payload.BestPracticesScore != nil {
		out.BestPracticesScore = clamp(*payload.BestPracticesScore)
	}
	if payload.Suggestions != nil {
		out.Suggestions = *payload.Suggestions
	}
	return out
}

// Evaluation parses a structured answer verdict. Code-fence markers are a
// common formatting artifact and are stripped first. There is no safe
// default for a boolean correctness judgment, so schema violations surface
// as a typed *Error instead of silently defaulting.
func (p *Parser) Evaluation(raw string) (model.Evaluation, error) {
	var ev model.Evaluation
	if err := json.Unmarshal([]byte(StripFences(raw)), &ev); err != nil {
		return model.Evaluation{}, &Error{Raw: raw, Err: err}
	}
	return ev, nil
}

// StripFences removes leading/trailing ``` markers and an optional json
// language tag from a code-fenced block.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimLeft(s, "\r\n")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
