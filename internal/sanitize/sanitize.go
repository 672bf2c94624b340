// Package sanitize normalizes free-form text before it is embedded in an
// LLM prompt or persisted. Resumes arrive in arbitrary encodings and
// languages; prompts must not carry control characters.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters (NFKD) and drops the combining
// marks, leaving the closest ASCII form: "é" -> "e", "ü" -> "u".
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Clean returns a printable-ASCII, single-spaced rendition of s.
// It is a pure, total function: malformed input degrades to an empty or
// partial string, never an error. Clean is idempotent.
func Clean(s string) string {
	// Control characters become spaces first so they can never glue to a
	// decomposed sequence.
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return ' '
		}
		return r
	}, s)

	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	// Anything still outside printable ASCII has no ASCII form; it degrades
	// to a space and collapses away below.
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
