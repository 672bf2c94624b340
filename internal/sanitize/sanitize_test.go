package sanitize

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"control chars become spaces", "a\x00b\x1Fc\x7Fd", "a b c d"},
		{"accents decompose to ascii", "Rémi Müller, café", "Remi Muller, cafe"},
		{"no ascii form drops", "resume 世界 text", "resume text"},
		{"whitespace collapses", "  a \t\t b\n\nc  ", "a b c"},
		{"non-breaking space", "a b", "a b"},
		{"empty", "", ""},
		{"only junk", "\x00\x01 ​", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"hello world",
		"Rémi\x00Müller  \t über\n",
		"ATS score: 87% — très bien?",
		"世界 ok",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Fatalf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestClean_OutputIsPrintableASCII(t *testing.T) {
	inputs := []string{
		"plain",
		"mixed \x07 control ünïcode ￿",
		strings.Repeat("é ", 50),
	}
	for _, in := range inputs {
		out := Clean(in)
		for i := 0; i < len(out); i++ {
			if out[i] < 0x20 || out[i] > 0x7E {
				t.Fatalf("Clean(%q) produced non-printable byte %#x at %d", in, out[i], i)
			}
		}
		if strings.Contains(out, "  ") {
			t.Fatalf("Clean(%q) produced a run of spaces: %q", in, out)
		}
		if out != strings.TrimSpace(out) {
			t.Fatalf("Clean(%q) not trimmed: %q", in, out)
		}
	}
}
