package adapter

import "context"

// SpeechSynthesizer converts question text into a single-channel compressed
// audio clip (MP3). A synthesizer may return (nil, nil) when speech is
// disabled; callers then simply omit the audio reference.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// AudioStore persists a synthesized clip and returns a client-retrievable URL.
type AudioStore interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}
