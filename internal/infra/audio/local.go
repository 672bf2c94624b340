package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"interview-ai-backend/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.AudioStore = (*LocalStore)(nil)

// LocalStore writes clips to a directory served by the HTTP server under
// /audio/. URLs are absolute so API clients can play them directly.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the directory clips are written to, for the file server route.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return s.baseURL + "/audio/" + name, nil
}
