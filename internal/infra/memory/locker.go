package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Locker serializes writers per key with plain in-process mutexes. Unlike
// the redis locker it blocks instead of failing fast, which is the right
// behavior when all writers live in one process.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocker() *Locker {
	return &Locker{locks: make(map[string]*sync.Mutex)}
}

func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return uuid.NewString(), nil
}

func (l *Locker) Unlock(ctx context.Context, key, token string) error {
	l.mu.Lock()
	m, ok := l.locks[key]
	l.mu.Unlock()
	if ok {
		m.Unlock()
	}
	return nil
}
