package memory

import (
	"context"
	"sync"

	"interview-ai-backend/internal/domain/ports/repository"
)

// Compile-time check
var _ repository.TransactionManager = (*TxManager)(nil)

// TxManager satisfies the transaction port for the in-memory backend. There
// is no rollback: callers get mutual exclusion across the store, which is
// enough for the single-process deployment this backend targets.
type TxManager struct {
	mu sync.Mutex
}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, nil)
}
