package postgres

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"interview-ai-backend/internal/domain/ports/repository"
)

// Ensure compile-time conformance
var _ repository.TransactionManager = (*TxManager)(nil)

// TxManager implements repository.TransactionManager for Postgres (pgx).
// It begins a transaction, invokes the callback, and commits/rolls back.
// The tx handle reaches repositories through the opaque repository.Tx value.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

func (m *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	hooks := &txHooks{}
	ctx = context.WithValue(ctx, txHooksKey{}, hooks)

	// Read committed is enough: writers are already serialized per interview
	// by the lock layer.
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, tx); err != nil {
		return err // rollback in defer
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	hooks.run(ctx)
	return nil
}

// txHooks collects callbacks that must wait for the surrounding transaction
// to commit. Cache eviction goes through here: evicting while the
// transaction is still open lets a concurrent reader re-cache the
// pre-commit snapshot.
type txHooks struct {
	fns []func(ctx context.Context)
}

type txHooksKey struct{}

func (h *txHooks) run(ctx context.Context) {
	for _, fn := range h.fns {
		fn(ctx)
	}
}

// afterCommit defers fn until the transaction around ctx has committed.
// Outside a transaction fn runs right away.
func afterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if h, ok := ctx.Value(txHooksKey{}).(*txHooks); ok {
		h.fns = append(h.fns, fn)
		return
	}
	fn(ctx)
}

// executor is the query surface shared by the pool, pooled conns and txs.
type executor interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// pick resolves the executor for a call: the transaction handle when one is
// in flight, the pool otherwise (including the explicit NoTX case).
func pick(pool *pgxpool.Pool, tx repository.Tx) executor {
	switch v := tx.(type) {
	case pgx.Tx:
		return v
	case *pgxpool.Conn:
		return v
	default:
		return pool
	}
}
