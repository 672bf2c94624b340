package repository

import "context"

// Tx is an opaque transaction handle. Its concrete type is infra-defined
// (pgx.Tx for Postgres, nil for the in-memory backend). Repositories MUST
// gracefully accept a nil Tx (non-transactional path).
type Tx interface{}

// NoTX marks deliberately non-transactional repository calls.
var NoTX Tx

// TransactionManager executes fn within a storage transaction, passing the
// backend's transaction handle through tx. It deliberately carries no driver
// types so the port can be satisfied by non-SQL backends.
type TransactionManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
