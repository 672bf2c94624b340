package postgres

import (
	"context"
	"testing"
)

func TestAfterCommit_RunsImmediatelyWithoutTransaction(t *testing.T) {
	ran := false
	afterCommit(context.Background(), func(ctx context.Context) { ran = true })
	if !ran {
		t.Fatal("callback should run right away outside a transaction")
	}
}

func TestAfterCommit_DefersUntilHooksRun(t *testing.T) {
	hooks := &txHooks{}
	ctx := context.WithValue(context.Background(), txHooksKey{}, hooks)

	var order []int
	afterCommit(ctx, func(ctx context.Context) { order = append(order, 1) })
	afterCommit(ctx, func(ctx context.Context) { order = append(order, 2) })

	if len(order) != 0 {
		t.Fatalf("callbacks ran before commit: %v", order)
	}
	hooks.run(ctx)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("callbacks ran out of order: %v", order)
	}
}
