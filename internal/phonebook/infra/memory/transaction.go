package memory

import (
	"context"
	"sync"

	"github.com/klwxsrx/phonebook/pkg/persistence"
)

type transactionContextKey struct{}

type transaction struct {
	mu *sync.Mutex
}

// NewTransaction serializes all transactions, nested calls join the outer one.
func NewTransaction() persistence.Transaction {
	return transaction{mu: &sync.Mutex{}}
}

func (t transaction) WithinContext(ctx context.Context, fn func(ctx context.Context) error, _ ...string) error {
	if owner, ok := ctx.Value(transactionContextKey{}).(*sync.Mutex); ok && owner == t.mu {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return fn(context.WithValue(ctx, transactionContextKey{}, t.mu))
}

func (t transaction) WithLock(ctx context.Context) context.Context {
	return ctx
}
