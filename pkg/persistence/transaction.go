//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import (
	"context"
)

type Transaction interface {
	// WithinContext runs fn in a transaction, nested calls join the outer one.
	// lockNames are acquired for the whole transaction in the given order.
	WithinContext(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
	// WithLock marks reads made with the returned context as locking.
	WithLock(ctx context.Context) context.Context
}

func WithinTransactionWithResult[T any](
	ctx context.Context,
	transaction Transaction,
	fn func(ctx context.Context) (T, error),
	lockNames ...string,
) (T, error) {
	var result T
	err := transaction.WithinContext(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	}, lockNames...)
	if err != nil {
		var blank T
		return blank, err
	}

	return result, nil
}
