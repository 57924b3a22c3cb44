package sql

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/phonebook/pkg/persistence"
)

type txData struct {
	ClientTx
	db *database
}

type transaction struct {
	db *database
}

// NewTransaction panics if db was not created by NewDatabase.
func NewTransaction(db Database) persistence.Transaction {
	impl, ok := db.(*database)
	if !ok {
		panic(fmt.Errorf("unsupported database implementation %T", db))
	}

	return transaction{db: impl}
}

func (t transaction) WithinContext(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) (err error) {
	storedTx, hasParentTx := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx = hasParentTx && storedTx.db == t.db
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if p := recover(); p != nil {
				_ = rollback(tx)
				panic(p)
			}
			if err != nil {
				err = errors.Join(err, rollback(tx))
			}
		}()

		storedTx = txData{ClientTx: tx, db: t.db}
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
	}

	for _, lockName := range lockNames {
		err = withTransactionLevelLock(ctx, lockName, storedTx.ClientTx)
		if err != nil {
			return err
		}
	}

	err = fn(ctx)
	if err != nil || hasParentTx {
		return err
	}

	err = storedTx.Commit()
	if err != nil {
		return fmt.Errorf("commit db transaction: %w", err)
	}

	return nil
}

func (t transaction) WithLock(ctx context.Context) context.Context {
	return withLockRequested(ctx)
}

func rollback(tx ClientTx) error {
	err := tx.Rollback()
	if err != nil {
		return fmt.Errorf("rollback db transaction: %w", err)
	}

	return nil
}
