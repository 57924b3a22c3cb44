package sql

import "context"

type contextKey int

const (
	dbTransactionContextKey contextKey = iota
	dbLockRequestedContextKey
)

// IsLockRequested tells repositories to append "for update" to reads.
func IsLockRequested(ctx context.Context) bool {
	requested, _ := ctx.Value(dbLockRequestedContextKey).(bool)
	return requested
}

func withLockRequested(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbLockRequestedContextKey, true)
}
