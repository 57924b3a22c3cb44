//go:build integration

package sql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/klwxsrx/phonebook/pkg/log"
	"github.com/klwxsrx/phonebook/pkg/sql"
)

func newSingleConnectionDatabase(t *testing.T) sql.Database {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("phonebook"),
		postgres.WithUsername("phonebook"),
		postgres.WithPassword("phonebook"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.NewDatabase(ctx, &sql.Config{
		DSN:                sql.DSN{Raw: dsn},
		MaxOpenConnections: 1,
		ConnectionTimeout:  30 * time.Second,
	}, log.New(log.LevelDisabled))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(ctx) })

	return db
}

func TestTransaction_ReleasesConnection(t *testing.T) {
	db := newSingleConnectionDatabase(t)
	tx := sql.NewTransaction(db)

	tests := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{
			name: "on error",
			fn:   func(context.Context) error { return errors.New("failed") },
		},
		{
			name: "on panic",
			fn:   func(context.Context) error { panic("failed") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			func() {
				defer func() { _ = recover() }()
				_ = tx.WithinContext(context.Background(), tt.fn)
			}()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			var n int
			require.NoError(t, db.GetContext(ctx, &n, "select 1"))
			assert.Equal(t, 1, n)
		})
	}
}

func TestTransaction_PanicIsPropagated(t *testing.T) {
	db := newSingleConnectionDatabase(t)
	tx := sql.NewTransaction(db)

	assert.PanicsWithValue(t, "failed", func() {
		_ = tx.WithinContext(context.Background(), func(context.Context) error {
			panic("failed")
		})
	})
}
