package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/phonebook/pkg/worker"
)

func TestGroup_Wait_ReturnsFirstErrorAndCancelsOthers(t *testing.T) {
	expectedErr := errors.New("listener failed")
	ctx, group := worker.NewGroup(context.Background())

	group.Do(func() error {
		<-ctx.Done()
		return ctx.Err()
	})
	group.Do(func() error {
		time.Sleep(10 * time.Millisecond)
		return expectedErr
	})

	assert.ErrorIs(t, group.Wait(), expectedErr)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestGroup_Wait_ReturnsNilWhenAllSucceeded(t *testing.T) {
	_, group := worker.NewGroup(context.Background())
	for range 3 {
		group.Do(func() error { return nil })
	}

	assert.NoError(t, group.Wait())
}
