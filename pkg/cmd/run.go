package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/phonebook/pkg/log"
	"github.com/klwxsrx/phonebook/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run blocks until the first job completes, then stops the rest.
func Run(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(ctx context.Context, job worker.ContextJob) worker.ErrorJob {
		return func() error {
			err := job(ctx)
			if err == nil || errors.Is(err, ctx.Err()) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	groupCtx, group := worker.NewGroup(ctx)
	for _, job := range jobs {
		group.Do(loggingAdapter(groupCtx, job))
	}

	err := group.Wait()
	if !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}
