package cmd

import (
	"context"
	"os/signal"
	"syscall"
)

func TermSignalAwaiter(ctx context.Context) error {
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	<-signalCtx.Done()
	return ctx.Err()
}
