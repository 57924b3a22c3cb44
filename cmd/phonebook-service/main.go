package main

import (
	"context"

	"github.com/klwxsrx/phonebook/internal/phonebook"
	"github.com/klwxsrx/phonebook/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/phonebook/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	logger := infra.Logger.MustLoad()
	defer infra.Close(ctx)
	defer pkgcmd.HandleAppPanic(ctx, logger)

	container := phonebook.NewDependencyContainer(
		ctx,
		infra.Storage,
		infra.DB,
		infra.DBMigrator,
		infra.Clock,
		infra.Logger,
	)
	container.SeedPersons(ctx)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
