package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/klwxsrx/phonebook/pkg/env"
	"github.com/klwxsrx/phonebook/pkg/http"
	"github.com/klwxsrx/phonebook/pkg/lazy"
	"github.com/klwxsrx/phonebook/pkg/log"
	"github.com/klwxsrx/phonebook/pkg/sql"
	pkgtime "github.com/klwxsrx/phonebook/pkg/time"
)

const (
	defaultHTTPPort  = 3001
	defaultStaticDir = "dist"
)

type StorageKind string

const (
	StorageSQL    StorageKind = "sql"
	StorageMemory StorageKind = "memory"
)

type InfrastructureContainer struct {
	HTTPServer lazy.Loader[http.Server]
	DBMigrator lazy.Loader[*sql.Migrator]
	DB         lazy.Loader[sql.Database]
	Storage    lazy.Loader[StorageKind]
	Clock      lazy.Loader[pkgtime.Clock]
	Logger     lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	logger := loggerProvider()
	db := sqlDatabaseProvider(ctx, logger)

	return &InfrastructureContainer{
		HTTPServer: httpServerProvider(logger),
		DBMigrator: sqlMigratorProvider(db, logger),
		DB:         db,
		Storage:    storageProvider(),
		Clock:      clockProvider(),
		Logger:     logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel := env.Must(env.ParseDefault("LOG_LEVEL", "info"))
		return log.New(log.ParseLevel(logLevel)), nil
	})
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewClock(), nil
	})
}

func storageProvider() lazy.Loader[StorageKind] {
	return lazy.New(func() (StorageKind, error) {
		storage := StorageKind(env.Must(env.ParseDefault("PHONEBOOK_STORAGE", string(StorageSQL))))
		switch storage {
		case StorageSQL, StorageMemory:
			return storage, nil
		default:
			return "", fmt.Errorf("unknown PHONEBOOK_STORAGE %q", storage)
		}
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			DSN: sqlDSN(),
		}
		if maxOpen := env.Must(env.ParseOptional[*int]("SQL_MAX_OPEN_CONNECTIONS")); maxOpen != nil {
			sqlConfig.MaxOpenConnections = *maxOpen
		}
		if maxIdle := env.Must(env.ParseOptional[*int]("SQL_MAX_IDLE_CONNECTIONS")); maxIdle != nil {
			sqlConfig.MaxIdleConnections = *maxIdle
		}
		if connTimeout := env.Must(env.ParseOptional[*time.Duration]("SQL_CONNECTION_TIMEOUT")); connTimeout != nil {
			sqlConfig.ConnectionTimeout = *connTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlDSN() sql.DSN {
	if raw := env.Must(env.ParseOptional[*string]("SQL_DSN")); raw != nil && *raw != "" {
		return sql.DSN{Raw: *raw}
	}

	return sql.DSN{
		User:     env.Must(env.Parse[string]("SQL_USER")),
		Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
		Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
		Database: env.Must(env.Parse[string]("SQL_DATABASE")),
	}
}

func sqlMigratorProvider(
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[*sql.Migrator] {
	return lazy.New(func() (*sql.Migrator, error) {
		return sql.NewMigrator(db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(logger lazy.Loader[log.Logger]) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		port := env.Must(env.ParseDefault("PORT", defaultHTTPPort))
		staticDir := env.Must(env.ParseDefault("STATIC_DIR", defaultStaticDir))

		return http.NewServer(
			":"+strconv.Itoa(port),
			http.WithRequestID(),
			http.WithLogging(logger.MustLoad()),
			http.WithCORS(),
			http.WithHealthCheck(),
			http.WithStaticFiles(staticDir),
		), nil
	})
}
