package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/klwxsrx/phonebook/pkg/env"
	pkghttp "github.com/klwxsrx/phonebook/pkg/http"
	"github.com/klwxsrx/phonebook/pkg/log"
)

const (
	defaultPort    = 3001
	requestTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "phonebook is unhealthy: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	logger := log.New(log.ParseLevel(env.Must(env.ParseDefault("LOG_LEVEL", "warn"))))
	port := env.Must(env.ParseDefault("PORT", defaultPort))
	baseURL := env.Must(env.ParseDefault("HEALTHCHECK_URL", "http://localhost:"+strconv.Itoa(port)))

	client := pkghttp.NewClient(
		pkghttp.WithClientDestination("phonebook", baseURL),
		pkghttp.WithRequestLogging(logger, log.LevelDebug, log.LevelError),
	)

	resp, err := client.NewRequest(ctx).Get(pkghttp.HealthPath)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	return nil
}
