package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"RegionEnricher/internal/app"
	"RegionEnricher/internal/config"
	"RegionEnricher/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return app.ExitOK
		}
		fmt.Fprintf(os.Stderr, "regionenricher: %v\n", err)
		return app.ExitUsage
	}

	logger := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	application := app.New(cfg, logger)

	if err := application.Run(ctx); err != nil {
		return app.ExitCode(err)
	}
	return app.ExitOK
}
