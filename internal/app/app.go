package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"RegionEnricher/internal/config"
	"RegionEnricher/internal/domain"
	"RegionEnricher/internal/infrastructure/jsonfile"
	"RegionEnricher/internal/region"
	"RegionEnricher/internal/usecase"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitUnexpected = 1
	ExitParse      = 2
	ExitStructural = 3
	ExitUsage      = 64
)

// Application wires configs to the enrichment pipeline.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance. Every run gets its own run_id.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	baseLogger = baseLogger.With("run_id", uuid.NewString())

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Reader:   jsonfile.NewReader(baseLogger.With("component", "reader")),
		Writer:   jsonfile.NewWriter(baseLogger.With("component", "writer")),
		Enricher: usecase.NewEnricher(region.Default()),
		Logger:   baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}
}

// Run performs one enrichment. Failures are logged as diagnostics and
// returned so the caller can pick an exit code with ExitCode.
func (a *Application) Run(ctx context.Context) error {
	input, output := a.cfg.Dataset.Input, a.cfg.Dataset.Output
	a.logger.Debug("run started", "input", input, "output", output)

	_, err := a.pipeline.Process(ctx, input, output)
	if err == nil {
		return nil
	}

	var (
		parseErr  *domain.ParseError
		structErr *domain.StructuralError
	)
	switch {
	case errors.As(err, &parseErr):
		a.logger.Error("input file is not valid JSON", "input", input, "error", parseErr.Err)
	case errors.As(err, &structErr):
		a.logger.Error("dataset has an invalid structure", "input", input, "error", structErr)
	default:
		a.logger.Error("an error occurred", "error", err)
	}

	return err
}

// ExitCode maps an error returned by Run or config loading to a process exit status.
func ExitCode(err error) int {
	var (
		parseErr  *domain.ParseError
		structErr *domain.StructuralError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrHelp):
		return ExitOK
	case errors.As(err, &parseErr):
		return ExitParse
	case errors.As(err, &structErr):
		return ExitStructural
	default:
		return ExitUnexpected
	}
}
