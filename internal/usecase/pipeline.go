package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"RegionEnricher/internal/domain"
	"RegionEnricher/internal/ports"
)

// PipelineDeps wires the driven adapters into the enrichment pipeline.
type PipelineDeps struct {
	Reader   ports.DatasetReader
	Writer   ports.DatasetWriter
	Enricher *Enricher
	Logger   *slog.Logger
}

// Pipeline implements the load, enrich and save workflow.
type Pipeline struct {
	reader   ports.DatasetReader
	writer   ports.DatasetWriter
	enricher *Enricher
	logger   *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	enricher := deps.Enricher
	if enricher == nil {
		enricher = NewEnricher(nil)
	}
	return &Pipeline{
		reader:   deps.Reader,
		writer:   deps.Writer,
		enricher: enricher,
		logger:   deps.Logger,
	}
}

// Process reads input, enriches every record and writes the flat record list
// to output. Nothing is written unless every earlier step succeeded.
func (p *Pipeline) Process(ctx context.Context, input, output string) (domain.Summary, error) {
	if p.reader == nil || p.writer == nil {
		return domain.Summary{}, fmt.Errorf("pipeline is not configured")
	}

	raw, err := p.reader.Read(ctx, input)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("load dataset: %w", err)
	}

	records, summary, err := p.enricher.Enrich(raw)
	if err != nil {
		return summary, fmt.Errorf("enrich dataset: %w", err)
	}
	if summary.FromNodes {
		p.info("dataset is a dictionary, extracted nodes", "records", summary.Total)
	}

	if err := p.writer.Write(ctx, output, records); err != nil {
		return summary, fmt.Errorf("save dataset: %w", err)
	}

	for name, count := range summary.ByRegion {
		p.debug("region count", "region", name, "records", count)
	}
	p.info("dataset enriched and saved", "output", output, "records", summary.Total)

	return summary, nil
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
