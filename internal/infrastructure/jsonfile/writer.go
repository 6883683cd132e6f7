package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"RegionEnricher/internal/domain"
	"RegionEnricher/internal/ports"
)

const filePerm = 0o644

// Writer persists enriched records, replacing any existing file.
type Writer struct {
	logger *slog.Logger
}

var _ ports.DatasetWriter = (*Writer)(nil)

// NewWriter builds a filesystem writer; log may be nil.
func NewWriter(log *slog.Logger) *Writer {
	return &Writer{logger: log}
}

// Write encodes records fully in memory before touching path, so an
// encoding failure never leaves a truncated file behind.
func (w *Writer) Write(ctx context.Context, path string, records []*domain.Object) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	w.debug("dataset written", "path", path, "records", len(records), "bytes", len(data))

	return nil
}

func (w *Writer) debug(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Debug(msg, args...)
	}
}
