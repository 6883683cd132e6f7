package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"RegionEnricher/internal/domain"
	"RegionEnricher/internal/ports"
)

// Reader loads datasets from the local filesystem.
type Reader struct {
	logger *slog.Logger
}

var _ ports.DatasetReader = (*Reader)(nil)

// NewReader builds a filesystem reader; log may be nil.
func NewReader(log *slog.Logger) *Reader {
	return &Reader{logger: log}
}

// Read loads the whole file and decodes it. Syntax problems are reported
// as *domain.ParseError, everything else as a wrapped I/O error.
func (r *Reader) Read(ctx context.Context, path string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	r.debug("dataset loaded", "path", path, "bytes", len(raw))

	tree, err := Decode(raw)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}

	return tree, nil
}

func (r *Reader) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
