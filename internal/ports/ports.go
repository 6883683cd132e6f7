package ports

import (
	"context"

	"RegionEnricher/internal/domain"
)

// DatasetReader loads and decodes the raw input document into a generic JSON tree.
type DatasetReader interface {
	Read(ctx context.Context, path string) (any, error)
}

// DatasetWriter encodes the enriched record list and persists it.
type DatasetWriter interface {
	Write(ctx context.Context, path string, records []*domain.Object) error
}

// RegionLookup resolves the region owning an identifier.
type RegionLookup interface {
	Lookup(id string) string
}
