package usecase

import (
	"RegionEnricher/internal/domain"
	"RegionEnricher/internal/ports"
	"RegionEnricher/internal/region"
)

// Enricher assigns a region to every record of a decoded dataset.
type Enricher struct {
	lookup ports.RegionLookup
}

// NewEnricher wires a region lookup; nil falls back to the built-in table.
func NewEnricher(lookup ports.RegionLookup) *Enricher {
	if lookup == nil {
		lookup = region.Default()
	}
	return &Enricher{lookup: lookup}
}

// Classify returns the region owning id.
func (e *Enricher) Classify(id string) string {
	return e.lookup.Lookup(id)
}

// Enrich resolves the record list of raw and returns copies of its records
// with the region field set. raw is left untouched, also on failure.
//
// raw must be a list, or an object whose "nodes" key holds a list. An object
// without "nodes" yields no records.
func (e *Enricher) Enrich(raw any) ([]*domain.Object, domain.Summary, error) {
	summary := domain.Summary{ByRegion: map[string]int{}}

	items, fromNodes, err := recordList(raw)
	if err != nil {
		return nil, summary, err
	}
	summary.FromNodes = fromNodes

	enriched := make([]*domain.Object, 0, len(items))
	for i, item := range items {
		record, ok := item.(*domain.Object)
		if !ok || record == nil {
			return nil, summary, &domain.StructuralError{Index: i, Err: domain.ErrNonRecordElement}
		}

		out := record.Clone()
		name := e.Classify(domain.RecordID(record))
		out.Set(domain.FieldRegion, name)

		enriched = append(enriched, out)
		summary.ByRegion[name]++
	}
	summary.Total = len(enriched)

	return enriched, summary, nil
}

func recordList(raw any) ([]any, bool, error) {
	switch v := raw.(type) {
	case []any:
		return v, false, nil
	case *domain.Object:
		if v == nil {
			break
		}
		nodes, ok := v.Get(domain.FieldNodes)
		if !ok {
			return []any{}, true, nil
		}
		if list, ok := nodes.([]any); ok {
			return list, true, nil
		}
	}
	return nil, false, &domain.StructuralError{Index: -1, Err: domain.ErrNotRecordList}
}
