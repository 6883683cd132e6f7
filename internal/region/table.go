package region

import "sync"

// Unknown is returned for identifiers that belong to no region.
const Unknown = "Unknown"

// Entry pairs a region name with its member identifiers.
type Entry struct {
	Name    string
	Members []string
}

type region struct {
	name    string
	members map[string]struct{}
}

// Table answers which region owns an identifier. Regions are scanned in
// declaration order and the first one containing the identifier wins.
// A Table is immutable once built.
type Table struct {
	regions []region
}

// NewTable builds a table from entries, keeping their order.
func NewTable(entries ...Entry) *Table {
	regions := make([]region, 0, len(entries))
	for _, e := range entries {
		members := make(map[string]struct{}, len(e.Members))
		for _, id := range e.Members {
			members[id] = struct{}{}
		}
		regions = append(regions, region{name: e.Name, members: members})
	}
	return &Table{regions: regions}
}

var defaultTable = sync.OnceValue(func() *Table {
	return NewTable(defaultEntries()...)
})

// Default returns the compiled-in table, built on first use.
func Default() *Table {
	return defaultTable()
}

// Lookup returns the name of the first region containing id, or Unknown.
func (t *Table) Lookup(id string) string {
	if t == nil {
		return Unknown
	}
	for _, r := range t.regions {
		if _, ok := r.members[id]; ok {
			return r.name
		}
	}
	return Unknown
}

// Names lists region names in declaration order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.regions))
	for _, r := range t.regions {
		names = append(names, r.name)
	}
	return names
}

// Len reports the number of regions.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.regions)
}
