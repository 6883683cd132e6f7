package domain

const (
	// FieldID holds the classification key of a record.
	FieldID = "id"
	// FieldRegion receives the classification result.
	FieldRegion = "region"
	// FieldNodes wraps the record list in object-shaped datasets.
	FieldNodes = "nodes"
)

// RecordID returns the record's id, or "" when it is absent or not a string.
func RecordID(record *Object) string {
	v, ok := record.Get(FieldID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// Summary counts enriched records per region.
type Summary struct {
	Total     int
	FromNodes bool
	ByRegion  map[string]int
}
