package search

import "strings"

// Record is a searchable item. ID must be unique across the record set; it
// is the identity callers use to execute a result and the tie-break key for
// equal scores. Data carries an arbitrary caller payload and is never
// inspected by the engine.
type Record struct {
	ID       string
	Title    string
	Keywords []string
	Data     any
}

// IndexedRecord is a derived, search-ready view of a Record. It shares the
// Record pointer with the caller and is valid only as long as the source
// record's text fields are unchanged; rebuild the index on any change.
type IndexedRecord struct {
	// Record points at the source record. Never copied, never mutated.
	Record *Record

	// Title is the normalized title field.
	Title string

	// Keywords is the normalized keyword field, joined with single spaces.
	Keywords string
}

// BuildIndex computes the normalized representation of each record.
// Output order matches input order, one entry per record, no filtering.
// The input slice and its records are left untouched.
//
// Building the index once per record-set change and reusing it across
// ranking calls is what makes per-keystroke search affordable.
func BuildIndex(records []*Record) []IndexedRecord {
	index := make([]IndexedRecord, len(records))
	for i, rec := range records {
		index[i] = IndexedRecord{
			Record:   rec,
			Title:    Normalize(rec.Title),
			Keywords: Normalize(strings.Join(rec.Keywords, " ")),
		}
	}
	return index
}
