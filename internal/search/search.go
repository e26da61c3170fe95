package search

import "sort"

// Result is a matched record with its relevance score in [0,1].
// Results live for a single Search call; they are recomputed per query.
type Result struct {
	Record *Record
	Score  float64
}

// Options supplies optional inputs to Search.
type Options struct {
	// Index is a precomputed index for records. When nil, Search builds
	// one on the fly. Callers that search the same record set repeatedly
	// should build the index once and pass it here.
	Index []IndexedRecord

	// Weights overrides the scoring weights. Nil means DefaultWeights.
	Weights *Weights
}

// Search ranks records against a raw query string.
//
// An empty (or whitespace-only) query returns every record with score zero,
// ordered by ID ascending. A non-empty query returns only records with a
// nonzero score, ordered by score descending with ID ascending as the
// tie-break. A positive limit truncates the result; limit <= 0 returns all
// matches.
//
// Search never mutates the records slice under any path, holds no state
// between calls, and is safe to call once per keystroke from a single
// goroutine. A shared index is read-only during the call.
func Search(query string, records []*Record, limit int, opts *Options) []Result {
	weights := DefaultWeights()
	var index []IndexedRecord
	if opts != nil {
		if opts.Weights != nil {
			weights = *opts.Weights
		}
		index = opts.Index
	}
	if index == nil {
		index = BuildIndex(records)
	}

	normalized := Normalize(query)
	if normalized == "" {
		return allByID(index, limit)
	}

	// Normalization produced a non-empty string, so tokenization cannot
	// come up empty; the guard keeps the contract explicit.
	tokens := Tokenize(normalized)
	if len(tokens) == 0 {
		return nil
	}

	results := make([]Result, 0, len(index))
	for i := range index {
		score := scoreQuery(tokens, &index[i], weights)
		if score == 0 {
			continue
		}
		results = append(results, Result{Record: index[i].Record, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.ID < results[j].Record.ID
	})

	return truncate(results, limit)
}

// allByID returns every indexed record with score zero, ordered by ID.
// Sorting operates on the freshly built result slice, never on the caller's
// records.
func allByID(index []IndexedRecord, limit int) []Result {
	results := make([]Result, len(index))
	for i := range index {
		results[i] = Result{Record: index[i].Record}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Record.ID < results[j].Record.ID
	})
	return truncate(results, limit)
}

func truncate(results []Result, limit int) []Result {
	if limit <= 0 || limit >= len(results) {
		return results
	}
	return results[:limit]
}
