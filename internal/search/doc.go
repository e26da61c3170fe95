// Package search implements the fuzzy ranking engine behind the command
// palette. Given a free-text query and a set of searchable records, it
// returns the matching subset ordered by relevance.
//
// The engine is designed to be recomputed on every keystroke: all text
// normalization for a record set is done once up front by BuildIndex, and a
// Search call over the resulting index is a straight scan with no redundant
// per-record text processing.
//
// # Scoring Model
//
// The query is normalized (lowercased, whitespace collapsed) and split into
// tokens. Each token is scored against a record's title and keyword fields
// using a fixed priority ladder:
//
//   - Prefix match: the field starts with the token (score 1.0)
//   - Substring match: the field contains the token (score 0.8)
//   - Subsequence fallback: the token's runes appear in order, not
//     necessarily adjacent; scored by how close the first matched rune is
//     to the start of the field, capped at 0.6
//
// Per-token field scores combine as a weighted sum (title 0.7, keywords
// 0.3), and the record's final score is the arithmetic mean over all query
// tokens. Tokens that match nothing contribute zero to the mean, so records
// matching more of the query rank higher without an explicit coverage term.
// Every combination stage clamps to [0,1], so out-of-range weight overrides
// degrade rankings rather than scores.
//
// # Usage
//
//	records := []*search.Record{
//	    {ID: "git.commit", Title: "Git: Commit", Keywords: []string{"git", "commit", "save"}},
//	    {ID: "file.new", Title: "New File", Keywords: []string{"new", "file", "create"}},
//	}
//	index := search.BuildIndex(records)
//	results := search.Search("git com", records, 10, &search.Options{Index: index})
//
// # Determinism and Statelessness
//
// Search never mutates the caller's record slice, holds no state between
// calls, and orders results by score descending with ID ascending as the
// tie-break. An empty (or whitespace-only) query returns every record with
// score zero, ordered by ID. The caller owns the index lifetime: rebuild it
// whenever the record set or any record's text changes, share it freely
// across reads otherwise.
package search
