package search

import "strings"

// Normalize lowercases s, strips leading and trailing whitespace, and
// collapses every interior run of whitespace to a single ASCII space.
// It is total and idempotent; the empty string maps to itself.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Tokenize splits an already-normalized query into its whitespace-separated
// tokens. Empty tokens never appear in the output, so stray whitespace in
// the input cannot produce spurious tokens.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}
