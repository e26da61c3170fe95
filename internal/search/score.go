package search

import (
	"strings"
	"unicode/utf8"
)

// Weights configures how per-token scores are computed and combined.
// Construct with DefaultWeights and override individual fields; weights are
// passed per call and never stored process-wide.
//
// No validation is applied: weights that do not sum to 1 (or are negative)
// produce counterintuitive rankings, not out-of-range scores, because every
// combination stage clamps its output to [0,1].
type Weights struct {
	// TitleWeight scales the title-field score within a token.
	TitleWeight float64

	// KeywordWeight scales the keyword-field score within a token.
	KeywordWeight float64

	// PrefixScore is awarded when a field starts with the token.
	PrefixScore float64

	// SubstringScore is awarded when a field contains the token.
	SubstringScore float64

	// MaxSubsequenceScore caps the subsequence fallback so it can never
	// outscore a true prefix or substring match.
	MaxSubsequenceScore float64
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		TitleWeight:         0.7,
		KeywordWeight:       0.3,
		PrefixScore:         1.0,
		SubstringScore:      0.8,
		MaxSubsequenceScore: 0.6,
	}
}

// scoreTokenField scores a single token against a single normalized field.
// The priority ladder is fixed: prefix, then substring, then in-order
// subsequence. The first rule that fires wins.
func scoreTokenField(token, field string, w Weights) float64 {
	if token == "" || field == "" {
		return 0
	}
	if strings.HasPrefix(field, token) {
		return w.PrefixScore
	}
	if strings.Contains(field, token) {
		return w.SubstringScore
	}

	// A token with more runes than the field cannot be a subsequence.
	if utf8.RuneCountInString(token) > utf8.RuneCountInString(field) {
		return 0
	}

	// Greedy left-to-right scan for the token's runes in order.
	tokenRunes := []rune(token)
	fieldRunes := []rune(field)
	first := -1
	ti := 0
	for i, r := range fieldRunes {
		if ti < len(tokenRunes) && r == tokenRunes[ti] {
			if ti == 0 {
				first = i
			}
			ti++
		}
	}
	if ti != len(tokenRunes) {
		return 0
	}

	// Earlier first matches score higher.
	positionFactor := clamp01(1 - float64(first)/float64(len(fieldRunes)))
	return positionFactor * w.MaxSubsequenceScore
}

// scoreToken scores a token against both fields of an indexed record and
// combines them as a weighted sum.
func scoreToken(token string, rec *IndexedRecord, w Weights) float64 {
	titleScore := scoreTokenField(token, rec.Title, w)
	keywordScore := scoreTokenField(token, rec.Keywords, w)
	return clamp01(titleScore*w.TitleWeight + keywordScore*w.KeywordWeight)
}

// scoreQuery scores all query tokens against a record and averages them.
// Tokens that match nothing still count in the denominator, so a record
// matching one of three tokens is penalized relative to one matching all
// three.
func scoreQuery(tokens []string, rec *IndexedRecord, w Weights) float64 {
	if len(tokens) == 0 {
		return 0
	}
	var sum float64
	for _, token := range tokens {
		sum += scoreToken(token, rec, w)
	}
	return clamp01(sum / float64(len(tokens)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
