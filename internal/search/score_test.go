package search

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreTokenFieldPriority(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name  string
		token string
		field string
		want  float64
	}{
		{"prefix", "com", "commit changes", w.PrefixScore},
		{"substring", "com", "toggle command palette", w.SubstringScore},
		{"subsequence from start", "com", "copy mode", w.MaxSubsequenceScore},
		{"no match", "xyz", "commit changes", 0},
		{"empty token", "", "commit", 0},
		{"empty field", "com", "", 0},
		{"token longer than field", "commitall", "commit", 0},
		{"exact match is prefix", "commit", "commit", w.PrefixScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreTokenField(tt.token, tt.field, w)
			if !almostEqual(got, tt.want) {
				t.Errorf("scoreTokenField(%q, %q) = %v, want %v", tt.token, tt.field, got, tt.want)
			}
		})
	}
}

func TestScoreTokenFieldSubsequencePosition(t *testing.T) {
	w := DefaultWeights()

	// "cmt" inside "commit": first match at rune 0, full position factor.
	got := scoreTokenField("cmt", "commit", w)
	if !almostEqual(got, w.MaxSubsequenceScore) {
		t.Errorf("front subsequence = %v, want %v", got, w.MaxSubsequenceScore)
	}

	// "cmt" inside "a commit": first match at rune 2 of 8.
	got = scoreTokenField("cmt", "a commit", w)
	want := (1 - 2.0/8.0) * w.MaxSubsequenceScore
	if !almostEqual(got, want) {
		t.Errorf("offset subsequence = %v, want %v", got, want)
	}

	// Later first matches score strictly lower.
	front := scoreTokenField("cmt", "commit", w)
	back := scoreTokenField("cmt", "zzzz commit", w)
	if back >= front {
		t.Errorf("later subsequence %v should score below front subsequence %v", back, front)
	}
}

func TestScoreTokenFieldUTF8(t *testing.T) {
	w := DefaultWeights()

	if got := scoreTokenField("日本", "日本語 テスト", w); !almostEqual(got, w.PrefixScore) {
		t.Errorf("multibyte prefix = %v, want %v", got, w.PrefixScore)
	}
	// Subsequence indexing counts runes, not bytes.
	got := scoreTokenField("語ト", "日本語 テスト", w)
	want := (1 - 2.0/7.0) * w.MaxSubsequenceScore
	if !almostEqual(got, want) {
		t.Errorf("multibyte subsequence = %v, want %v", got, want)
	}
}

func TestScoreTokenFieldAggregation(t *testing.T) {
	w := DefaultWeights()
	rec := IndexedRecord{
		Record:   &Record{ID: "git.commit"},
		Title:    "git: commit",
		Keywords: "git commit save",
	}

	// "git" is a prefix of both fields.
	got := scoreToken("git", &rec, w)
	want := w.PrefixScore*w.TitleWeight + w.PrefixScore*w.KeywordWeight
	if !almostEqual(got, want) {
		t.Errorf("scoreToken = %v, want %v", got, want)
	}

	// "com" is a substring of both fields.
	got = scoreToken("com", &rec, w)
	want = w.SubstringScore*w.TitleWeight + w.SubstringScore*w.KeywordWeight
	if !almostEqual(got, want) {
		t.Errorf("scoreToken = %v, want %v", got, want)
	}
}

func TestScoreTokenClampsCustomWeights(t *testing.T) {
	w := DefaultWeights()
	w.TitleWeight = 5.0 // does not sum to 1 with KeywordWeight

	rec := IndexedRecord{
		Record: &Record{ID: "x"},
		Title:  "git",
	}
	if got := scoreToken("git", &rec, w); got != 1.0 {
		t.Errorf("oversized weights must clamp to 1, got %v", got)
	}
}

func TestScoreQueryMean(t *testing.T) {
	w := DefaultWeights()
	rec := IndexedRecord{
		Record:   &Record{ID: "git.push"},
		Title:    "git: push",
		Keywords: "git",
	}

	single := scoreQuery([]string{"git"}, &rec, w)
	// "com" matches neither field of this record; the miss still counts in
	// the denominator.
	both := scoreQuery([]string{"git", "com"}, &rec, w)

	if !almostEqual(both, single/2) {
		t.Errorf("two-token mean = %v, want %v", both, single/2)
	}
	if both >= single {
		t.Errorf("partial match %v should score below full match %v", both, single)
	}

	if got := scoreQuery(nil, &rec, w); got != 0 {
		t.Errorf("empty token list = %v, want 0", got)
	}
}
