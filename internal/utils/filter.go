package utils

import (
	"strings"
)

// SuggestionFilter drops repeated words from a result list while keeping
// the order in which they were first seen. Not safe for concurrent use;
// build one per request.
type SuggestionFilter struct {
	seenWords map[string]bool
	limit     int
	kept      []string
}

// NewSuggestionFilter creates a filter that keeps at most limit words.
// limit <= 0 keeps everything. Any exclude words are treated as already seen.
func NewSuggestionFilter(limit int, exclude ...string) *SuggestionFilter {
	seenWords := make(map[string]bool, len(exclude))
	for _, w := range exclude {
		seenWords[strings.ToLower(w)] = true
	}
	return &SuggestionFilter{
		seenWords: seenWords,
		limit:     limit,
	}
}

// ShouldInclude checks if a word should be included in results (not a duplicate)
// Returns true if the word should be included, false if it's a duplicate
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	lowerWord := strings.ToLower(word)
	if f.seenWords[lowerWord] {
		return false
	}
	f.seenWords[lowerWord] = true
	return true
}

// Add records word if it is new and the limit is not reached yet.
// Returns false once the filter is full.
func (f *SuggestionFilter) Add(word string) bool {
	if f.Full() {
		return false
	}
	if f.ShouldInclude(word) {
		f.kept = append(f.kept, word)
	}
	return !f.Full()
}

// Full reports whether the limit has been reached.
func (f *SuggestionFilter) Full() bool {
	return f.limit > 0 && len(f.kept) >= f.limit
}

// Words returns the kept words in insertion order.
func (f *SuggestionFilter) Words() []string {
	return f.kept
}
