package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isEdgePunct reports runes trimmed from both ends of a word.
// Apostrophes inside a word (amin'ny) survive because only the edges are trimmed.
func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// Normalize lowercases a word, trims surrounding whitespace
// and strips leading and trailing punctuation.
func Normalize(word string) string {
	word = strings.TrimSpace(word)
	word = strings.TrimFunc(word, isEdgePunct)
	return strings.ToLower(word)
}

// RuneLen is a shorthand for utf8.RuneCountInString
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Token is a word found in a text, positioned in runes.
type Token struct {
	Text   string
	Norm   string
	Offset int
	Length int
}

// Tokenize splits text on whitespace and strips edge punctuation from every
// chunk. Offsets and lengths count runes from the start of text and point at
// the stripped word, not at the surrounding punctuation.
func Tokenize(text string) []Token {
	var tokens []Token
	runes := []rune(text)
	start := -1
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && !unicode.IsSpace(runes[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}
		lo, hi := start, i
		for lo < hi && isEdgePunct(runes[lo]) {
			lo++
		}
		for hi > lo && isEdgePunct(runes[hi-1]) {
			hi--
		}
		if lo < hi {
			word := string(runes[lo:hi])
			tokens = append(tokens, Token{
				Text:   word,
				Norm:   strings.ToLower(word),
				Offset: lo,
				Length: hi - lo,
			})
		}
		start = -1
	}
	return tokens
}

// Span is a slice of text positioned in runes.
type Span struct {
	Text   string
	Offset int
}

// SplitSentences cuts text on runs of '.', '!' and '?'.
// Surrounding whitespace is trimmed and empty pieces are dropped.
func SplitSentences(text string) []Span {
	var spans []Span
	runes := []rune(text)
	start := 0
	flush := func(end int) {
		lo, hi := start, end
		for lo < hi && unicode.IsSpace(runes[lo]) {
			lo++
		}
		for hi > lo && unicode.IsSpace(runes[hi-1]) {
			hi--
		}
		if lo < hi {
			spans = append(spans, Span{Text: string(runes[lo:hi]), Offset: lo})
		}
	}
	for i, r := range runes {
		if r == '.' || r == '!' || r == '?' {
			flush(i)
			start = i + 1
		}
	}
	flush(len(runes))
	return spans
}
