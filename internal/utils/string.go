package utils

import (
	"unicode"
)

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsWordRune accepts letters and the in-word apostrophe.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '’' || r == '-'
}

// IsValidInput checks if input is worth sending through the dictionary checks.
// Rejects empty strings, digits, stray symbols and runs like "aaaa".
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if ContainsNumbers(s) {
		return false
	}
	for _, r := range s {
		if !IsWordRune(r) {
			return false
		}
	}
	return !IsRepetitive(s)
}

// IsRepetitive checks for the same rune repeated 3+ times over the whole string.
func IsRepetitive(s string) bool {
	runes := []rune(s)
	if len(runes) <= 2 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}
