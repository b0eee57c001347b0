package quality

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bastiangx/teny/internal/utils"
)

const vowels = "aeiou"

// checkToken runs the word-level checks on one token.
func (c *Checker) checkToken(tok utils.Token) []Suggestion {
	var out []Suggestion
	at := func(sev Severity, cat Category, msg, hint string) Suggestion {
		return Suggestion{
			Offset:   tok.Offset,
			Length:   tok.Length,
			Word:     tok.Text,
			Severity: sev,
			Category: cat,
			Message:  msg,
			Hint:     hint,
		}
	}
	word := tok.Norm

	for _, fp := range c.rules.Forbidden {
		if strings.Contains(word, fp.Pattern) {
			out = append(out, at(SeverityError, CategoryPhonotactics,
				fmt.Sprintf("%q does not occur in Malagasy words", fp.Pattern), fp.Hint))
		}
	}
	for _, cluster := range c.rules.InitialClusters {
		if strings.HasPrefix(word, cluster) {
			out = append(out, at(SeverityWarning, CategoryPhonotactics,
				fmt.Sprintf("Malagasy words do not start with %q", cluster), ""))
		}
	}
	if v, ok := tripleVowel(word); ok {
		out = append(out, at(SeverityWarning, CategoryOrthography,
			fmt.Sprintf("Vowel %q repeated three times or more", v), "Check for a doubled keystroke"))
	}
	if c.rules.RareLetters != "" && strings.ContainsAny(word, c.rules.RareLetters) {
		out = append(out, at(SeverityWarning, CategoryOrthography,
			fmt.Sprintf("Letters %q are not part of the Malagasy alphabet", c.rules.RareLetters), "Loanwords are usually respelled"))
	}

	if lang, ok := c.rules.Foreign[word]; ok && !c.speller.InLexicon(word) {
		out = append(out, at(SeverityInfo, CategoryLanguage,
			fmt.Sprintf("Looks like a %s word", lang), ""))
		return out
	}

	if utils.RuneLen(word) < c.cfg.MinWordLength || !checkable(word) {
		return out
	}
	switch {
	case !c.speller.IsKnown(word):
		alts := c.speller.Suggest(word, c.cfg.AlternativeLimit)
		if len(alts) == 0 {
			out = append(out, at(SeverityError, CategorySpelling, "Unknown word", ""))
			break
		}
		sg := at(SeverityWarning, CategorySpelling, "Unknown word", "Did you mean "+strings.Join(alts, ", ")+"?")
		sg.Alternatives = alts
		out = append(out, sg)
	case !c.speller.InLexicon(word):
		if prefix, ok := c.lex.DerivationalPrefix(word); ok {
			if rest := utils.RuneLen(word) - utils.RuneLen(prefix); rest < 2 {
				out = append(out, at(SeverityWarning, CategoryMorphology,
					fmt.Sprintf("Prefix %q leaves a root of %d letter(s)", prefix, rest), ""))
			}
		}
	}
	return out
}

// checkable reports whether word is worth a dictionary lookup. Digits are
// ignored so a mistyped "tsar4" still reaches the speller.
func checkable(word string) bool {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, word)
	return letters != "" && utils.IsValidInput(letters)
}

// tripleVowel finds the first vowel written three or more times in a row.
func tripleVowel(word string) (string, bool) {
	runes := []rune(word)
	for i := 0; i+2 < len(runes); i++ {
		r := runes[i]
		if strings.ContainsRune(vowels, r) && runes[i+1] == r && runes[i+2] == r {
			return string(r), true
		}
	}
	return "", false
}
