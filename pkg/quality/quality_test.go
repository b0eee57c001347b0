package quality

import (
	"testing"

	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/sentiment"
	"github.com/bastiangx/teny/pkg/spell"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newChecker(t *testing.T) *Checker {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	return New(lex, spell.New(lex), morph.New(lex), sentiment.New(lex), Config{})
}

func only(s []Suggestion, cat Category) []Suggestion {
	var out []Suggestion
	for _, sg := range s {
		if sg.Category == cat {
			out = append(out, sg)
		}
	}
	return out
}

func TestCheckOffsetsAreRunes(t *testing.T) {
	c := newChecker(t)
	text := "«Salama»  tompoko,\n  ny  trno tsara."
	report := c.Check(text)

	spelling := only(report.Suggestions, CategorySpelling)
	require.Len(t, spelling, 1)
	sg := spelling[0]
	assert.Equal(t, 25, sg.Offset)
	assert.Equal(t, 4, sg.Length)
	assert.Equal(t, "trno", string([]rune(text)[sg.Offset:sg.Offset+sg.Length]))
	assert.Equal(t, SeverityWarning, sg.Severity)
	assert.Contains(t, sg.Alternatives, "trano")
	assert.LessOrEqual(t, len(sg.Alternatives), DefaultAlternativeLimit)

	structure := only(report.Suggestions, CategoryStructure)
	require.Len(t, structure, 1)
	assert.Equal(t, 0, structure[0].Offset)
	assert.Equal(t, SeverityWarning, structure[0].Severity)

	assert.Equal(t, 5, report.Statistics.TotalWords)
	assert.Equal(t, 2, report.Statistics.Warnings)
	assert.Equal(t, 90, report.Score.Score)
	assert.Equal(t, "Excellent", report.Score.Level)
}

func TestCheckWordRules(t *testing.T) {
	c := newChecker(t)
	testCases := []struct {
		text     string
		category Category
		severity Severity
	}{
		{"Manbady", CategoryPhonotactics, SeverityError},
		{"nkatra", CategoryPhonotactics, SeverityWarning},
		{"tsaaara", CategoryOrthography, SeverityWarning},
		{"waka", CategoryOrthography, SeverityWarning},
		{"the", CategoryLanguage, SeverityInfo},
		{"mia", CategoryMorphology, SeverityWarning},
		{"xkqzvb", CategorySpelling, SeverityError},
	}
	for _, tc := range testCases {
		report := c.Check(tc.text)
		found := only(report.Suggestions, tc.category)
		if assert.NotEmpty(t, found, tc.text) {
			assert.Equal(t, tc.severity, found[0].Severity, tc.text)
			assert.Equal(t, 0, found[0].Offset, tc.text)
		}
	}
}

func TestCheckForeignWordSkipsSpelling(t *testing.T) {
	c := newChecker(t)
	report := c.Check("the")
	assert.Empty(t, only(report.Suggestions, CategorySpelling))
	assert.Len(t, only(report.Suggestions, CategoryLanguage), 1)
}

func TestCheckSkipsShortAndNumericTokens(t *testing.T) {
	c := newChecker(t)
	report := c.Check("zy 2024 xq")
	assert.Empty(t, only(report.Suggestions, CategorySpelling))
}

func TestCheckWordsWithDigits(t *testing.T) {
	c := newChecker(t)

	report := c.Check("tsar4")
	spelling := only(report.Suggestions, CategorySpelling)
	require.Len(t, spelling, 1)
	assert.Equal(t, "tsar4", spelling[0].Word)
	assert.Contains(t, spelling[0].Alternatives, "tsara")
	assert.Len(t, report.Lemmas, 1)
	assert.Less(t, report.Score.Score, 100)

	report = c.Check("2024")
	assert.Empty(t, only(report.Suggestions, CategorySpelling))
	assert.Empty(t, report.Lemmas)
}

func TestCheckSortOrder(t *testing.T) {
	c := newChecker(t)
	report := c.Check("Manbady")
	require.GreaterOrEqual(t, len(report.Suggestions), 2)
	assert.Equal(t, SeverityError, report.Suggestions[0].Severity)
	for i := 1; i < len(report.Suggestions); i++ {
		prev, cur := report.Suggestions[i-1], report.Suggestions[i]
		assert.LessOrEqual(t, prev.Offset, cur.Offset)
		if prev.Offset == cur.Offset {
			assert.LessOrEqual(t, prev.Severity.rank(), cur.Severity.rank())
		}
	}
	assert.Len(t, report.ByCategory[CategoryPhonotactics], 1)
}

func TestCheckSentenceStructure(t *testing.T) {
	c := newChecker(t)
	report := c.Check("Mandeha aho. Ny zanaka mandeha any tsena.")

	require.Len(t, report.Sentences, 2)
	assert.True(t, report.Sentences[0].VSO)
	assert.Equal(t, 2, report.Sentences[1].VerbPosition)
	assert.Equal(t, 13, report.Sentences[1].Offset)
	assert.Equal(t, []string{"any"}, report.Sentences[1].Prepositions)

	structure := only(report.Suggestions, CategoryStructure)
	require.Len(t, structure, 1)
	assert.Equal(t, SeverityInfo, structure[0].Severity)
	assert.Equal(t, 13, structure[0].Offset)

	assert.Equal(t, 2, report.Statistics.TotalSentences)
	assert.Equal(t, 3.5, report.Statistics.AverageSentenceLength)
	assert.Equal(t, 50.0, report.Statistics.VSOCompliance)
}

func TestCheckLongSentenceWithoutConjunction(t *testing.T) {
	c := newChecker(t)
	text := "mandeha"
	for i := 0; i < 21; i++ {
		text += " tsara"
	}
	report := c.Check(text)
	structure := only(report.Suggestions, CategoryStructure)
	require.Len(t, structure, 1)
	assert.Equal(t, SeverityWarning, structure[0].Severity)
	assert.Equal(t, 1, report.Statistics.ComplexSentences)
}

func TestCheckEmpty(t *testing.T) {
	c := newChecker(t)
	report := c.Check("")
	assert.NotNil(t, report.Suggestions)
	assert.Empty(t, report.Suggestions)
	assert.Equal(t, 100, report.Score.Score)
	assert.Equal(t, sentiment.Neutral, report.Sentiment.Label)
	assert.Equal(t, 50, report.Sentiment.Score)
}

func TestCheckLemmas(t *testing.T) {
	c := newChecker(t)
	report := c.Check("Mahafantatra ny fanasana")
	require.Len(t, report.Lemmas, 3)
	assert.Equal(t, "fantatra", report.Lemmas[0].Root)
	assert.Equal(t, "asa", report.Lemmas[2].Root)
}

func TestComputeScoreBoundedAndMonotonic(t *testing.T) {
	prev := 101
	for errs := 0; errs <= 40; errs++ {
		s := ComputeScore(Statistics{TotalWords: 25, Errors: errs})
		assert.GreaterOrEqual(t, s.Score, 0)
		assert.LessOrEqual(t, s.Score, 100)
		assert.LessOrEqual(t, s.Score, prev, "errors=%d", errs)
		prev = s.Score
	}

	base := ComputeScore(Statistics{TotalWords: 12, Warnings: 2}).Score
	more := ComputeScore(Statistics{TotalWords: 12, Warnings: 3}).Score
	assert.LessOrEqual(t, more, base)

	assert.Equal(t, 100, ComputeScore(Statistics{TotalWords: 3, Info: 5}).Score)
	assert.Equal(t, 0, ComputeScore(Statistics{TotalWords: 1, Errors: 50}).Score)
}

func TestLevel(t *testing.T) {
	testCases := map[int]string{
		100: "Excellent",
		90:  "Excellent",
		75:  "Good",
		60:  "Fair",
		40:  "Passable",
		39:  "Needs work",
	}
	for score, want := range testCases {
		assert.Equal(t, want, Level(score), score)
	}
}
