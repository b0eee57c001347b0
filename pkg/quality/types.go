package quality

import (
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/sentiment"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// rank orders severities most serious first.
func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Category groups findings by the check that produced them.
type Category string

const (
	CategorySpelling     Category = "spelling"
	CategoryMorphology   Category = "morphology"
	CategoryPhonotactics Category = "phonotactics"
	CategoryOrthography  Category = "orthography"
	CategoryLanguage     Category = "language"
	CategoryStructure    Category = "structure"
)

// Suggestion is one finding anchored in the checked text.
// Offset and Length count runes.
type Suggestion struct {
	Offset       int      `json:"offset" msgpack:"o"`
	Length       int      `json:"length" msgpack:"n"`
	Word         string   `json:"word" msgpack:"w"`
	Severity     Severity `json:"severity" msgpack:"s"`
	Category     Category `json:"category" msgpack:"c"`
	Message      string   `json:"message" msgpack:"m"`
	Hint         string   `json:"hint,omitempty" msgpack:"h,omitempty"`
	Alternatives []string `json:"alternatives,omitempty" msgpack:"a,omitempty"`
}

// Statistics summarize a document.
type Statistics struct {
	TotalWords            int     `json:"total_words" msgpack:"total_words"`
	UniqueWords           int     `json:"unique_words" msgpack:"unique_words"`
	TotalSentences        int     `json:"total_sentences" msgpack:"total_sentences"`
	AverageSentenceLength float64 `json:"average_sentence_length" msgpack:"average_sentence_length"`
	VSOCompliance         float64 `json:"vso_compliance" msgpack:"vso_compliance"`
	ComplexSentences      int     `json:"complex_sentences" msgpack:"complex_sentences"`
	TotalSuggestions      int     `json:"total_suggestions" msgpack:"total_suggestions"`
	Errors                int     `json:"errors" msgpack:"errors"`
	Warnings              int     `json:"warnings" msgpack:"warnings"`
	Info                  int     `json:"info" msgpack:"info"`
}

// Score is the document grade.
type Score struct {
	Score   int      `json:"score" msgpack:"score"`
	Level   string   `json:"level" msgpack:"level"`
	Details []string `json:"details,omitempty" msgpack:"details,omitempty"`
}

// SentenceAnalysis describes the structure of one sentence.
type SentenceAnalysis struct {
	Text         string   `json:"text" msgpack:"text"`
	Offset       int      `json:"offset" msgpack:"offset"`
	WordCount    int      `json:"word_count" msgpack:"word_count"`
	HasVerb      bool     `json:"has_verb" msgpack:"has_verb"`
	VerbPosition int      `json:"verb_position" msgpack:"verb_position"`
	Conjunctions []string `json:"conjunctions,omitempty" msgpack:"conjunctions,omitempty"`
	Prepositions []string `json:"prepositions,omitempty" msgpack:"prepositions,omitempty"`
	Structure    string   `json:"structure" msgpack:"structure"`
	VSO          bool     `json:"vso" msgpack:"vso"`
}

// Report is everything Check finds in a document.
type Report struct {
	Suggestions []Suggestion              `json:"suggestions" msgpack:"suggestions"`
	ByCategory  map[Category][]Suggestion `json:"by_category" msgpack:"by_category"`
	Statistics  Statistics                `json:"statistics" msgpack:"statistics"`
	Score       Score                     `json:"quality_score" msgpack:"quality_score"`
	Sentiment   sentiment.Result          `json:"sentiment" msgpack:"sentiment"`
	Sentences   []SentenceAnalysis        `json:"sentences" msgpack:"sentences"`
	Lemmas      []morph.Lemma             `json:"lemmas" msgpack:"lemmas"`
}
