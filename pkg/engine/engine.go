/*
Package engine ties the analyzers together behind one contract.

Engine is the surface editors and transports program against. Local runs
everything in-process over a single immutable lexicon; remote.Client offers
the same contract over HTTP.

	lex, err := lexicon.Load(dir)
	if err != nil {
		log.Fatalf("lexicon: %v", err)
	}
	eng := engine.NewLocal(lex, engine.DefaultOptions())
	eng.CheckWord("dia")         // true
	eng.FindRoot("mahafantatra") // "fantatra"
*/
package engine

import (
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/quality"
	"github.com/bastiangx/teny/pkg/sentiment"
)

// Engine is the analysis contract. Every method is total: bad input yields
// empty or neutral results rather than errors.
type Engine interface {
	CheckWord(word string) bool
	SuggestCorrections(word string, limit int) []string
	FindRoot(word string) string
	Decompose(word string) morph.Decomposition
	PredictCompletions(token string, limit int) []string
	AnalyzeSentiment(text string) sentiment.Result
	CheckDocument(text string) quality.Report
}

// WordInfo gathers everything known about a single word.
type WordInfo struct {
	Word        string      `json:"word" msgpack:"word"`
	Exists      bool        `json:"exists" msgpack:"exists"`
	Known       bool        `json:"known" msgpack:"known"`
	Definition  string      `json:"definition,omitempty" msgpack:"definition,omitempty"`
	Lemma       morph.Lemma `json:"lemma" msgpack:"lemma"`
	Suggestions []string    `json:"suggestions,omitempty" msgpack:"suggestions,omitempty"`
	Sentiment   string      `json:"sentiment,omitempty" msgpack:"sentiment,omitempty"`
}

// Translation is the glossary answer for one word.
type Translation struct {
	Word        string `json:"word" msgpack:"word"`
	Translation string `json:"translation,omitempty" msgpack:"translation,omitempty"`
	Direction   string `json:"direction,omitempty" msgpack:"direction,omitempty"`
	Found       bool   `json:"found" msgpack:"found"`
}

// Service is the wider surface served by the IPC and HTTP adapters.
type Service interface {
	Engine
	Lemmatize(word string) morph.Lemma
	Complete(prefix string, limit int) []string
	WordInfo(word string) WordInfo
	Translate(word string) Translation
	Stats() map[string]int
}
