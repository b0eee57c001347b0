package lexicon

import "errors"

var (
	// ErrEmptyLexicon is returned when a lexicon ends up without any word.
	ErrEmptyLexicon = errors.New("lexicon: no words loaded")
	// ErrUnknownFormat is returned for files the loader cannot read.
	ErrUnknownFormat = errors.New("lexicon: unknown file format")
)
