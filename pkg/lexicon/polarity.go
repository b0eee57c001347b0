package lexicon

// Polarity holds the sentiment word lists. A word may sit in both.
type Polarity struct {
	positive *WordSet
	negative *WordSet
}

func (p *Polarity) IsPositive(word string) bool { return p.positive.Has(word) }
func (p *Polarity) IsNegative(word string) bool { return p.negative.Has(word) }

// Sizes returns the number of positive and negative entries.
func (p *Polarity) Sizes() (positive, negative int) {
	return p.positive.Len(), p.negative.Len()
}
