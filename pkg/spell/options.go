package spell

// Option configures a Checker.
type Option func(*Checker)

// WithMaxDistance sets the largest edit distance a suggestion may have.
func WithMaxDistance(d int) Option {
	return func(c *Checker) {
		if d >= 0 {
			c.maxDistance = d
		}
	}
}

// WithDefaultLimit sets the result count used when Suggest gets limit <= 0.
func WithDefaultLimit(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.defaultLimit = n
		}
	}
}
