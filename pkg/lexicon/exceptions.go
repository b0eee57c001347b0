package lexicon

import "github.com/bastiangx/teny/internal/utils"

// ExceptionMap maps irregular word-forms straight to their roots.
type ExceptionMap struct {
	roots map[string]string
	known map[string]struct{}
}

func newExceptionMap(src map[string]string) *ExceptionMap {
	em := &ExceptionMap{
		roots: make(map[string]string, len(src)),
		known: make(map[string]struct{}, len(src)),
	}
	for word, root := range src {
		word, root = utils.Normalize(word), utils.Normalize(root)
		if word == "" || root == "" {
			continue
		}
		em.roots[word] = root
		em.known[root] = struct{}{}
	}
	return em
}

// Lookup returns the root recorded for word.
func (em *ExceptionMap) Lookup(word string) (string, bool) {
	root, ok := em.roots[word]
	return root, ok
}

// IsRoot reports whether word is the target of some exception.
func (em *ExceptionMap) IsRoot(word string) bool {
	_, ok := em.known[word]
	return ok
}

// Roots returns the distinct exception targets.
func (em *ExceptionMap) Roots() []string {
	out := make([]string, 0, len(em.known))
	for r := range em.known {
		out = append(out, r)
	}
	return out
}

func (em *ExceptionMap) Len() int { return len(em.roots) }
