package suggest

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// resultCache memoizes word lists per (input, limit). Entries are written once
// and never evicted; callers always get their own copy.
type resultCache struct {
	entries sync.Map
	size    atomic.Int64
	hits    atomic.Int64
}

type cachedResult struct {
	words []string
	tier  Tier
}

func cacheKey(input string, limit int) string {
	return fmt.Sprintf("%s|%d", input, limit)
}

func (rc *resultCache) load(input string, limit int) ([]string, Tier, bool) {
	v, ok := rc.entries.Load(cacheKey(input, limit))
	if !ok {
		return nil, TierNone, false
	}
	rc.hits.Add(1)
	res := v.(cachedResult)
	return slices.Clone(res.words), res.tier, true
}

func (rc *resultCache) store(input string, limit int, words []string, tier Tier) {
	_, loaded := rc.entries.LoadOrStore(cacheKey(input, limit), cachedResult{
		words: slices.Clone(words),
		tier:  tier,
	})
	if !loaded {
		rc.size.Add(1)
	}
}

func (rc *resultCache) stats(prefix string) map[string]int {
	return map[string]int{
		prefix + "CacheEntries": int(rc.size.Load()),
		prefix + "CacheHits":    int(rc.hits.Load()),
	}
}
