package annotate

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/persistorai/genenet/internal/metrics"
)

// cachedResult holds one gene's lookup result.
type cachedResult struct {
	ids   []string
	names []string
}

// CachedLookup memoises a Lookup per gene for the lifetime of the value.
// Concurrent lookups of the same gene share one upstream call.
type CachedLookup struct {
	source string
	next   Lookup
	cache  sync.Map
	group  singleflight.Group
}

// NewCachedLookup wraps next; source labels cache-hit metrics ("kegg", "go").
func NewCachedLookup(source string, next Lookup) *CachedLookup {
	return &CachedLookup{source: source, next: next}
}

// Lookup returns the cached result for gene, fetching it on first access.
// Errors are not cached.
func (c *CachedLookup) Lookup(ctx context.Context, gene string) (ids, names []string, err error) {
	if v, ok := c.cache.Load(gene); ok {
		if r, valid := v.(cachedResult); valid {
			metrics.LookupCacheHits.WithLabelValues(c.source).Inc()
			return clone(r.ids), clone(r.names), nil
		}
	}

	val, err, _ := c.group.Do(gene, func() (any, error) {
		// Double-check cache after winning the singleflight race.
		if v, ok := c.cache.Load(gene); ok {
			return v, nil
		}

		ids, names, err := c.next.Lookup(ctx, gene)
		if err != nil {
			return nil, err
		}

		r := cachedResult{ids: ids, names: names}
		c.cache.Store(gene, r)

		return r, nil
	})
	if err != nil {
		return nil, nil, err
	}

	r, ok := val.(cachedResult)
	if !ok {
		return nil, nil, fmt.Errorf("annotate: unexpected singleflight result type %T", val)
	}

	return clone(r.ids), clone(r.names), nil
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}

	return append([]string(nil), s...)
}
