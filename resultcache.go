package crtavatar

import (
	"sort"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/gogpu/crtavatar/shape"
	"github.com/gogpu/crtavatar/traits"
)

// resultCache keeps finished results for explicitly seeded requests.
// Entries are cloned on the way in and out so callers may mutate what
// they receive.
type resultCache struct {
	c *gocache.Cache
}

// cachedResult is a stored result plus the overrides that named no
// registered variant, so a hit reports them like a fresh render.
type cachedResult struct {
	result  *Result
	unknown []shape.Category
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{c: gocache.New(ttl, 2*ttl)}
}

func (rc *resultCache) get(key string) (*Result, []shape.Category, bool) {
	v, ok := rc.c.Get(key)
	if !ok {
		return nil, nil, false
	}
	e := v.(cachedResult)
	return e.result.Clone(), e.unknown, true
}

func (rc *resultCache) put(key string, r *Result, unknown []shape.Category) {
	rc.c.Set(key, cachedResult{result: r.Clone(), unknown: unknown}, gocache.DefaultExpiration)
}

// resultKey identifies a request. Random overrides are dropped since they
// resolve exactly like an absent override.
func resultKey(seed uint32, res int, o traits.Overrides) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(seed), 10))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(res))

	cats := make([]shape.Category, 0, len(o))
	for c, v := range o {
		if v != "" && v != traits.Random {
			cats = append(cats, c)
		}
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, c := range cats {
		b.WriteByte('/')
		b.WriteString(string(c))
		b.WriteByte('=')
		b.WriteString(o[c])
	}
	return b.String()
}
