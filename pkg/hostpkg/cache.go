package hostpkg

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/planforge/cli/internal/logging"
)

// DefaultCacheTTL bounds how long a lookup result is reused. Host package
// state rarely changes mid-session, so a generous default is fine.
const DefaultCacheTTL = 5 * time.Minute

// Cached memoizes lookups of the wrapped Queryer. Failed lookups (errors) are
// not cached; "not found" results are, since they are authoritative answers.
type Cached struct {
	queryer Queryer
	cache   *gocache.Cache
}

func NewCached(queryer Queryer, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		queryer: queryer,
		cache:   gocache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Lookup(name string) (Resolved, error) {
	if cached, ok := c.cache.Get(name); ok {
		logging.Debug("Query cache hit for %s", name)
		return cached.(Resolved), nil
	}

	resolved, err := c.queryer.Lookup(name)
	if err != nil {
		return resolved, err
	}

	c.cache.SetDefault(name, resolved)
	return resolved, nil
}
