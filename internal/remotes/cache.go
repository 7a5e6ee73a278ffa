// Package remotes provides the cached, concurrency-safe remote-metadata provider.
package remotes

import (
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/smykla-labs/gitremotes/internal/events"
	"github.com/smykla-labs/gitremotes/internal/git"
)

// Cache stores remote collections per repository path.
//
// Misses are coalesced: while a fetch for a key is in flight, every caller
// for that key awaits the same underlying operation instead of starting a
// second one. Callers only ever receive copies of the stored collection,
// never the cached slice itself.
type Cache struct {
	mu       sync.Mutex
	resolved map[string][]git.Remote
	flight   singleflight.Group
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		resolved: make(map[string][]git.Remote),
	}
}

// Get returns a copy of the resolved collection for the key, if any.
// It has no side effects.
func (c *Cache) Get(repoPath string) ([]git.Remote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	remotes, ok := c.resolved[repoPath]
	if !ok {
		return nil, false
	}

	return slices.Clone(remotes), true
}

// Set installs a collection as the single resolved value for the key,
// silently replacing any prior value.
func (c *Cache) Set(repoPath string, remotes []git.Remote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resolved[repoPath] = remotes
}

// Delete removes the cached collection so the next fetch hits the tool again.
func (c *Cache) Delete(repoPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.resolved, repoPath)
}

// Fetch runs fn single-flight for the key and caches its result.
//
// A successful result is installed via Set and returned (as a copy) to every
// coalesced caller. On failure the key is evicted so a transient failure does
// not poison later calls, and the error is returned to all waiters; the
// caller decides how to degrade.
func (c *Cache) Fetch(repoPath string, fn func() ([]git.Remote, error)) ([]git.Remote, error) {
	value, err, _ := c.flight.Do(repoPath, func() (any, error) {
		remotes, err := fn()
		if err != nil {
			c.Delete(repoPath)
			return nil, err
		}

		c.Set(repoPath, remotes)

		return remotes, nil
	})
	if err != nil {
		return nil, err
	}

	remotes, _ := value.([]git.Remote)

	return slices.Clone(remotes), nil
}

// Invalidate reacts to a cache-reset event. Resets not covering the
// "remotes" type are ignored. Invalidation is idempotent; a fetch that is
// still in flight may later overwrite the deleted entry, which converges on
// the call after next.
func (c *Cache) Invalidate(event events.CacheReset) {
	if !event.Includes(events.TypeRemotes) {
		return
	}

	c.Delete(event.RepoPath)
}
