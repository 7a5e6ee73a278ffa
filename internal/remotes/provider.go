package remotes

import (
	"context"

	"github.com/smykla-labs/gitremotes/internal/events"
	"github.com/smykla-labs/gitremotes/internal/git"
	"github.com/smykla-labs/gitremotes/internal/provider"
	"github.com/smykla-labs/gitremotes/pkg/logger"
)

// SignatureLoader loads the hosting-provider signatures for a repository.
// It runs on every cache miss so configuration changes apply to the next
// fetch.
type SignatureLoader func(repoPath string) []provider.Signature

// ListOptions controls filtering and ordering of a remote collection.
// Both apply to a snapshot copy, never to the cached value.
type ListOptions struct {
	// Filter keeps only remotes the predicate accepts.
	Filter func(git.Remote) bool

	// Sort orders the result for display (origin, upstream, then by name).
	Sort bool
}

// AddOptions controls AddRemote behavior.
type AddOptions struct {
	// Fetch additionally fetches the remote after adding it (`-f`).
	Fetch bool
}

// Provider is the public remote-metadata surface: cached enumeration plus
// serialized, cache-invalidating mutations.
type Provider struct {
	runner     git.Runner
	cache      *Cache
	gate       *Gate
	bus        *events.Bus
	signatures SignatureLoader
	log        logger.Logger
}

// NewProvider wires a Provider and subscribes its cache to bus resets.
func NewProvider(runner git.Runner, bus *events.Bus, signatures SignatureLoader, log logger.Logger) *Provider {
	cache := NewCache()
	bus.Subscribe(cache.Invalidate)

	return &Provider{
		runner:     runner,
		cache:      cache,
		gate:       NewGate(),
		bus:        bus,
		signatures: signatures,
		log:        log,
	}
}

// GetRemotes returns the repository's remotes, fetching through the cache.
//
// An empty repoPath yields an empty collection. Fetch failures are absorbed:
// the error is logged, the cache key is evicted so the next call retries,
// and callers observe an empty collection rather than an error. Concurrent
// callers for one repository share a single tool invocation.
func (p *Provider) GetRemotes(ctx context.Context, repoPath string, opts ListOptions) []git.Remote {
	if repoPath == "" {
		return []git.Remote{}
	}

	remotes, ok := p.cache.Get(repoPath)
	if !ok {
		var err error

		remotes, err = p.cache.Fetch(repoPath, func() ([]git.Remote, error) {
			return p.fetchRemotes(ctx, repoPath)
		})
		if err != nil {
			p.log.Error("failed to fetch remotes", "repo", repoPath, "error", err)
			remotes = []git.Remote{}
		}
	}

	if opts.Filter != nil {
		filtered := make([]git.Remote, 0, len(remotes))

		for _, remote := range remotes {
			if opts.Filter(remote) {
				filtered = append(filtered, remote)
			}
		}

		remotes = filtered
	}

	if opts.Sort {
		remotes = git.SortRemotes(remotes)
	}

	return remotes
}

// fetchRemotes runs the tool and classifies the parsed records.
func (p *Provider) fetchRemotes(ctx context.Context, repoPath string) ([]git.Remote, error) {
	signatures := p.signatures(repoPath)

	output, err := p.runner.ListRemotes(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	return git.ParseRemotes(repoPath, output, signatures), nil
}

// AddRemote adds a remote, serialized per repository. On success it
// publishes a cache reset so the next GetRemotes reflects ground truth;
// on failure the tool error propagates unmodified.
func (p *Provider) AddRemote(ctx context.Context, repoPath, name, url string, opts AddOptions) error {
	return p.gate.Do(repoPath, func() error {
		if err := p.runner.AddRemote(ctx, repoPath, name, url, opts.Fetch); err != nil {
			return err
		}

		p.log.Debug("added remote", "repo", repoPath, "name", name, "url", url)
		p.publishReset(repoPath)

		return nil
	})
}

// AddRemoteWithResult adds a remote and re-queries it by URL. The re-query
// is best effort: nil is returned when the new remote does not appear.
func (p *Provider) AddRemoteWithResult(ctx context.Context, repoPath, name, url string, opts AddOptions) (*git.Remote, error) {
	if err := p.AddRemote(ctx, repoPath, name, url, opts); err != nil {
		return nil, err
	}

	matches := p.GetRemotes(ctx, repoPath, ListOptions{
		Filter: func(remote git.Remote) bool { return remote.HasURL(url) },
	})
	if len(matches) == 0 {
		return nil, nil
	}

	return &matches[0], nil
}

// PruneRemote deletes stale remote-tracking refs, serialized per repository.
// Success publishes a cache reset; failure propagates.
func (p *Provider) PruneRemote(ctx context.Context, repoPath, name string) error {
	return p.gate.Do(repoPath, func() error {
		if err := p.runner.PruneRemote(ctx, repoPath, name); err != nil {
			return err
		}

		p.log.Debug("pruned remote", "repo", repoPath, "name", name)
		p.publishReset(repoPath)

		return nil
	})
}

// RemoveRemote removes a remote, serialized per repository.
// Success publishes a cache reset; failure propagates.
func (p *Provider) RemoveRemote(ctx context.Context, repoPath, name string) error {
	return p.gate.Do(repoPath, func() error {
		if err := p.runner.RemoveRemote(ctx, repoPath, name); err != nil {
			return err
		}

		p.log.Debug("removed remote", "repo", repoPath, "name", name)
		p.publishReset(repoPath)

		return nil
	})
}

func (p *Provider) publishReset(repoPath string) {
	p.bus.Publish(events.CacheReset{
		RepoPath: repoPath,
		Types:    []string{events.TypeRemotes},
	})
}
