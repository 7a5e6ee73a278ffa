package git

import (
	"context"
	"sync"
)

// FakeRunner implements Runner for testing without executing git commands.
// This is a struct-based fake (not a mock) that allows tests to set state
// directly and inspect the calls made against it.
type FakeRunner struct {
	mu sync.Mutex

	// Listing is the raw `git remote -v` output ListRemotes returns.
	Listing string

	// ListErr, when set, is returned by ListRemotes.
	ListErr error

	// MutateErr, when set, is returned by Add/Prune/RemoveRemote.
	MutateErr error

	// ListBarrier, when set, blocks ListRemotes until the channel is closed.
	// Tests use it to hold a fetch in flight.
	ListBarrier chan struct{}

	// MutateBarrier, when set, blocks AddRemote until the channel is closed.
	// Tests use it to hold a mutation in flight.
	MutateBarrier chan struct{}

	// Calls records every invocation as its argv-like token list.
	Calls [][]string

	listCalls int
}

// NewFakeRunner creates a FakeRunner with a two-remote listing.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Listing: "origin\tgit@github.com:user/repo.git (fetch)\n" +
			"origin\tgit@github.com:user/repo.git (push)\n" +
			"upstream\tgit@github.com:org/repo.git (fetch)\n" +
			"upstream\tgit@github.com:org/repo.git (push)\n",
	}
}

// ListRemotes returns the configured listing or error.
func (f *FakeRunner) ListRemotes(ctx context.Context, repoPath string) (string, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, []string{"remote", "-v"})
	f.listCalls++
	barrier := f.ListBarrier
	listing, err := f.Listing, f.ListErr
	f.mu.Unlock()

	if barrier != nil {
		select {
		case <-barrier:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return listing, err
}

// AddRemote records the call and returns MutateErr.
func (f *FakeRunner) AddRemote(_ context.Context, _, name, url string, fetch bool) error {
	args := []string{"remote", "add"}
	if fetch {
		args = append(args, "-f")
	}

	args = append(args, name, url)

	f.mu.Lock()
	f.Calls = append(f.Calls, args)
	err := f.MutateErr
	barrier := f.MutateBarrier
	f.mu.Unlock()

	if barrier != nil {
		<-barrier
	}

	return err
}

// PruneRemote records the call and returns MutateErr.
func (f *FakeRunner) PruneRemote(_ context.Context, _, name string) error {
	f.mu.Lock()
	f.Calls = append(f.Calls, []string{"remote", "prune", name})
	err := f.MutateErr
	f.mu.Unlock()

	return err
}

// RemoveRemote records the call and returns MutateErr.
func (f *FakeRunner) RemoveRemote(_ context.Context, _, name string) error {
	f.mu.Lock()
	f.Calls = append(f.Calls, []string{"remote", "remove", name})
	err := f.MutateErr
	f.mu.Unlock()

	return err
}

// CallsSnapshot returns a copy of the recorded calls, safe to read while
// other goroutines are still invoking the fake.
func (f *FakeRunner) CallsSnapshot() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	calls := make([][]string, len(f.Calls))
	copy(calls, f.Calls)

	return calls
}

// ListCalls returns how many times ListRemotes has been invoked.
func (f *FakeRunner) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.listCalls
}

// Ensure FakeRunner implements Runner.
var _ Runner = (*FakeRunner)(nil)
