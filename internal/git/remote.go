// Package git models repository remotes and their enumeration via the git CLI.
package git

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/gitremotes/internal/provider"
)

// ErrNotRepository is returned when a path does not point at a git repository.
var ErrNotRepository = errors.New("not a git repository")

// Direction distinguishes the two URL slots of a remote.
type Direction string

const (
	// DirectionFetch marks the URL git fetches from.
	DirectionFetch Direction = "fetch"

	// DirectionPush marks the URL git pushes to.
	DirectionPush Direction = "push"
)

// Remote is one named remote endpoint of a repository.
// Remotes are constructed by ParseRemotes and immutable afterwards; a
// repository's remote set is wholly replaced on every successful fetch.
type Remote struct {
	// Name is the remote identifier, unique within a repository.
	Name string

	// RepoPath is the owning repository's path.
	RepoPath string

	// FetchURL is the fetch-direction URL, empty if the remote has none.
	FetchURL string

	// PushURL is the push-direction URL, empty if the remote has none.
	PushURL string

	// Provider is the hosting-provider classification, nil if no
	// signature matched.
	Provider *provider.Match
}

// URL returns the fetch URL, falling back to the push URL.
func (r Remote) URL() string {
	if r.FetchURL != "" {
		return r.FetchURL
	}

	return r.PushURL
}

// HasURL reports whether the remote carries the given URL in either direction.
func (r Remote) HasURL(url string) bool {
	return r.FetchURL == url || r.PushURL == url
}

// DefaultRemote returns the remote named "origin" if present, otherwise the
// first remote, otherwise nil.
func DefaultRemote(remotes []Remote) *Remote {
	for i := range remotes {
		if remotes[i].Name == "origin" {
			return &remotes[i]
		}
	}

	if len(remotes) > 0 {
		return &remotes[0]
	}

	return nil
}
