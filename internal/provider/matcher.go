package provider

import (
	"net/url"
	"regexp"
	"strings"
)

// Match is the classification result for a remote URL.
type Match struct {
	Name     string
	Kind     Kind
	Host     string
	Owner    string
	Repo     string
	Protocol string
}

// scpPattern matches scp-like ssh URLs: git@host:owner/repo.git or
// ssh://git@host[:port]/owner/repo.git.
var scpPattern = regexp.MustCompile(`^(?:ssh://)?(?:[^@/]+@)?([^:/]+)(?::\d+)?[:/](.+?)(?:\.git)?/?$`)

// MatchURL classifies a remote URL against the signature list,
// first-match-wins. It returns nil when no signature matches.
// The function is pure and cheap enough to call once per URL in a loop.
func MatchURL(signatures []Signature, remoteURL string) *Match {
	host, owner, repo, protocol := splitRemoteURL(remoteURL)
	if host == "" {
		return nil
	}

	for _, sig := range signatures {
		if !hostMatches(sig.Host, host) {
			continue
		}

		return &Match{
			Name:     sig.Name,
			Kind:     sig.Kind,
			Host:     host,
			Owner:    owner,
			Repo:     repo,
			Protocol: protocol,
		}
	}

	return nil
}

// hostMatches reports whether host equals pattern or is a subdomain of it.
func hostMatches(pattern, host string) bool {
	return host == pattern || strings.HasSuffix(host, "."+pattern)
}

// splitRemoteURL extracts host, owner, repo, and protocol from an ssh or
// http(s) remote URL. Unrecognized formats yield an empty host.
func splitRemoteURL(remoteURL string) (host, owner, repo, protocol string) {
	switch {
	case strings.HasPrefix(remoteURL, "http://"), strings.HasPrefix(remoteURL, "https://"):
		parsed, err := url.Parse(remoteURL)
		if err != nil {
			return "", "", "", ""
		}

		path := strings.TrimPrefix(parsed.Path, "/")
		path = strings.TrimSuffix(path, "/")
		path = strings.TrimSuffix(path, ".git")
		owner, repo = splitPath(path)

		return parsed.Hostname(), owner, repo, "https"

	case strings.HasPrefix(remoteURL, "git@"), strings.HasPrefix(remoteURL, "ssh://"):
		matches := scpPattern.FindStringSubmatch(remoteURL)
		if matches == nil {
			return "", "", "", ""
		}

		owner, repo = splitPath(matches[2])

		return matches[1], owner, repo, "ssh"

	default:
		return "", "", "", ""
	}
}

// splitPath splits "owner/nested/repo" into owner ("owner/nested") and repo.
func splitPath(path string) (owner, repo string) {
	if path == "" {
		return "", ""
	}

	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", path
	}

	return path[:idx], path[idx+1:]
}
