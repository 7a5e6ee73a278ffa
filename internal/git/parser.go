package git

import (
	"strings"

	"github.com/smykla-labs/gitremotes/internal/provider"
)

// ParseRemotes parses `git remote -v` output into Remote records.
//
// Each line has the shape `<name>\t<url> (<fetch|push>)`. Lines that do not
// match are skipped, never fatal. A name with only one direction is valid;
// the missing direction stays empty. Records preserve first-occurrence order
// of names; display ordering is a separate concern (SortRemotes). Empty
// input yields an empty slice.
//
// Classification runs once per remote against the fetch URL, falling back
// to the push URL when no fetch direction exists.
func ParseRemotes(repoPath, output string, signatures []provider.Signature) []Remote {
	byName := make(map[string]*Remote)
	order := make([]string, 0)

	for line := range strings.Lines(output) {
		name, url, direction, ok := parseRemoteLine(line)
		if !ok {
			continue
		}

		remote, exists := byName[name]
		if !exists {
			remote = &Remote{Name: name, RepoPath: repoPath}
			byName[name] = remote
			order = append(order, name)
		}

		switch direction {
		case DirectionFetch:
			remote.FetchURL = url
		case DirectionPush:
			remote.PushURL = url
		}
	}

	remotes := make([]Remote, 0, len(order))

	for _, name := range order {
		remote := byName[name]
		remote.Provider = provider.MatchURL(signatures, remote.URL())
		remotes = append(remotes, *remote)
	}

	return remotes
}

// parseRemoteLine splits one listing line into its name/url/direction triple.
func parseRemoteLine(line string) (name, url string, direction Direction, ok bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 3 {
		return "", "", "", false
	}

	tag := fields[2]
	if !strings.HasPrefix(tag, "(") || !strings.HasSuffix(tag, ")") {
		return "", "", "", false
	}

	switch Direction(strings.Trim(tag, "()")) {
	case DirectionFetch:
		direction = DirectionFetch
	case DirectionPush:
		direction = DirectionPush
	default:
		return "", "", "", false
	}

	return fields[0], fields[1], direction, true
}
