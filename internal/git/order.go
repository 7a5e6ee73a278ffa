package git

import "sort"

// remoteRank returns the display priority for a remote name.
// Lower ranks sort first.
func remoteRank(name string) int {
	switch name {
	case "origin":
		return 0
	case "upstream":
		return 1
	default:
		return 2
	}
}

// SortRemotes returns a copy of remotes in display order: origin first, then
// upstream, then the rest lexicographically by name. The order is total,
// stable, and side-effect free; the input slice is never mutated.
func SortRemotes(remotes []Remote) []Remote {
	sorted := make([]Remote, len(remotes))
	copy(sorted, remotes)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := remoteRank(sorted[i].Name), remoteRank(sorted[j].Name)
		if ri != rj {
			return ri < rj
		}

		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}
