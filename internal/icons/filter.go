package icons

import "strings"

// Filter returns the icons whose keywords contain query as a substring,
// ignoring case, in index order. An empty query returns every icon.
// The query is not trimmed.
func Filter(idx *Index, query string) []Definition {
	all := idx.All()
	if query == "" {
		return all
	}

	lowerQuery := strings.ToLower(query)
	out := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Matches(lowerQuery) {
			out = append(out, def)
		}
	}
	return out
}
