package icons

import (
	"strings"

	"icongallery/internal/tokens"
)

// keySeparator joins group labels and the icon label into a key, and splits
// labels and names into keywords.
const keySeparator = "_"

// Flatten walks the icon tree depth-first in document order and returns one
// Definition per icon leaf.
func Flatten(root tokens.Group) []Definition {
	return flatten(root, nil, nil)
}

func flatten(group tokens.Group, ancestors []string, out []Definition) []Definition {
	for _, child := range group.Children {
		switch node := child.Node.(type) {
		case tokens.Icon:
			out = append(out, newDefinition(child.Label, node, ancestors))
		case tokens.Group:
			// Full slice expression so siblings never share a backing array.
			out = flatten(node, append(ancestors[:len(ancestors):len(ancestors)], child.Label), out)
		}
	}
	return out
}

func newDefinition(label string, icon tokens.Icon, ancestors []string) Definition {
	groups := make([]string, len(ancestors))
	copy(groups, ancestors)

	path := make([]string, 0, len(groups)+1)
	path = append(path, groups...)
	path = append(path, label)

	return Definition{
		Key:         strings.Join(path, keySeparator),
		Label:       label,
		Name:        icon.Name,
		Value:       icon.Value,
		Description: icon.Description,
		Groups:      groups,
		Keywords:    keywords(label, icon.Name, groups),
	}
}

// keywords returns the lowercase words of the label, the name and every
// group, deduplicated in order of first appearance. Empty words are dropped.
func keywords(label, name string, groups []string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		for _, word := range strings.Split(s, keySeparator) {
			word = strings.ToLower(word)
			if word == "" {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			out = append(out, word)
		}
	}

	add(label)
	add(name)
	for _, g := range groups {
		add(g)
	}
	return out
}
