package icons

import "strings"

// Definition is one icon taken from the token tree together with the data
// derived from its position in the tree.
type Definition struct {
	// Key uniquely identifies the icon within one document:
	// Groups and Label joined with "_".
	Key string `json:"key"`
	// Label is the entry label of the icon in its parent group.
	Label string `json:"label"`
	// Name is the declared $name of the icon. It may be empty.
	Name string `json:"name"`
	// Value is the raw SVG markup. It is trusted and never sanitized.
	Value string `json:"value"`
	// Description is the optional $description.
	Description string `json:"description,omitempty"`
	// Groups is the path of group labels from the icon root to the icon.
	Groups []string `json:"groups"`
	// Keywords are the lowercase search terms of the icon.
	Keywords []string `json:"keywords"`
}

// Matches reports whether any keyword contains the lowercase query.
func (d Definition) Matches(lowerQuery string) bool {
	for _, word := range d.Keywords {
		if strings.Contains(word, lowerQuery) {
			return true
		}
	}
	return false
}
