package icons

import "icongallery/internal/tokens"

// Index maps icon keys to definitions and keeps traversal order.
// An Index is never modified after NewIndex returns, so it is safe to share
// between goroutines.
type Index struct {
	order []string
	byKey map[string]Definition
}

// NewIndex builds an index from flattened definitions. When two definitions
// share a key the later one wins and the key keeps its first position.
func NewIndex(defs []Definition) *Index {
	idx := &Index{
		order: make([]string, 0, len(defs)),
		byKey: make(map[string]Definition, len(defs)),
	}
	for _, def := range defs {
		if _, ok := idx.byKey[def.Key]; !ok {
			idx.order = append(idx.order, def.Key)
		}
		idx.byKey[def.Key] = def
	}
	return idx
}

// Build flattens the tree and indexes the result.
func Build(root tokens.Group) *Index {
	return NewIndex(Flatten(root))
}

// Len returns the number of icons in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.order)
}

// Get looks up an icon by key.
func (idx *Index) Get(key string) (Definition, bool) {
	if idx == nil {
		return Definition{}, false
	}
	def, ok := idx.byKey[key]
	return def, ok
}

// Keys returns the icon keys in traversal order.
func (idx *Index) Keys() []string {
	if idx == nil {
		return nil
	}
	out := make([]string, len(idx.order))
	copy(out, idx.order)
	return out
}

// All returns every definition in traversal order.
func (idx *Index) All() []Definition {
	if idx == nil {
		return nil
	}
	out := make([]Definition, 0, len(idx.order))
	for _, key := range idx.order {
		out = append(out, idx.byKey[key])
	}
	return out
}
