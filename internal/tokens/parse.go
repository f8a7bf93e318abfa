package tokens

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Parse decodes a token document and returns the icon tree found at rootPath.
// rootPath uses gjson path syntax (e.g. "kda.foundation.icon"); an empty
// rootPath means the whole document is the icon tree.
//
// Whether a node is an icon leaf or a group is decided here, once. Any node
// that is not a JSON object is reported as a *StructureError.
func Parse(doc []byte, rootPath string) (Group, error) {
	if !gjson.ValidBytes(doc) {
		return Group{}, fmt.Errorf("%w: malformed JSON document", ErrParse)
	}

	root := gjson.ParseBytes(doc)
	if rootPath != "" {
		root = root.Get(rootPath)
		if !root.Exists() {
			return Group{}, fmt.Errorf("%w: envelope path %q not found", ErrParse, rootPath)
		}
	}
	if !root.IsObject() {
		return Group{}, fmt.Errorf("%w: envelope path %q is %s, want object", ErrParse, rootPath, root.Type)
	}

	return parseGroup(root, nil)
}

func parseGroup(obj gjson.Result, path []string) (Group, error) {
	var (
		group Group
		err   error
	)
	// ForEach walks the object in document order, which is what the
	// traversal order of the index is based on.
	obj.ForEach(func(key, value gjson.Result) bool {
		label := key.String()
		childPath := append(path[:len(path):len(path)], label)

		var node Node
		node, err = parseNode(value, childPath)
		if err != nil {
			return false
		}
		group.Children = append(group.Children, Child{Label: label, Node: node})
		return true
	})
	if err != nil {
		return Group{}, err
	}
	return group, nil
}

func parseNode(value gjson.Result, path []string) (Node, error) {
	if !value.IsObject() {
		return nil, &StructureError{
			Path:   path,
			Reason: fmt.Sprintf("expected object, got %s", value.Type),
		}
	}

	fields := value.Map()
	if t, ok := fields[fieldType]; ok && t.Type == gjson.String && t.Str == TypeIcon {
		return Icon{
			Name:        fields[fieldName].String(),
			Value:       fields[fieldValue].String(),
			Description: fields[fieldDescription].String(),
		}, nil
	}

	return parseGroup(value, path)
}
