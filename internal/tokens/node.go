package tokens

// TypeIcon is the $type discriminator value that marks an icon leaf.
const TypeIcon = "icon"

// Field names used by icon leaves in the token document.
const (
	fieldType        = "$type"
	fieldName        = "$name"
	fieldValue       = "$value"
	fieldDescription = "$description"
)

// Node is a node of the token tree. It is either an Icon or a Group.
type Node interface {
	isNode()
}

// Icon is a leaf of the token tree describing one concrete icon.
type Icon struct {
	Name        string // Declared $name, may be empty
	Value       string // Raw SVG markup
	Description string // Optional $description
}

// Group is an interior node. Children keep the order they had in the document.
type Group struct {
	Children []Child
}

// Child is a labelled entry of a Group.
type Child struct {
	Label string
	Node  Node
}

func (Icon) isNode()  {}
func (Group) isNode() {}

// Len returns the number of icon leaves below the group.
func (g Group) Len() int {
	n := 0
	for _, child := range g.Children {
		switch node := child.Node.(type) {
		case Icon:
			n++
		case Group:
			n += node.Len()
		}
	}
	return n
}
