// Package layout provides the report tree handed to reporters for rendering.
package layout

// Kind classifies the type of a layout node.
type Kind uint8

// Node kinds for report content.
const (
	KindSection Kind = iota
	KindTitle
	KindParagraph
	KindText
	KindVerbatim
	KindTable
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindTitle:
		return "title"
	case KindParagraph:
		return "paragraph"
	case KindText:
		return "text"
	case KindVerbatim:
		return "verbatim"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Node is a single element of a report tree.
type Node struct {
	// Kind identifies what type of node this is.
	Kind Kind

	// Data holds the literal text of text and verbatim nodes.
	Data string

	// ReportID names the report a root section was built for.
	// Empty when the section does not belong to a named report.
	ReportID string

	// Cols is the column count of a table node. Table cells are its
	// children in row-major order.
	Cols int

	// Children holds nested nodes in document order.
	Children []*Node

	parent *Node
}

// Parent returns the node this node was appended to, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Append adds children to the end of n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child == nil {
			continue
		}
		child.parent = n
		n.Children = append(n.Children, child)
	}
	return n
}

// Child follows a path of child indexes starting at n.
// It returns false if any index is out of range.
func (n *Node) Child(path ...int) (*Node, bool) {
	cur := n
	for _, idx := range path {
		if cur == nil || idx < 0 || idx >= len(cur.Children) {
			return nil, false
		}
		cur = cur.Children[idx]
	}
	return cur, cur != nil
}

// IsLeaf reports whether the node carries literal text.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindText || n.Kind == KindVerbatim
}

// Rows splits the cells of a table node into rows of Cols cells.
// A trailing partial row is kept.
func (n *Node) Rows() [][]*Node {
	if n.Kind != KindTable || n.Cols <= 0 {
		return nil
	}
	rows := make([][]*Node, 0, (len(n.Children)+n.Cols-1)/n.Cols)
	for start := 0; start < len(n.Children); start += n.Cols {
		end := min(start+n.Cols, len(n.Children))
		rows = append(rows, n.Children[start:end])
	}
	return rows
}
