package layout

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node, depth int) error

// Walk performs a pre-order traversal of the tree starting at root.
// If walkFunc returns a non-nil error, the walk stops and returns it.
func Walk(root *Node, walkFunc WalkFunc) error {
	return walk(root, 0, walkFunc, nil)
}

// WalkWithLeave performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave after.
// Either callback may be nil.
func WalkWithLeave(root *Node, enter, leave WalkFunc) error {
	return walk(root, 0, enter, leave)
}

func walk(node *Node, depth int, enter, leave WalkFunc) error {
	if node == nil {
		return nil
	}

	if enter != nil {
		if err := enter(node, depth); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := walk(child, depth+1, enter, leave); err != nil {
			return err
		}
	}

	if leave != nil {
		if err := leave(node, depth); err != nil {
			return err
		}
	}

	return nil
}

// Text concatenates the data of every leaf under root in document order.
func Text(root *Node) string {
	var out []byte
	_ = Walk(root, func(n *Node, _ int) error {
		if n.IsLeaf() {
			out = append(out, n.Data...)
		}
		return nil
	})
	return string(out)
}
