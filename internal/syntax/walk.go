package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(n *Node) bool

// Walk traverses the tree rooted at n in depth-first pre-order.
// If v returns false, children are not visited.
func Walk(n *Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}
	for _, c := range n.children {
		if c.Node != nil {
			Walk(c.Node, v)
		}
	}
}

// Inspect calls f for every child element below n, tokens included, in
// source order. If f returns false for a node element, its children are
// skipped.
func Inspect(n *Node, f func(Element) bool) {
	for _, c := range n.children {
		if f(c) && c.Node != nil {
			Inspect(c.Node, f)
		}
	}
}

// Find returns every node of the given kind below and including n,
// in pre-order.
func Find(n *Node, kind SyntaxKind) []*Node {
	var found []*Node
	Walk(n, func(n *Node) bool {
		if n.kind == kind {
			found = append(found, n)
		}
		return true
	})
	return found
}

// NodeAt returns the innermost node covering offset, or nil if offset is
// outside n. Empty nodes never match.
func NodeAt(n *Node, offset int) *Node {
	if offset < n.start || offset >= n.end {
		return nil
	}
	for _, c := range n.children {
		if c.Node != nil {
			if inner := NodeAt(c.Node, offset); inner != nil {
				return inner
			}
		}
	}
	return n
}
