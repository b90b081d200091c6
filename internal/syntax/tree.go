package syntax

import "strings"

// Node is an interior node of the concrete syntax tree. Its children are
// nodes and tokens in source order; the text of all tokens below a node,
// concatenated, is exactly the source text the node covers.
//
// Nodes are immutable once built and share the source string.
type Node struct {
	kind     SyntaxKind
	start    int
	end      int
	src      string
	children []Element
}

// Element is a child of a Node: either a nested node or a token.
type Element struct {
	Node  *Node
	Token Token
}

// IsToken reports whether e holds a token.
func (e Element) IsToken() bool {
	return e.Node == nil
}

// Start returns the offset of the first byte of e.
func (e Element) Start() int {
	if e.Node != nil {
		return e.Node.start
	}
	return e.Token.Start
}

// End returns the offset just past e.
func (e Element) End() int {
	if e.Node != nil {
		return e.Node.end
	}
	return e.Token.End
}

// Kind returns the node's kind.
func (n *Node) Kind() SyntaxKind { return n.kind }

// Start returns the offset of the first byte covered by n.
func (n *Node) Start() int { return n.start }

// End returns the offset just past the last byte covered by n.
func (n *Node) End() int { return n.end }

// Source returns the whole source text the tree was built from.
func (n *Node) Source() string { return n.src }

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []Element { return n.children }

// Text returns the source text covered by n.
func (n *Node) Text() string {
	return n.src[n.start:n.end]
}

// TokenText returns the source text of t.
func (n *Node) TokenText(t Token) string {
	return t.Text(n.src)
}

// ChildNodes returns the direct children of n that are nodes.
func (n *Node) ChildNodes() []*Node {
	var nodes []*Node
	for _, c := range n.children {
		if c.Node != nil {
			nodes = append(nodes, c.Node)
		}
	}
	return nodes
}

// FirstChild returns the first direct child node of the given kind.
func (n *Node) FirstChild(kind SyntaxKind) *Node {
	for _, c := range n.children {
		if c.Node != nil && c.Node.kind == kind {
			return c.Node
		}
	}
	return nil
}

// ChildrenOf returns the direct child nodes of the given kind.
func (n *Node) ChildrenOf(kind SyntaxKind) []*Node {
	var nodes []*Node
	for _, c := range n.children {
		if c.Node != nil && c.Node.kind == kind {
			nodes = append(nodes, c.Node)
		}
	}
	return nodes
}

// FindToken returns the first direct child token of the given kind.
func (n *Node) FindToken(kind TokenKind) (Token, bool) {
	for _, c := range n.children {
		if c.Node == nil && c.Token.Kind == kind {
			return c.Token, true
		}
	}
	return Token{}, false
}

// FindTokenIn returns the first direct child token whose kind is in set.
func (n *Node) FindTokenIn(set TokenSet) (Token, bool) {
	for _, c := range n.children {
		if c.Node == nil && set.Contains(c.Token.Kind) {
			return c.Token, true
		}
	}
	return Token{}, false
}

// Tokens returns every token below n, depth-first, left to right.
func (n *Node) Tokens() []Token {
	var toks []Token
	n.appendTokens(&toks)
	return toks
}

func (n *Node) appendTokens(toks *[]Token) {
	for _, c := range n.children {
		if c.Node != nil {
			c.Node.appendTokens(toks)
		} else {
			*toks = append(*toks, c.Token)
		}
	}
}

// Significant returns the tokens below n that are not trivia or
// zero-width sentinels.
func (n *Node) Significant() []Token {
	var toks []Token
	for _, t := range n.Tokens() {
		if !t.Kind.IsTrivia() && t.Kind != EOF {
			toks = append(toks, t)
		}
	}
	return toks
}

// Reconstruct concatenates the text of all tokens below n.
// For a well-formed tree it equals n.Text().
func (n *Node) Reconstruct() string {
	var b strings.Builder
	for _, t := range n.Tokens() {
		b.WriteString(t.Text(n.src))
	}
	return b.String()
}

// ContainsError reports whether n or any descendant is an error node.
func (n *Node) ContainsError() bool {
	if n.kind == ErrorNode {
		return true
	}
	for _, c := range n.children {
		if c.Node != nil && c.Node.ContainsError() {
			return true
		}
	}
	return false
}
