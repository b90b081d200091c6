package syntax

import (
	"encoding/json"
	"io"
)

// dumpNode is the serialized form of a node or token shared by the JSON
// and YAML dumps.
type dumpNode struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Token    bool        `json:"token,omitempty" yaml:"token,omitempty"`
	Start    int         `json:"start" yaml:"start"`
	End      int         `json:"end" yaml:"end"`
	Text     string      `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*dumpNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func toDump(n *Node, trivia bool) *dumpNode {
	d := &dumpNode{Kind: n.kind.String(), Start: n.start, End: n.end}
	for _, c := range n.children {
		if c.Node != nil {
			d.Children = append(d.Children, toDump(c.Node, trivia))
			continue
		}
		t := c.Token
		if !trivia && (t.Kind.IsTrivia() || t.Kind == EOF) {
			continue
		}
		d.Children = append(d.Children, &dumpNode{
			Kind:  tokenLabel(t.Kind),
			Token: true,
			Start: t.Start,
			End:   t.End,
			Text:  t.Text(n.src),
		})
	}
	return d
}

// FprintJSON writes a JSON representation of n to w. Trivia tokens are
// included when trivia is set.
func FprintJSON(w io.Writer, n *Node, trivia bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDump(n, trivia))
}
