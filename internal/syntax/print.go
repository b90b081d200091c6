package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Paint identifies what a printed label is, for coloured output.
type Paint uint8

const (
	PaintNode Paint = iota
	PaintToken
	PaintTrivia
	PaintError
	PaintSpan
)

// Printer writes an indented dump of a tree, one node or token per line.
type Printer struct {
	// Trivia includes whitespace, line break and comment tokens.
	Trivia bool
	// Paint decorates labels; nil leaves them plain.
	Paint func(what Paint, s string) string
}

// Fprint writes n and all of its children to w, including trivia.
func Fprint(w io.Writer, n *Node) error {
	return (&Printer{Trivia: true}).Fprint(w, n)
}

// Fprint writes n to w.
func (pr *Printer) Fprint(w io.Writer, n *Node) error {
	p := &printer{w: w, cfg: pr}
	p.node(n)
	return p.err
}

type printer struct {
	w      io.Writer
	cfg    *Printer
	indent int
	err    error
}

func (p *printer) paint(what Paint, s string) string {
	if p.cfg.Paint == nil {
		return s
	}
	return p.cfg.Paint(what, s)
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) node(n *Node) {
	what := PaintNode
	if n.kind == ErrorNode {
		what = PaintError
	}
	p.printf("%s %s\n", p.paint(what, n.kind.String()), p.paint(PaintSpan, span(n.start, n.end)))

	p.indent++
	for _, c := range n.children {
		if c.Node != nil {
			p.node(c.Node)
			continue
		}
		t := c.Token
		if t.Kind.IsTrivia() {
			if p.cfg.Trivia {
				p.printf("%s %s %s\n", p.paint(PaintTrivia, t.Kind.String()), p.paint(PaintSpan, span(t.Start, t.End)), strconv.Quote(t.Text(n.src)))
			}
			continue
		}
		what := PaintToken
		if t.Kind == Unknown {
			what = PaintError
		}
		p.printf("%s %s %s\n", p.paint(what, tokenLabel(t.Kind)), p.paint(PaintSpan, span(t.Start, t.End)), strconv.Quote(t.Text(n.src)))
	}
	p.indent--
}

func span(start, end int) string {
	return fmt.Sprintf("%d..%d", start, end)
}

// tokenLabel names a token kind without relying on its spelling.
func tokenLabel(k TokenKind) string {
	switch {
	case k.IsKeyword():
		return "Kw" + strings.ToUpper(k.String()[:1]) + k.String()[1:]
	case k >= Bang && k <= PipePipeEq, k == DollarLBrace:
		return "'" + k.String() + "'"
	}
	return k.String()
}

// ----------------------------------------------------------------------------
// S-expressions

// Sexpr renders the shape of n compactly: every node becomes
// (Kind children...) and every significant token its text. String
// fragments are quoted.
//
//	a + b * c  =>  (BinaryExpr (VarRef a) + (BinaryExpr (VarRef b) * (VarRef c)))
func Sexpr(n *Node) string {
	var b strings.Builder
	sexpr(&b, n)
	return b.String()
}

func sexpr(b *strings.Builder, n *Node) {
	b.WriteByte('(')
	b.WriteString(n.kind.String())
	for _, c := range n.children {
		if c.Node != nil {
			b.WriteByte(' ')
			sexpr(b, c.Node)
			continue
		}
		switch c.Token.Kind {
		case Space, EOL, EOF, Comment:
			continue
		case StringFragment, Unknown:
			b.WriteByte(' ')
			b.WriteString(strconv.Quote(c.Token.Text(n.src)))
		default:
			b.WriteByte(' ')
			b.WriteString(c.Token.Text(n.src))
		}
	}
	b.WriteByte(')')
}
