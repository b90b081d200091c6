package syntax

import "fmt"

// Skipper is a trivia policy: the tokens the parser steps over, attaching
// them to the tree, after every consumed token.
type Skipper uint8

const (
	SkipNone   Skipper = iota // nothing is trivia (string literals)
	SkipInline                // spaces only; line breaks are significant
	SkipBlock                 // spaces, line breaks and comments
)

func (s Skipper) String() string {
	switch s {
	case SkipNone:
		return "None"
	case SkipInline:
		return "Inline"
	case SkipBlock:
		return "Block"
	}
	return fmt.Sprintf("Skipper(%d)", s)
}

// parser turns a token buffer into an event log. Grammar rules never
// build nodes directly; they open markers, consume tokens and complete
// the markers with a kind.
type parser struct {
	src    string
	tokens []Token
	pos    int
	events []Event
	nerrs  int

	skipper  Skipper
	skippers []Skipper
}

func newParser(src string) *parser {
	return &parser{src: src, tokens: Tokenize(src)}
}

// ----------------------------------------------------------------------------
// Markers

// marker refers to an open Start event.
type marker struct {
	pos int
}

// completedMarker refers to the Start event of a finished node.
type completedMarker struct {
	pos  int
	kind SyntaxKind
}

// start opens a node whose kind is decided later.
func (p *parser) start() marker {
	p.events = append(p.events, Event{Kind: EventStart})
	return marker{pos: len(p.events) - 1}
}

// complete gives m its kind and closes the node.
func (m marker) complete(p *parser, kind SyntaxKind) completedMarker {
	ev := &p.events[m.pos]
	if ev.Kind != EventStart || ev.Syntax != KindNone {
		panic(fmt.Sprintf("syntax: completing marker at event %d: not an open start event (%s)", m.pos, ev))
	}
	ev.Syntax = kind
	p.events = append(p.events, Event{Kind: EventFinish})
	return completedMarker{pos: m.pos, kind: kind}
}

// precede opens a new node that will become the parent of cm once it is
// completed. Used for left-recursive constructs such as binary
// operators and postfix chains.
func (cm completedMarker) precede(p *parser) marker {
	m := p.start()
	ev := &p.events[cm.pos]
	if ev.Kind != EventStart || ev.ForwardParent != 0 {
		panic(fmt.Sprintf("syntax: preceding marker at event %d: not a finished start event (%s)", cm.pos, ev))
	}
	ev.ForwardParent = m.pos - cm.pos
	return m
}

// ----------------------------------------------------------------------------
// Token navigation

// nth returns the token n positions ahead without skipping trivia.
// Past the end it returns an empty TokenNone at the end of the source.
func (p *parser) nth(n int) Token {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	return Token{Kind: TokenNone, Start: len(p.src), End: len(p.src)}
}

func (p *parser) current() TokenKind {
	return p.nth(0).Kind
}

// at reports whether the current token is kind.
func (p *parser) at(kind TokenKind) bool {
	return p.current() == kind
}

// atSet reports whether the current token is in set.
func (p *parser) atSet(set TokenSet) bool {
	return set.Contains(p.current())
}

// atEOF reports whether the input is used up.
func (p *parser) atEOF() bool {
	k := p.current()
	return k == EOF || k == TokenNone
}

// bump consumes the current token and skips trivia after it.
func (p *parser) bump() {
	if p.pos >= len(p.tokens) {
		return
	}
	p.push()
	p.skip()
}

// push consumes the current token without skipping.
func (p *parser) push() {
	p.events = append(p.events, Event{Kind: EventToken, Token: p.tokens[p.pos]})
	p.pos++
}

// eat consumes the current token if it is kind.
func (p *parser) eat(kind TokenKind) bool {
	if !p.at(kind) {
		return false
	}
	p.bump()
	return true
}

// expect is like eat but records ErrTokenRequired on mismatch.
// The current token is left in place.
func (p *parser) expect(kind TokenKind) bool {
	if p.eat(kind) {
		return true
	}
	p.errorWant(ErrTokenRequired, kind)
	return false
}

// eatAny consumes whatever token is current.
func (p *parser) eatAny() bool {
	if p.pos >= len(p.tokens) {
		return false
	}
	p.bump()
	return true
}

// assert consumes a token the caller has already checked for.
func (p *parser) assert(kind TokenKind) {
	if !p.eat(kind) {
		panic(fmt.Sprintf("syntax: rule entered at %s, want %s", p.current(), kind))
	}
}

// ----------------------------------------------------------------------------
// Trivia

// setSkipper makes s the active trivia policy until the matching
// restoreSkipper.
func (p *parser) setSkipper(s Skipper) {
	p.skippers = append(p.skippers, p.skipper)
	p.skipper = s
	p.skip()
}

// restoreSkipper reinstates the policy active before the last setSkipper.
func (p *parser) restoreSkipper() {
	n := len(p.skippers)
	if n == 0 {
		panic("syntax: restoreSkipper without setSkipper")
	}
	p.skipper = p.skippers[n-1]
	p.skippers = p.skippers[:n-1]
	p.skip()
}

// skip consumes trivia under the active policy.
func (p *parser) skip() {
	switch p.skipper {
	case SkipInline:
		for p.at(Space) {
			p.push()
		}
	case SkipBlock:
		for p.atSet(blockTrivia) {
			p.push()
		}
	}
}

// ----------------------------------------------------------------------------
// Error handling

// error records a diagnostic at the current token.
func (p *parser) error(kind ErrorKind) {
	p.errorWant(kind, TokenNone)
}

func (p *parser) errorWant(kind ErrorKind, want TokenKind) {
	p.nerrs++
	p.events = append(p.events, Event{
		Kind: EventError,
		Err:  &SyntaxError{Offset: p.nth(0).Start, Kind: kind, Want: want},
	})
}

// errorRecover records kind and, unless the current token is a brace,
// the end of input or in recovery, wraps the current token in an error
// node. It reports whether a token was consumed.
func (p *parser) errorRecover(kind ErrorKind, recovery TokenSet) (completedMarker, bool) {
	p.error(kind)
	if p.atSet(blockDelims) || p.atEOF() || p.atSet(recovery) {
		return completedMarker{}, false
	}
	return p.bumpError(), true
}

// bumpError wraps the current token in an error node without recording
// a diagnostic.
func (p *parser) bumpError() completedMarker {
	m := p.start()
	p.eatAny()
	return m.complete(p, ErrorNode)
}
