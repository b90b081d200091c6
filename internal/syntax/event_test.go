package syntax

import (
	"strings"
	"testing"
)

func TestBuildForwardParent(t *testing.T) {
	src := "a+b"
	events := []Event{
		{Kind: EventStart, Syntax: VarRef, ForwardParent: 3},
		{Kind: EventToken, Token: Token{Kind: Ident, Start: 0, End: 1}},
		{Kind: EventFinish},
		{Kind: EventStart, Syntax: BinaryExpr},
		{Kind: EventToken, Token: Token{Kind: Plus, Start: 1, End: 2}},
		{Kind: EventStart, Syntax: VarRef},
		{Kind: EventToken, Token: Token{Kind: Ident, Start: 2, End: 3}},
		{Kind: EventFinish},
		{Kind: EventFinish},
	}

	root, errs := build(src, events)
	if len(errs) != 0 {
		t.Errorf("errors = %v", errs)
	}
	if got, want := Sexpr(root), "(BinaryExpr (VarRef a) + (VarRef b))"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if root.Start() != 0 || root.End() != 3 {
		t.Errorf("root spans %d..%d", root.Start(), root.End())
	}
	if ev := events[3]; ev.Syntax != KindNone || ev.ForwardParent != 0 {
		t.Errorf("preceding start not tombstoned: %s", ev)
	}
}

func TestBuildErrorsAndEmptyNodes(t *testing.T) {
	src := "x"
	events := []Event{
		{Kind: EventStart, Syntax: Root},
		{Kind: EventStart, Syntax: Block},
		{Kind: EventError, Err: &SyntaxError{Kind: ErrTokenRequired, Want: LBrace}},
		{Kind: EventFinish},
		{Kind: EventStart}, // tombstone
		{Kind: EventToken, Token: Token{Kind: Ident, Start: 0, End: 1}},
		{Kind: EventFinish},
	}

	root, errs := build(src, events)
	if len(errs) != 1 || errs[0].Want != LBrace {
		t.Fatalf("errors = %v", errs)
	}
	block := root.FirstChild(Block)
	if block == nil || block.Start() != 0 || block.End() != 0 || len(block.Children()) != 0 {
		t.Fatalf("empty block = %v", block)
	}
	if got, want := Sexpr(root), "(Root (Block) x)"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParserChainsPrecede(t *testing.T) {
	var events []Event
	Parse("a - b - c", RuleExpr, WithEvents(func(evs []Event) {
		events = append(events, evs...)
	}))

	var chained int
	for _, ev := range events {
		if ev.Kind == EventStart && ev.ForwardParent != 0 {
			if ev.ForwardParent < 0 {
				t.Errorf("%s points backwards", ev)
			}
			chained++
		}
	}
	// a is preceded by the inner BinaryExpr, which is preceded by the outer one.
	if chained != 2 {
		t.Errorf("%d forward parents, want 2", chained)
	}
}

func TestBuildMalformed(t *testing.T) {
	ident := Token{Kind: Ident, Start: 0, End: 1}
	tests := []struct {
		name   string
		events []Event
		msg    string
	}{
		{"empty", nil, "no root"},
		{"finish_first", []Event{{Kind: EventFinish}}, "without open node"},
		{"unfinished", []Event{{Kind: EventStart, Syntax: Root}}, "unfinished"},
		{"token_outside", []Event{{Kind: EventToken, Token: ident}}, "outside of any node"},
		{"two_roots", []Event{
			{Kind: EventStart, Syntax: Root}, {Kind: EventFinish},
			{Kind: EventStart, Syntax: Root}, {Kind: EventFinish},
		}, "more than one root"},
		{"parent_past_end", []Event{
			{Kind: EventStart, Syntax: VarRef, ForwardParent: 5}, {Kind: EventFinish},
		}, "forward parent"},
		{"parent_not_start", []Event{
			{Kind: EventStart, Syntax: VarRef, ForwardParent: 1}, {Kind: EventFinish},
		}, "forward parent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("build did not panic")
				}
				msg, _ := r.(string)
				if !strings.HasPrefix(msg, "syntax: malformed event stream") || !strings.Contains(msg, tt.msg) {
					t.Errorf("panic = %v, want mention of %q", r, tt.msg)
				}
			}()
			build("a", tt.events)
		})
	}
}

func TestMarkerMisuse(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		fn()
	}

	mustPanic("complete twice", func() {
		p := newParser("a")
		m := p.start()
		m.complete(p, VarRef)
		m.complete(p, VarRef)
	})
	mustPanic("precede twice", func() {
		p := newParser("a")
		cm := p.start().complete(p, VarRef)
		cm.precede(p)
		cm.precede(p)
	})
	mustPanic("assert mismatch", func() {
		p := newParser("a")
		p.assert(KwFn)
	})
	mustPanic("unbalanced skipper", func() {
		p := newParser("a")
		p.restoreSkipper()
	})
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: EventStart}, "Start(None)"},
		{Event{Kind: EventStart, Syntax: BinaryExpr, ForwardParent: 3}, "Start(BinaryExpr, +3)"},
		{Event{Kind: EventFinish}, "Finish"},
		{Event{Kind: EventToken, Token: Token{Kind: Ident, Start: 4, End: 5}}, "Token(Ident@4..5)"},
		{Event{Kind: EventError, Err: &SyntaxError{Kind: ErrNameRequired}}, "Error(NameRequired)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
