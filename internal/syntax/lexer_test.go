package syntax

import (
	"strings"
	"testing"
)

// kinds returns the kinds of toks, dropping Space tokens when nospace is set.
func kinds(toks []Token, nospace bool) []TokenKind {
	var ks []TokenKind
	for _, t := range toks {
		if nospace && t.Kind == Space {
			continue
		}
		ks = append(ks, t.Kind)
	}
	return ks
}

func equalKinds(a, b []TokenKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLexTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []TokenKind
		texts  []string
	}{
		// Identifiers and keywords
		{"ident", "foo", []TokenKind{Ident}, []string{"foo"}},
		{"ident_underscore", "_bar9", []TokenKind{Ident}, []string{"_bar9"}},
		{"keyword", "fn", []TokenKind{KwFn}, []string{"fn"}},
		{"keyword_prefix", "fnx", []TokenKind{Ident}, []string{"fnx"}},
		{"keywords", "let const", []TokenKind{KwLet, Space, KwConst}, []string{"let", " ", "const"}},

		// Numbers
		{"int", "42", []TokenKind{Int}, []string{"42"}},
		{"float", "3.14", []TokenKind{Float}, []string{"3.14"}},
		{"int_dot", "1.", []TokenKind{Int, Dot}, []string{"1", "."}},
		{"int_dot_ident", "1.foo", []TokenKind{Int, Dot, Ident}, []string{"1", ".", "foo"}},
		{"int_range", "1..2", []TokenKind{Int, DotDot, Int}, []string{"1", "..", "2"}},
		{"float_field", "1.5.x", []TokenKind{Float, Dot, Ident}, []string{"1.5", ".", "x"}},

		// Operators take the longest match
		{"amp", "&", []TokenKind{Amp}, []string{"&"}},
		{"ampamp", "&&", []TokenKind{AmpAmp}, []string{"&&"}},
		{"ampampeq", "&&=", []TokenKind{AmpAmpEq}, []string{"&&="}},
		{"pipes", "| || ||=", []TokenKind{Pipe, Space, PipePipe, Space, PipePipeEq}, nil},
		{"arrow", "->", []TokenKind{Arrow}, []string{"->"}},
		{"minus_eq", "-=", []TokenKind{MinusEq}, []string{"-="}},
		{"dots", ". .. ...", []TokenKind{Dot, Space, DotDot, Space, Ellipsis}, nil},
		{"compare", "<= >= == !=", []TokenKind{LtEq, Space, GtEq, Space, EqEq, Space, BangEq}, nil},
		{"assign_ops", "+= *= /= %=", []TokenKind{PlusEq, Space, StarEq, Space, SlashEq, Space, PercentEq}, nil},
		{"eq_eq_eq", "===", []TokenKind{EqEq, Eq}, []string{"==", "="}},
		{"punct", "#$'?@\\^`~", []TokenKind{Pound, Dollar, Apos, Question, At, Backslash, Caret, Backtick, Tilde}, nil},
		{"brackets", "()[]{}", []TokenKind{LParen, RParen, LBrack, RBrack, LBrace, RBrace}, nil},

		// Whitespace and comments
		{"space_run", " \t\r ", []TokenKind{Space}, []string{" \t\r "}},
		{"comment", "// hi there", []TokenKind{Comment}, []string{"// hi there"}},
		{"comment_eol", "a // c\nb", []TokenKind{Ident, Space, Comment, EOL, Ident}, []string{"a", " ", "// c", "\n", "b"}},
		{"slash", "a / b", []TokenKind{Ident, Space, Slash, Space, Ident}, nil},

		// Unknown bytes are grouped
		{"unknown_ascii", "\x00\x01a", []TokenKind{Unknown, Ident}, []string{"\x00\x01", "a"}},
		{"unknown_utf8", "é", []TokenKind{Unknown}, []string{"é"}},
		{"unknown_del", "\x7f", []TokenKind{Unknown}, []string{"\x7f"}},

		// Strings
		{"string", `"hi"`, []TokenKind{Quote, StringFragment, Quote}, []string{`"`, "hi", `"`}},
		{"string_empty", `""`, []TokenKind{Quote, Quote}, nil},
		{"string_keywords", `"fn let 1.5"`, []TokenKind{Quote, StringFragment, Quote}, []string{`"`, "fn let 1.5", `"`}},
		{"string_dollar", `"$5"`, []TokenKind{Quote, StringFragment, Quote}, []string{`"`, "$5", `"`}},
		{"string_interp", `"a${b}c"`, []TokenKind{Quote, StringFragment, DollarLBrace, Ident, RBrace, StringFragment, Quote},
			[]string{`"`, "a", "${", "b", "}", "c", `"`}},
		{"string_unterminated", "\"ab\ncd", []TokenKind{Quote, StringFragment, EOL, Ident}, []string{`"`, "ab", "\n", "cd"}},
		{"dollar_brace_outside_string", "${", []TokenKind{Dollar, LBrace}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.src)
			// Every stream ends with EOL, EOF unless the source ends in a newline.
			n := len(toks)
			if n < 2 || toks[n-1].Kind != EOF || toks[n-2].Kind != EOL {
				t.Fatalf("stream does not end with EOL, EOF: %v", toks)
			}
			toks = toks[:n-2]

			if got := kinds(toks, false); !equalKinds(got, tt.tokens) {
				t.Fatalf("kinds = %v, want %v", got, tt.tokens)
			}
			for i, want := range tt.texts {
				if got := toks[i].Text(tt.src); got != want {
					t.Errorf("token %d text = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestLexEndOfInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []TokenKind
	}{
		{"empty", "", []TokenKind{EOL, EOF}},
		{"no_newline", "a", []TokenKind{Ident, EOL, EOF}},
		{"trailing_newline", "a\n", []TokenKind{Ident, EOL, EOF}},
		{"two_newlines", "a\n\n", []TokenKind{Ident, EOL, EOL, EOF}},
		{"trailing_space", "a ", []TokenKind{Ident, Space, EOL, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.src)
			if got := kinds(toks, false); !equalKinds(got, tt.want) {
				t.Fatalf("kinds = %v, want %v", got, tt.want)
			}
			last := toks[len(toks)-1]
			if last.Start != len(tt.src) || last.End != len(tt.src) {
				t.Errorf("EOF span = %d..%d, want empty at %d", last.Start, last.End, len(tt.src))
			}
		})
	}
}

func TestLexExhausted(t *testing.T) {
	l := NewLexer("x")
	for i := 0; i < 3; i++ {
		if _, ok := l.Next(); !ok {
			t.Fatalf("Next %d returned false", i)
		}
	}
	for i := 0; i < 3; i++ {
		if tok, ok := l.Next(); ok {
			t.Fatalf("Next after EOF returned %v", tok)
		}
	}
}

func TestLexNestedInterpolation(t *testing.T) {
	src := `"a ${ "b ${ c }" } d"`

	type step struct {
		kind    TokenKind
		text    string
		depth   int // after the token
		nesting int
	}
	want := []step{
		{Quote, `"`, 0, 0},
		{StringFragment, "a ", 0, 0},
		{DollarLBrace, "${", 1, 0},
		{Quote, `"`, 0, 1},
		{StringFragment, "b ", 0, 1},
		{DollarLBrace, "${", 1, 1},
		{Ident, "c", 1, 1},
		{RBrace, "}", 0, 1},
		{Quote, `"`, 1, 0},
		{RBrace, "}", 0, 0},
		{StringFragment, " d", 0, 0},
		{Quote, `"`, 0, 0},
		{EOL, "", 0, 0},
		{EOF, "", 0, 0},
	}

	l := NewLexer(src)
	var i int
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		if tok.Kind == Space {
			continue
		}
		if i >= len(want) {
			t.Fatalf("extra token %v", tok)
		}
		w := want[i]
		if tok.Kind != w.kind || tok.Text(src) != w.text {
			t.Errorf("token %d = %s %q, want %s %q", i, tok.Kind, tok.Text(src), w.kind, w.text)
		}
		if l.Depth() != w.depth || l.Nesting() != w.nesting {
			t.Errorf("after token %d (%s): depth %d nesting %d, want %d %d",
				i, tok.Kind, l.Depth(), l.Nesting(), w.depth, w.nesting)
		}
		i++
	}
	if i != len(want) {
		t.Errorf("got %d tokens, want %d", i, len(want))
	}
}

func TestLexBracesInInterpolation(t *testing.T) {
	// Braces inside an interpolation nest; only the matching one closes it.
	src := `"x${ {a} }y"`
	got := kinds(Tokenize(src), true)
	want := []TokenKind{Quote, StringFragment, DollarLBrace, LBrace, Ident, RBrace, RBrace, StringFragment, Quote, EOL, EOF}
	if !equalKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexNewlineResetsString(t *testing.T) {
	src := "\"a ${ \"b ${ c\nd\""
	l := NewLexer(src)
	var got []TokenKind
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		if tok.Kind == EOL && (l.Depth() != 0 || l.Nesting() != 0) {
			t.Errorf("after %v: depth %d nesting %d, want 0 0", tok, l.Depth(), l.Nesting())
		}
		if tok.Kind != Space {
			got = append(got, tok.Kind)
		}
	}

	// After the newline "d" is an identifier and the quote opens a new string.
	want := []TokenKind{EOL, Ident, Quote, EOL, EOF}
	if tail := got[len(got)-len(want):]; !equalKinds(tail, want) {
		t.Errorf("tail = %v, want %v", tail, want)
	}
}

func TestLexLossless(t *testing.T) {
	srcs := []string{
		"",
		"fn main() {\n\tlet x = 1 + 2.5 // sum\n}\n",
		`"a ${ "b ${ c }" } d"`,
		"struct P<T> { x: T, y: [Int; 3] }",
		"\x00garbage\xff\xfe é ${ }}} \"\"\"",
		"a\r\nb",
		"\"unterminated ${ x",
	}
	for _, src := range srcs {
		var b strings.Builder
		end := 0
		for _, tok := range Tokenize(src) {
			if tok.Start != end {
				t.Errorf("%q: gap before %v", src, tok)
			}
			end = tok.End
			b.WriteString(tok.Text(src))
		}
		if b.String() != src {
			t.Errorf("tokens of %q reconstruct %q", src, b.String())
		}
	}
}
