package syntax

// lexMode tells the lexer how to interpret the next byte.
type lexMode uint8

const (
	modeNormal   lexMode = iota // ordinary tokens
	modeFragment                // raw string text
	modeExpr                    // inside ${ ... } of a string
)

// Lexer splits source text into tokens. It is a forward-only sequence:
// Next returns tokens until the input is exhausted and then keeps
// returning false.
//
// String literals make the lexer stateful. Inside a literal the text is
// returned as opaque StringFragment tokens; ${ opens an interpolation in
// which ordinary tokens resume until the matching }. Interpolations may
// contain string literals of their own, so the brace depth of each
// enclosing interpolation is saved on a stack while a nested literal is
// open.
type Lexer struct {
	src  string
	pos  int
	prev TokenKind

	mode  lexMode
	depth int   // open braces in the current interpolation
	saved []int // depths of the interpolations enclosing nested strings
}

// NewLexer returns a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokenize lexes all of src. The result always ends with EOL, EOF.
func Tokenize(src string) []Token {
	l := NewLexer(src)
	var toks []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Depth returns the brace depth of the innermost open interpolation.
func (l *Lexer) Depth() int { return l.depth }

// Nesting returns the number of saved interpolation depths, i.e. how
// many string literals are open inside interpolations.
func (l *Lexer) Nesting() int { return len(l.saved) }

// Next returns the next token, or false once EOF has been returned.
func (l *Lexer) Next() (Token, bool) {
	if l.pos >= len(l.src) {
		var kind TokenKind
		switch l.prev {
		case EOF:
			return Token{}, false
		case EOL:
			kind = EOF
		default:
			kind = EOL
		}
		l.prev = kind
		return Token{Kind: kind, Start: len(l.src), End: len(l.src)}, true
	}

	start := l.pos
	var kind TokenKind
	if l.src[l.pos] == '\n' {
		l.pos++
		l.mode = modeNormal
		l.depth = 0
		l.saved = l.saved[:0]
		kind = EOL
	} else if l.mode == modeFragment {
		kind = l.fragment()
	} else {
		kind = l.token()
	}
	l.prev = kind
	return Token{Kind: kind, Start: start, End: l.pos}, true
}

// fragment scans inside a string literal.
func (l *Lexer) fragment() TokenKind {
	switch {
	case l.src[l.pos] == '"':
		l.pos++
		if n := len(l.saved); n > 0 {
			l.depth = l.saved[n-1]
			l.saved = l.saved[:n-1]
			l.mode = modeExpr
		} else {
			l.mode = modeNormal
		}
		return Quote

	case l.at(0, '$') && l.at(1, '{'):
		l.pos += 2
		l.mode = modeExpr
		l.depth = 1
		return DollarLBrace
	}

	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '"' || c == '\n' || c == '$' && l.at(1, '{') {
			break
		}
		l.pos++
	}
	return StringFragment
}

// token scans one ordinary token.
func (l *Lexer) token() TokenKind {
	c := l.src[l.pos]
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		l.pos++
		for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
			l.pos++
		}
		return Space

	case isLetter(c):
		start := l.pos
		for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
			l.pos++
		}
		return LookupKeyword(l.src[start:l.pos])

	case isDigit(c):
		return l.number()

	case c == '"':
		if l.mode == modeExpr {
			l.saved = append(l.saved, l.depth)
		} else {
			l.saved = l.saved[:0]
		}
		l.depth = 0
		l.mode = modeFragment
		l.pos++
		return Quote

	case c == '{':
		if l.mode == modeExpr {
			l.depth++
		}
		l.pos++
		return LBrace

	case c == '}':
		if l.mode == modeExpr {
			l.depth--
			if l.depth == 0 {
				l.mode = modeFragment
			}
		}
		l.pos++
		return RBrace

	case c == '/' && l.at(1, '/'):
		for l.pos < len(l.src) && l.src[l.pos] != '\n' {
			l.pos++
		}
		return Comment

	case c < 0x20 || c >= 0x7f:
		for l.pos < len(l.src) && isUnknown(l.src[l.pos]) {
			l.pos++
		}
		return Unknown
	}

	return l.operator(c)
}

// number scans an integer, promoting it to a float when a decimal point
// is followed by a digit. "1." is an Int followed by a Dot.
func (l *Lexer) number() TokenKind {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if !l.at(0, '.') || l.pos+1 >= len(l.src) || !isDigit(l.src[l.pos+1]) {
		return Int
	}
	l.pos++
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	return Float
}

// operator scans punctuation using the longest match.
func (l *Lexer) operator(c byte) TokenKind {
	l.pos++
	switch c {
	case '!':
		return l.choose('=', BangEq, Bang)
	case '%':
		return l.choose('=', PercentEq, Percent)
	case '&':
		if l.at(0, '&') {
			l.pos++
			return l.choose('=', AmpAmpEq, AmpAmp)
		}
		return Amp
	case '*':
		return l.choose('=', StarEq, Star)
	case '+':
		return l.choose('=', PlusEq, Plus)
	case '-':
		if l.at(0, '>') {
			l.pos++
			return Arrow
		}
		return l.choose('=', MinusEq, Minus)
	case '.':
		if l.at(0, '.') {
			l.pos++
			return l.choose('.', Ellipsis, DotDot)
		}
		return Dot
	case '/':
		return l.choose('=', SlashEq, Slash)
	case '<':
		return l.choose('=', LtEq, Lt)
	case '=':
		return l.choose('=', EqEq, Eq)
	case '>':
		return l.choose('=', GtEq, Gt)
	case '|':
		if l.at(0, '|') {
			l.pos++
			return l.choose('=', PipePipeEq, PipePipe)
		}
		return Pipe
	}
	return punct[c]
}

// choose consumes next and returns long if the current byte is next,
// and short otherwise.
func (l *Lexer) choose(next byte, long, short TokenKind) TokenKind {
	if l.at(0, next) {
		l.pos++
		return long
	}
	return short
}

// at reports whether the byte at pos+off is c.
func (l *Lexer) at(off int, c byte) bool {
	i := l.pos + off
	return i < len(l.src) && l.src[i] == c
}

// punct maps single-byte punctuation without compound forms.
var punct = [128]TokenKind{
	'"':  Quote,
	'#':  Pound,
	'$':  Dollar,
	'\'': Apos,
	'(':  LParen,
	')':  RParen,
	',':  Comma,
	':':  Colon,
	';':  Semi,
	'?':  Question,
	'@':  At,
	'[':  LBrack,
	'\\': Backslash,
	']':  RBrack,
	'^':  Caret,
	'`':  Backtick,
	'{':  LBrace,
	'}':  RBrace,
	'~':  Tilde,
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isUnknown(c byte) bool {
	return (c < 0x20 && c != '\t' && c != '\r' && c != '\n') || c >= 0x7f
}
