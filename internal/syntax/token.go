// Package syntax implements the lossless front end of the Teya language:
// a stateful lexer, an event-based parser and the builder that turns the
// parser's event log into a concrete syntax tree.
package syntax

import "fmt"

// TokenKind represents the kind of a lexical token.
type TokenKind uint8

const (
	TokenNone TokenKind = iota // placeholder, never produced by the lexer

	// Whitespace other than line breaks: ' ', '\t', '\r'
	Space

	// Punctuation
	Bang      // !
	Quote     // "
	Pound     // #
	Dollar    // $
	Percent   // %
	Amp       // &
	Apos      // '
	LParen    // (
	RParen    // )
	Star      // *
	Plus      // +
	Comma     // ,
	Minus     // -
	Dot       // .
	Slash     // /
	Colon     // :
	Semi      // ;
	Lt        // <
	Eq        // =
	Gt        // >
	Question  // ?
	At        // @
	LBrack    // [
	Backslash // \
	RBrack    // ]
	Caret     // ^
	Backtick  // `
	LBrace    // {
	Pipe      // |
	RBrace    // }
	Tilde     // ~

	// Compound operators
	BangEq     // !=
	PercentEq  // %=
	AmpAmp     // &&
	AmpAmpEq   // &&=
	StarEq     // *=
	PlusEq     // +=
	MinusEq    // -=
	Arrow      // ->
	DotDot     // ..
	Ellipsis   // ...
	SlashEq    // /=
	LtEq       // <=
	EqEq       // ==
	GtEq       // >=
	PipePipe   // ||
	PipePipeEq // ||=

	// Sentinels and trivia
	EOL     // end of line, synthesized at end of input
	EOF     // end of input
	Comment // // to end of line

	// Literals
	Ident
	Int
	Float
	StringFragment // raw text inside a string literal
	DollarLBrace   // ${

	// Keywords
	KwType
	KwStruct
	KwEnum
	KwLet
	KwConst
	KwFn
	KwIf
	KwElse
	KwFor
	KwIn
	KwWhile
	KwReturn

	// Run of bytes the lexer does not recognize
	Unknown

	tokenKindCount
)

var tokenKindNames = [...]string{
	TokenNone: "None",
	Space:     "Space",

	Bang:      "!",
	Quote:     `"`,
	Pound:     "#",
	Dollar:    "$",
	Percent:   "%",
	Amp:       "&",
	Apos:      "'",
	LParen:    "(",
	RParen:    ")",
	Star:      "*",
	Plus:      "+",
	Comma:     ",",
	Minus:     "-",
	Dot:       ".",
	Slash:     "/",
	Colon:     ":",
	Semi:      ";",
	Lt:        "<",
	Eq:        "=",
	Gt:        ">",
	Question:  "?",
	At:        "@",
	LBrack:    "[",
	Backslash: `\`,
	RBrack:    "]",
	Caret:     "^",
	Backtick:  "`",
	LBrace:    "{",
	Pipe:      "|",
	RBrace:    "}",
	Tilde:     "~",

	BangEq:     "!=",
	PercentEq:  "%=",
	AmpAmp:     "&&",
	AmpAmpEq:   "&&=",
	StarEq:     "*=",
	PlusEq:     "+=",
	MinusEq:    "-=",
	Arrow:      "->",
	DotDot:     "..",
	Ellipsis:   "...",
	SlashEq:    "/=",
	LtEq:       "<=",
	EqEq:       "==",
	GtEq:       ">=",
	PipePipe:   "||",
	PipePipeEq: "||=",

	EOL:     "EOL",
	EOF:     "EOF",
	Comment: "Comment",

	Ident:          "Ident",
	Int:            "Int",
	Float:          "Float",
	StringFragment: "StringFragment",
	DollarLBrace:   "${",

	KwType:   "type",
	KwStruct: "struct",
	KwEnum:   "enum",
	KwLet:    "let",
	KwConst:  "const",
	KwFn:     "fn",
	KwIf:     "if",
	KwElse:   "else",
	KwFor:    "for",
	KwIn:     "in",
	KwWhile:  "while",
	KwReturn: "return",

	Unknown: "Unknown",
}

// String returns the source spelling of punctuation and keywords,
// and a descriptive name for every other kind.
func (k TokenKind) String() string {
	if k < tokenKindCount {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// IsKeyword reports whether k is a reserved word.
func (k TokenKind) IsKeyword() bool {
	return KwType <= k && k <= KwReturn
}

// IsTrivia reports whether k is skipped by the block-level skipper.
func (k TokenKind) IsTrivia() bool {
	return k == Space || k == EOL || k == Comment
}

// keywords maps reserved words to their token kinds.
var keywords = map[string]TokenKind{
	"type":   KwType,
	"struct": KwStruct,
	"enum":   KwEnum,
	"let":    KwLet,
	"const":  KwConst,
	"fn":     KwFn,
	"if":     KwIf,
	"else":   KwElse,
	"for":    KwFor,
	"in":     KwIn,
	"while":  KwWhile,
	"return": KwReturn,
}

// LookupKeyword returns the keyword kind for ident, or Ident if ident
// is not reserved.
func LookupKeyword(ident string) TokenKind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}

// Token is a half-open byte range [Start, End) of the source, tagged with
// its kind. Synthesized EOL and EOF tokens at end of input are empty.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

// Len returns the number of source bytes the token covers.
func (t Token) Len() int {
	return t.End - t.Start
}

// Text returns the source text of t.
func (t Token) Text(src string) string {
	return src[t.Start:t.End]
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d..%d", t.Kind, t.Start, t.End)
}
