package syntax

import "fmt"

// ErrorKind classifies a syntax error.
type ErrorKind uint8

const (
	ErrTokenRequired             ErrorKind = iota // an expected token is missing
	ErrItemRequired                               // a top-level declaration was expected
	ErrNameRequired                               // a declaration name was expected
	ErrFunctionArgumentsExpected                  // a parameter list was expected after a function name
	ErrExprRequired                               // an operand was expected
	ErrTypeRequired                               // a type was expected
)

var errorKindNames = [...]string{
	ErrTokenRequired:             "TokenRequired",
	ErrItemRequired:              "ItemRequired",
	ErrNameRequired:              "NameRequired",
	ErrFunctionArgumentsExpected: "FunctionArgumentsExpected",
	ErrExprRequired:              "ExprRequired",
	ErrTypeRequired:              "TypeRequired",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// SyntaxError is a non-fatal diagnostic recorded during parsing.
// Offset is the start of the token the parser was looking at.
type SyntaxError struct {
	Offset int
	Pos    Pos // filled in by Parse
	Kind   ErrorKind
	Want   TokenKind // for ErrTokenRequired
}

// Msg returns the human-readable description of e without a position.
func (e *SyntaxError) Msg() string {
	switch e.Kind {
	case ErrTokenRequired:
		return fmt.Sprintf("expected %s", describe(e.Want))
	case ErrItemRequired:
		return "expected declaration"
	case ErrNameRequired:
		return "expected name"
	case ErrFunctionArgumentsExpected:
		return "expected parameter list"
	case ErrExprRequired:
		return "expected expression"
	case ErrTypeRequired:
		return "expected type"
	}
	return e.Kind.String()
}

func (e *SyntaxError) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Msg()
	}
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg())
}

// describe quotes punctuation and keywords in messages.
func describe(k TokenKind) string {
	switch k {
	case EOL:
		return "end of line"
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	}
	return fmt.Sprintf("%q", k.String())
}
