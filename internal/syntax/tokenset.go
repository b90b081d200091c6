package syntax

import (
	"math/bits"
	"strings"
)

// TokenSet is a set of token kinds stored as a 128-bit mask.
// Sets are plain values; the package-level sets below are never mutated.
type TokenSet struct {
	lo, hi uint64
}

// Every kind must have a bit.
var _ [128 - int(tokenKindCount)]struct{}

// NewTokenSet returns the set holding kinds.
func NewTokenSet(kinds ...TokenKind) TokenSet {
	var s TokenSet
	for _, k := range kinds {
		if k < 64 {
			s.lo |= 1 << k
		} else {
			s.hi |= 1 << (k - 64)
		}
	}
	return s
}

// Contains reports whether k is in s.
func (s TokenSet) Contains(k TokenKind) bool {
	if k < 64 {
		return s.lo&(1<<k) != 0
	}
	return s.hi&(1<<(k-64)) != 0
}

// Union returns the set of kinds in s or t.
func (s TokenSet) Union(t TokenSet) TokenSet {
	return TokenSet{lo: s.lo | t.lo, hi: s.hi | t.hi}
}

// With returns s plus kinds.
func (s TokenSet) With(kinds ...TokenKind) TokenSet {
	return s.Union(NewTokenSet(kinds...))
}

// IsEmpty reports whether s has no members.
func (s TokenSet) IsEmpty() bool {
	return s.lo == 0 && s.hi == 0
}

// Len returns the number of kinds in s.
func (s TokenSet) Len() int {
	return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi)
}

// Kinds returns the members of s in ascending order.
func (s TokenSet) Kinds() []TokenKind {
	kinds := make([]TokenKind, 0, s.Len())
	for k := TokenKind(0); k < tokenKindCount; k++ {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s TokenSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range s.Kinds() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteByte('}')
	return b.String()
}

// ----------------------------------------------------------------------------
// Operator sets

var (
	// UnaryOps are the prefix operators.
	UnaryOps = NewTokenSet(Minus, Plus, Bang)
	// BinaryOps are the infix operators of BinaryExpr.
	BinaryOps = NewTokenSet(PipePipe, AmpAmp, EqEq, BangEq, Lt, LtEq, Gt, GtEq, Plus, Minus, Star, Slash, Percent)
	// AssignOps are the operators of AssignStmt.
	AssignOps = NewTokenSet(Eq, PlusEq, MinusEq, StarEq, SlashEq, PercentEq, AmpAmpEq, PipePipeEq)
)

// Sets used by the grammar

var (
	blockTrivia = NewTokenSet(Space, EOL, Comment)
	blockDelims = NewTokenSet(LBrace, RBrace)

	itemFirst = NewTokenSet(KwFn, KwStruct, KwEnum, KwType, KwConst)
	typeFirst = NewTokenSet(Ident, LBrack, LParen)
	exprFirst = NewTokenSet(Ident, Int, Float, LParen, Quote).Union(UnaryOps)

	// Tokens that legally end a statement.
	stmtEnd = NewTokenSet(EOL, Semi, RBrace, EOF, Comment)

	exprRecovery = NewTokenSet(EOL, Semi, Comma, Colon, RParen, RBrack, Comment).
			Union(AssignOps).
			Union(itemFirst).
			With(KwLet, KwIf, KwElse, KwWhile, KwFor, KwIn, KwReturn)
	typeRecovery = NewTokenSet(EOL, Semi, Comma, Eq, RParen, RBrack, Gt, Arrow, Comment).Union(itemFirst)
	itemRecovery = itemFirst.With(Semi)
)
