package types

import (
	"fmt"

	"github.com/you-not-fish/teya/internal/syntax"
)

// Error describes a problem with a declaration.
type Error struct {
	Pos    syntax.Pos
	Offset int // byte offset of Pos in the source
	Msg    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
