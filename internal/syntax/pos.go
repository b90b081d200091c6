package syntax

import (
	"fmt"
	"sort"
)

// Pos represents a position in a source file.
// The zero value is an invalid position.
type Pos struct {
	filename string // source file name
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos with the given filename, line, and column.
// Line and column numbers are 1-based.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String returns a string representation of the position in the format
// "filename:line:col" or "line:col" if filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number (byte offset in line).
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}

// ----------------------------------------------------------------------------
// Line index

// LineIndex maps byte offsets of one source text to positions.
type LineIndex struct {
	filename string
	lines    []int // offset of the first byte of each line
	size     int
}

// NewLineIndex indexes the line starts of src.
func NewLineIndex(filename, src string) *LineIndex {
	idx := &LineIndex{filename: filename, lines: []int{0}, size: len(src)}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			idx.lines = append(idx.lines, i+1)
		}
	}
	return idx
}

// Pos returns the position of offset. Offsets past the end of the
// source are clamped to the end.
func (idx *LineIndex) Pos(offset int) Pos {
	if offset < 0 {
		offset = 0
	}
	if offset > idx.size {
		offset = idx.size
	}
	line := sort.Search(len(idx.lines), func(i int) bool { return idx.lines[i] > offset }) - 1
	return NewPos(idx.filename, uint32(line+1), uint32(offset-idx.lines[line]+1))
}

// Lines returns the number of lines.
func (idx *LineIndex) Lines() int {
	return len(idx.lines)
}
