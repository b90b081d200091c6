package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{
			name:    "with filename",
			pos:     NewPos("test.teya", 10, 5),
			wantStr: "test.teya:10:5",
		},
		{
			name:    "without filename",
			pos:     NewPos("", 10, 5),
			wantStr: "10:5",
		},
		{
			name:    "line 1 col 1",
			pos:     NewPos("main.teya", 1, 1),
			wantStr: "main.teya:1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	if (Pos{}).IsValid() {
		t.Error("zero Pos is valid")
	}
	if !NewPos("", 1, 1).IsValid() {
		t.Error("1:1 is not valid")
	}
}

func TestLineIndex(t *testing.T) {
	src := "fn a() {}\n\nstruct B {\n}"
	idx := NewLineIndex("x.teya", src)

	tests := []struct {
		offset   int
		line     uint32
		col      uint32
		wantText string
	}{
		{0, 1, 1, "x.teya:1:1"},
		{3, 1, 4, "x.teya:1:4"},
		{9, 1, 10, "x.teya:1:10"}, // the newline itself
		{10, 2, 1, "x.teya:2:1"},
		{11, 3, 1, "x.teya:3:1"},
		{18, 3, 8, "x.teya:3:8"},
		{len(src), 4, 2, "x.teya:4:2"},
		{len(src) + 10, 4, 2, "x.teya:4:2"}, // clamped
		{-1, 1, 1, "x.teya:1:1"},
	}

	for _, tt := range tests {
		pos := idx.Pos(tt.offset)
		if pos.Line() != tt.line || pos.Col() != tt.col {
			t.Errorf("Pos(%d) = %d:%d, want %d:%d", tt.offset, pos.Line(), pos.Col(), tt.line, tt.col)
		}
		if pos.String() != tt.wantText {
			t.Errorf("Pos(%d).String() = %q, want %q", tt.offset, pos.String(), tt.wantText)
		}
	}

	if idx.Lines() != 4 {
		t.Errorf("Lines() = %d, want 4", idx.Lines())
	}
}
