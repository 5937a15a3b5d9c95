package textrun

import (
	"testing"
)

func TestLineWrite(t *testing.T) {
	line := NewLine(0, 10)
	pen := NewPen()

	line.Write(pen, "abc")
	if line.Col() != 3 {
		t.Errorf("Col() = %d, want 3", line.Col())
	}

	pen.SetFlag(CellFlagBold)
	line.Write(pen, "de")

	if line.String() != "abcde" {
		t.Errorf("String() = %q, want %q", line.String(), "abcde")
	}
	if line.Cells[2].HasFlag(CellFlagBold) {
		t.Error("cell 2 should not be bold")
	}
	if !line.Cells[3].HasFlag(CellFlagBold) {
		t.Error("cell 3 should be bold")
	}
}

func TestLineWriteWide(t *testing.T) {
	line := NewLine(0, 5)
	line.Write(NewPen(), "中x")

	if !line.Cells[0].IsWide() {
		t.Error("cell 0 should be wide")
	}
	if !line.Cells[1].IsWideSpacer() {
		t.Error("cell 1 should be a spacer")
	}
	if line.Cells[2].Char != 'x' {
		t.Errorf("cell 2 = %q, want 'x'", line.Cells[2].Char)
	}
	if line.Col() != 3 {
		t.Errorf("Col() = %d, want 3", line.Col())
	}
	if line.String() != "中x" {
		t.Errorf("String() = %q, want %q", line.String(), "中x")
	}
}

func TestLineWriteZeroWidth(t *testing.T) {
	line := NewLine(0, 5)
	line.Write(NewPen(), "e\u0301\u0302 中\u0308")

	if got := line.Cells[0].ZeroWidthChars(); len(got) != 2 || got[0] != '\u0301' || got[1] != '\u0302' {
		t.Errorf("cell 0 zero-width = %q, want acute and circumflex", got)
	}
	if got := line.Cells[2].ZeroWidthChars(); len(got) != 1 || got[0] != '\u0308' {
		t.Errorf("wide cell zero-width = %q, want diaeresis", got)
	}
	if line.Cells[3].ZeroWidthChars() != nil {
		t.Error("spacer should not hold zero-width characters")
	}
	if line.Col() != 4 {
		t.Errorf("Col() = %d, want 4", line.Col())
	}
}

func TestLineWriteOverflow(t *testing.T) {
	line := NewLine(0, 3)
	line.Write(NewPen(), "ab中")

	if line.String() != "ab" {
		t.Errorf("String() = %q, want %q", line.String(), "ab")
	}
	if line.Col() != 2 {
		t.Errorf("Col() = %d, want 2", line.Col())
	}

	next := line.WriteAt(2, NewPen(), "cdef")
	if next != 3 {
		t.Errorf("WriteAt() = %d, want 3", next)
	}
	if line.String() != "abc" {
		t.Errorf("String() = %q, want %q", line.String(), "abc")
	}
}

func TestNewLine(t *testing.T) {
	line := NewLine(7, 4)

	if line.Index != 7 {
		t.Errorf("Index = %d, want 7", line.Index)
	}
	if len(line.Cells) != 4 {
		t.Fatalf("len(Cells) = %d, want 4", len(line.Cells))
	}
	for i, c := range line.Cells {
		if c.Char != ' ' {
			t.Errorf("Cells[%d].Char = %q, want space", i, c.Char)
		}
	}
	if line.String() != "" {
		t.Errorf("String() = %q, want empty", line.String())
	}
}
