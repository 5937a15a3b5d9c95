package textrun

import "strings"

// Line is one row of cells as handed to the Builder.
type Line struct {
	Index int
	Cells []Cell

	col int
}

// NewLine creates a blank line of cols default cells.
func NewLine(index, cols int) *Line {
	cells := make([]Cell, cols)
	for i := range cells {
		cells[i] = NewCell()
	}
	return &Line{Index: index, Cells: cells}
}

// Col returns the column the next Write starts at.
func (l *Line) Col() int {
	return l.col
}

// Write lays s out at the current column with the pen's attributes and
// advances the column. See WriteAt.
func (l *Line) Write(pen *Pen, s string) {
	l.col = l.WriteAt(l.col, pen, s)
}

// WriteAt lays s out starting at col and returns the column after the last
// written character. Zero-width runes attach to the previous character and
// are dropped once its slots are full; wide runes take two columns. Runes
// that do not fit in the line are dropped.
func (l *Line) WriteAt(col int, pen *Pen, s string) int {
	for _, r := range s {
		if IsZeroWidth(r) {
			if col > 0 && col <= len(l.Cells) {
				prev := col - 1
				if l.Cells[prev].IsWideSpacer() && prev > 0 {
					prev--
				}
				l.Cells[prev].PushZeroWidth(r)
			}
			continue
		}

		width := columns(r)
		if width == 0 {
			continue
		}
		if col+width > len(l.Cells) {
			break
		}

		l.Cells[col] = pen.Stamp(r)
		if width == 2 {
			l.Cells[col].SetFlag(CellFlagWideChar)
			spacer := pen.Stamp(' ')
			spacer.SetFlag(CellFlagWideCharSpacer)
			l.Cells[col+1] = spacer
		}
		col += width
	}
	return col
}

// String returns the characters of the line with trailing blanks removed.
// Wide character spacers are skipped.
func (l *Line) String() string {
	var b strings.Builder
	for i := range l.Cells {
		c := &l.Cells[i]
		if c.IsWideSpacer() {
			continue
		}
		ch := c.Char
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
		for _, zw := range c.ZeroWidthChars() {
			b.WriteRune(zw)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
