package textrun

import "image/color"

// MaxZeroWidthChars is the number of zero-width characters a cell can hold
// on top of its base character.
const MaxZeroWidthChars = 5

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagDoubleUnderline
	CellFlagCurlyUnderline
	CellFlagDottedUnderline
	CellFlagDashedUnderline
	CellFlagBlinkSlow
	CellFlagBlinkFast
	CellFlagInverse
	CellFlagHidden
	CellFlagStrike
	CellFlagWideChar
	CellFlagWideCharSpacer
)

// CellFlagAllUnderlines covers every underline style.
const CellFlagAllUnderlines = CellFlagUnderline | CellFlagDoubleUnderline | CellFlagCurlyUnderline | CellFlagDottedUnderline | CellFlagDashedUnderline

// Cell is one grid position as handed over by the grid: a base character,
// raw color references, attributes and the zero-width characters drawn on
// top of the base character.
type Cell struct {
	Char      rune
	Fg        color.Color
	Bg        color.Color
	Flags     CellFlags
	ZeroWidth [MaxZeroWidthChars]rune
}

// NewCell creates a cell initialized with space character and default colors.
func NewCell() Cell {
	return Cell{
		Char: ' ',
		Fg:   &NamedColor{Name: NamedColorForeground},
		Bg:   &NamedColor{Name: NamedColorBackground},
	}
}

// Reset clears all attributes and sets the cell to default state (space character, default colors).
func (c *Cell) Reset() {
	*c = NewCell()
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}

// IsWide returns true if this cell contains a wide character (CJK, emoji, etc.) that occupies 2 columns.
func (c *Cell) IsWide() bool {
	return c.HasFlag(CellFlagWideChar)
}

// IsWideSpacer returns true if this is the second cell of a wide character.
func (c *Cell) IsWideSpacer() bool {
	return c.HasFlag(CellFlagWideCharSpacer)
}

// PushZeroWidth stores r in the first free zero-width slot.
// When every slot is taken r is dropped and false is returned.
func (c *Cell) PushZeroWidth(r rune) bool {
	for i, slot := range c.ZeroWidth {
		if slot == 0 {
			c.ZeroWidth[i] = r
			return true
		}
	}
	return false
}

// ZeroWidthChars returns the occupied zero-width slots in insertion order.
func (c *Cell) ZeroWidthChars() []rune {
	n := 0
	for n < MaxZeroWidthChars && c.ZeroWidth[n] != 0 {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]rune, n)
	copy(out, c.ZeroWidth[:n])
	return out
}

// Point is a cell position (0-based line and column).
type Point struct {
	Line int
	Col  int
}

// Before returns true if this point comes before other in reading order (top-to-bottom, left-to-right).
func (p Point) Before(other Point) bool {
	if p.Line < other.Line {
		return true
	}
	return p.Line == other.Line && p.Col < other.Col
}

// Equal returns true if both line and column match.
func (p Point) Equal(other Point) bool {
	return p.Line == other.Line && p.Col == other.Col
}
