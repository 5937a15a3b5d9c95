package textrun

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// RunStart is the signature of the cell that opened a run. It is fixed
// once the run is open and only used to test the cells that follow.
type RunStart struct {
	Line     int
	Column   int
	Fg       color.Color
	Bg       color.Color
	Selected bool
	Flags    CellFlags
}

// NewRunStart takes the signature of cell at p.
func NewRunStart(p Point, cell Cell, selected bool) RunStart {
	return RunStart{
		Line:     p.Line,
		Column:   p.Col,
		Fg:       cell.Fg,
		Bg:       cell.Bg,
		Selected: selected,
		Flags:    cell.Flags &^ CellFlagWideCharSpacer,
	}
}

// Continues reports whether next, whose colors resolved to nextColors,
// extends the run opened by s whose colors resolved to open.
//
// Resolved colors are compared, not raw references, so different raw
// inputs with the same visual result stay in one run. Background alpha is
// compared bitwise, so a default background next to an explicit one of the
// same color splits. Any visual change, a selection edge included, ends the
// run even inside a ligature.
func (s RunStart) Continues(open Colors, next RunStart, nextColors Colors) bool {
	return s.Line == next.Line &&
		open.Fg == nextColors.Fg &&
		open.Bg == nextColors.Bg &&
		math.Float32bits(open.BgAlpha) == math.Float32bits(nextColors.BgAlpha) &&
		s.Flags == next.Flags &&
		s.Selected == next.Selected
}

// Span is an inclusive column range on one line.
type Span struct {
	Start int
	End   int
}

// Width returns the number of columns covered.
func (s Span) Width() int {
	return s.End - s.Start + 1
}

// Content is what a run draws: *CursorContent or *CharContent.
// The set is closed; consumers switch over both.
type Content interface {
	isContent()
}

// CursorContent draws a cursor glyph.
type CursorContent struct {
	Key CursorKey
}

// CharContent holds the base characters of a run and, in parallel, the
// zero-width characters attached to each of them.
type CharContent struct {
	Chars     []rune
	ZeroWidth [][MaxZeroWidthChars]rune
}

func (*CursorContent) isContent() {}
func (*CharContent) isContent()   {}

// Text returns the base characters with their zero-width characters interleaved.
func (c *CharContent) Text() string {
	var b strings.Builder
	for i, r := range c.Chars {
		b.WriteRune(r)
		for _, zw := range c.ZeroWidth[i] {
			if zw == 0 {
				break
			}
			b.WriteRune(zw)
		}
	}
	return b.String()
}

func (c *CharContent) push(r rune, zw [MaxZeroWidthChars]rune) {
	c.Chars = append(c.Chars, r)
	c.ZeroWidth = append(c.ZeroWidth, zw)
}

func contentEqual(a, b Content) bool {
	switch x := a.(type) {
	case *CursorContent:
		y, ok := b.(*CursorContent)
		return ok && x.Key == y.Key
	case *CharContent:
		y, ok := b.(*CharContent)
		if !ok || len(x.Chars) != len(y.Chars) {
			return false
		}
		for i := range x.Chars {
			if x.Chars[i] != y.Chars[i] || x.ZeroWidth[i] != y.ZeroWidth[i] {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}

// Glyph is a rasterized glyph in the texture atlas.
type Glyph struct {
	TexID    uint32
	Colored  bool
	Top      float32
	Left     float32
	Width    float32
	Height   float32
	UVBot    float32
	UVLeft   float32
	UVWidth  float32
	UVHeight float32
}

// RenderableCell is one visual cell of a shaped run. Cursor is non-nil for
// cursor runs; otherwise Chars holds the character and its zero-width characters.
type RenderableCell struct {
	Line    int
	Column  int
	Chars   [MaxZeroWidthChars + 1]rune
	Cursor  *CursorKey
	Fg      color.RGBA
	Bg      color.RGBA
	BgAlpha float32
	Flags   CellFlags
}

// ShapedCell pairs a visual cell with the glyph drawn in it.
type ShapedCell struct {
	Cell  RenderableCell
	Glyph Glyph
}

// TextRun is a set of cells on one line that share every rendering
// property and can be shaped together. Ligatures form inside a run but
// never across two runs.
type TextRun struct {
	// Line is the only line the run covers.
	Line int
	// Span is the inclusive column range of the run.
	Span    Span
	Content Content
	// Fg and Bg are resolved render colors.
	Fg      color.RGBA
	Bg      color.RGBA
	BgAlpha float32
	Flags   CellFlags
	// Data caches the shaped output; nil until the shaping stage runs.
	Data []ShapedCell
}

// NewCursorRun creates the single-column cursor run at start. Colors are
// resolved as for the cell under the cursor.
func NewCursorRun(cfg Config, colors *ColorList, start RunStart, key CursorKey) TextRun {
	return cursorRun(start, ResolveColors(cfg, colors, start), key)
}

func cursorRun(start RunStart, c Colors, key CursorKey) TextRun {
	return TextRun{
		Line:    start.Line,
		Span:    Span{Start: start.Column, End: start.Column},
		Content: &CursorContent{Key: key},
		Fg:      c.Fg,
		Bg:      c.Bg,
		BgAlpha: c.BgAlpha,
		Flags:   start.Flags,
	}
}

// Width returns the number of columns the run covers.
func (r *TextRun) Width() int {
	return r.Span.Width()
}

// IsCursor returns true for cursor runs.
func (r *TextRun) IsCursor() bool {
	_, ok := r.Content.(*CursorContent)
	return ok
}

// Shaped returns true once the shaping stage has filled Data.
func (r *TextRun) Shaped() bool {
	return r.Data != nil
}

// SetShaped stores the shaped output. It is ignored if the run was already shaped.
func (r *TextRun) SetShaped(data []ShapedCell) {
	if r.Data != nil {
		return
	}
	if data == nil {
		data = []ShapedCell{}
	}
	r.Data = data
}

// CellAt returns a blank visual cell at col carrying the run's position,
// colors and flags.
func (r *TextRun) CellAt(col int) RenderableCell {
	cell := RenderableCell{
		Line:    r.Line,
		Column:  col,
		Fg:      r.Fg,
		Bg:      r.Bg,
		BgAlpha: r.BgAlpha,
		Flags:   r.Flags,
	}
	for i := range cell.Chars {
		cell.Chars[i] = ' '
	}
	return cell
}

// VisualCells returns the visual cells the run draws: one per base
// character (two columns apart for wide characters), or the single cursor
// cell. Cells carry the run's current colors.
func (r *TextRun) VisualCells() []RenderableCell {
	switch c := r.Content.(type) {
	case *CursorContent:
		cell := r.StartCell()
		key := c.Key
		cell.Cursor = &key
		return []RenderableCell{cell}
	case *CharContent:
		step := 1
		if r.Flags&CellFlagWideChar != 0 {
			step = 2
		}
		cells := make([]RenderableCell, len(c.Chars))
		col := r.Span.Start
		for i, ch := range c.Chars {
			cell := r.CellAt(col)
			cell.Chars[0] = ch
			copy(cell.Chars[1:], c.ZeroWidth[i][:])
			cells[i] = cell
			col += step
		}
		return cells
	}
	return nil
}

// StartCell returns the blank visual cell at the first column of the run.
func (r *TextRun) StartCell() RenderableCell {
	return r.CellAt(r.Span.Start)
}

// StartPoint returns the first point covered by the run.
func (r *TextRun) StartPoint() Point {
	return Point{Line: r.Line, Col: r.Span.Start}
}

// EndPoint returns the last point covered by the run.
func (r *TextRun) EndPoint() Point {
	return Point{Line: r.Line, Col: r.Span.End}
}

// Equal compares every field of the two runs except Data. Use Key to test
// whether two runs can share shaped output.
func (r *TextRun) Equal(other *TextRun) bool {
	return r.Line == other.Line &&
		r.Span == other.Span &&
		contentEqual(r.Content, other.Content) &&
		r.Fg == other.Fg &&
		r.Bg == other.Bg &&
		r.BgAlpha == other.BgAlpha &&
		r.Flags == other.Flags
}

// String returns a debug representation of the run.
func (r *TextRun) String() string {
	var content string
	switch c := r.Content.(type) {
	case *CursorContent:
		content = fmt.Sprintf("cursor(%s)", c.Key.Shape)
	case *CharContent:
		content = fmt.Sprintf("%q", c.Text())
	}
	return fmt.Sprintf("TextRun{line=%d span=%d..%d %s fg=%s bg=%s alpha=%g flags=%#x}",
		r.Line, r.Span.Start, r.Span.End, content, hexColor(r.Fg), hexColor(r.Bg), r.BgAlpha, uint16(r.Flags))
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
