package shape

import (
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	textrun "github.com/danielgatis/go-textrun"
)

// Shaper converts the content of a run into positioned glyphs: one
// ShapedCell per visual cell of the run, followed by one per zero-width
// character drawn over that cell.
type Shaper interface {
	Shape(run *textrun.TextRun) []textrun.ShapedCell
}

// FaceShaper shapes runs with a font.Face. Glyph masks are rasterized into
// an Atlas; horizontal kerning between neighbors of a run is applied to the
// glyph's left bearing.
type FaceShaper struct {
	atlas      *Atlas
	cellWidth  int
	cellHeight int
	ascent     int
}

// NewFaceShaper creates a shaper for face. If face is nil, basicfont.Face7x13 is used.
// The face must not be used concurrently by anything else.
func NewFaceShaper(face font.Face) *FaceShaper {
	if face == nil {
		face = basicfont.Face7x13
	}

	metrics := face.Metrics()
	adv, _ := face.GlyphAdvance('M')
	cellWidth := adv.Ceil()
	if cellWidth == 0 {
		cellWidth = 7 // fallback for basicfont
	}

	return &FaceShaper{
		atlas:      NewAtlas(face, DefaultAtlasSize),
		cellWidth:  cellWidth,
		cellHeight: metrics.Height.Ceil(),
		ascent:     metrics.Ascent.Ceil(),
	}
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return face, nil
}

// CellSize returns the pixel size of one grid cell.
func (s *FaceShaper) CellSize() (width, height int) {
	return s.cellWidth, s.cellHeight
}

// Ascent returns the distance from the top of a cell to the baseline.
func (s *FaceShaper) Ascent() int {
	return s.ascent
}

// Atlas returns the atlas glyphs are rasterized into.
func (s *FaceShaper) Atlas() *Atlas {
	return s.atlas
}

// Shape implements Shaper. Each character cell yields its base glyph
// followed by one glyph per zero-width character, all at the same cell.
func (s *FaceShaper) Shape(run *textrun.TextRun) []textrun.ShapedCell {
	cells := run.VisualCells()
	out := make([]textrun.ShapedCell, 0, len(cells))

	switch c := run.Content.(type) {
	case *textrun.CursorContent:
		out = append(out, textrun.ShapedCell{Cell: cells[0], Glyph: s.cursorGlyph(c.Key)})

	case *textrun.CharContent:
		var prev rune
		for i, cell := range cells {
			r := c.Chars[i]
			g := s.atlas.Glyph(r)
			if i > 0 {
				g.Left += toFloat(s.atlas.kern(prev, r))
			}
			out = append(out, textrun.ShapedCell{Cell: cell, Glyph: g})
			for _, m := range marks(cell) {
				out = append(out, textrun.ShapedCell{Cell: cell, Glyph: s.atlas.Glyph(m)})
			}
			prev = r
		}
	}

	return out
}

// marks returns the zero-width characters drawn over cell.
func marks(cell textrun.RenderableCell) []rune {
	if cell.Cursor != nil {
		return nil
	}
	zw := cell.Chars[1:]
	n := 0
	for n < len(zw) && zw[n] != 0 {
		n++
	}
	return zw[:n]
}

// cursorGlyph returns an untextured glyph covering the cursor's area.
func (s *FaceShaper) cursorGlyph(key textrun.CursorKey) textrun.Glyph {
	w := float32(s.cellWidth)
	if key.IsWide {
		w *= 2
	}
	h := float32(s.cellHeight)
	top := float32(s.ascent)

	switch key.Shape {
	case textrun.CursorShapeHidden:
		return textrun.Glyph{}
	case textrun.CursorShapeUnderline:
		return textrun.Glyph{Top: top - h + 2, Width: w, Height: 2}
	case textrun.CursorShapeBeam:
		return textrun.Glyph{Top: top, Width: 2, Height: h}
	default:
		return textrun.Glyph{Top: top, Width: w, Height: h}
	}
}

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
