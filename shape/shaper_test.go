package shape

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"

	textrun "github.com/danielgatis/go-textrun"
)

func buildRuns(t *testing.T, text string) []textrun.TextRun {
	t.Helper()
	line := textrun.NewLine(0, len([]rune(text)))
	line.Write(textrun.NewPen(), text)
	return textrun.NewBuilder(textrun.DefaultConfig()).BuildLine(0, line.Cells, nil)
}

func TestNewFaceShaper_Default(t *testing.T) {
	s := NewFaceShaper(nil)

	w, h := s.CellSize()
	if w != 7 || h != 13 {
		t.Errorf("CellSize() = %d x %d, want 7 x 13", w, h)
	}
	if s.Ascent() != 11 {
		t.Errorf("Ascent() = %d, want 11", s.Ascent())
	}
	if s.Atlas() == nil {
		t.Fatal("Atlas() = nil")
	}
}

func TestFaceShaper_Chars(t *testing.T) {
	s := NewFaceShaper(nil)
	runs := buildRuns(t, "MaM")
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}

	out := s.Shape(&runs[0])
	if len(out) != 3 {
		t.Fatalf("len(Shape()) = %d, want 3", len(out))
	}

	for i, sc := range out {
		if sc.Cell.Column != i {
			t.Errorf("out[%d].Cell.Column = %d, want %d", i, sc.Cell.Column, i)
		}
		if sc.Cell.Fg != runs[0].Fg {
			t.Errorf("out[%d].Cell.Fg = %v, want %v", i, sc.Cell.Fg, runs[0].Fg)
		}
		if sc.Glyph.Width != 6 || sc.Glyph.Height != 13 || sc.Glyph.Top != 11 {
			t.Errorf("out[%d].Glyph = %+v, want 6x13 at top 11", i, sc.Glyph)
		}
	}

	if out[0].Glyph != out[2].Glyph {
		t.Errorf("same rune rasterized twice: %+v vs %+v", out[0].Glyph, out[2].Glyph)
	}
	if s.Atlas().Len() != 2 {
		t.Errorf("Atlas().Len() = %d, want 2", s.Atlas().Len())
	}
	if out[1].Glyph.UVLeft != 6.0/DefaultAtlasSize {
		t.Errorf("out[1].Glyph.UVLeft = %v, want %v", out[1].Glyph.UVLeft, 6.0/DefaultAtlasSize)
	}
}

func TestFaceShaper_ZeroWidth(t *testing.T) {
	s := NewFaceShaper(nil)
	runs := buildRuns(t, "e\u0301\u0302x")
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}

	out := s.Shape(&runs[0])
	if len(out) != 4 {
		t.Fatalf("len(Shape()) = %d, want 4", len(out))
	}

	for i, want := range []int{0, 0, 0, 1} {
		if out[i].Cell.Column != want {
			t.Errorf("out[%d].Cell.Column = %d, want %d", i, out[i].Cell.Column, want)
		}
	}
	if out[1].Cell != out[0].Cell || out[2].Cell != out[0].Cell {
		t.Error("zero-width glyphs not drawn over their base cell")
	}
	if out[0].Glyph != s.Atlas().Glyph('e') || out[3].Glyph != s.Atlas().Glyph('x') {
		t.Errorf("base glyphs = %+v, %+v, want e and x", out[0].Glyph, out[3].Glyph)
	}
	if out[1].Glyph != s.Atlas().Glyph('\u0301') {
		t.Errorf("out[1].Glyph = %+v, want acute accent glyph", out[1].Glyph)
	}
}

func TestFaceShaper_Cursor(t *testing.T) {
	s := NewFaceShaper(nil)
	b := textrun.NewBuilder(textrun.DefaultConfig())

	tests := []struct {
		key    textrun.CursorKey
		width  float32
		height float32
	}{
		{textrun.CursorKey{Shape: textrun.CursorShapeBlock}, 7, 13},
		{textrun.CursorKey{Shape: textrun.CursorShapeBlock, IsWide: true}, 14, 13},
		{textrun.CursorKey{Shape: textrun.CursorShapeBeam}, 2, 13},
		{textrun.CursorKey{Shape: textrun.CursorShapeUnderline}, 7, 2},
		{textrun.CursorKey{Shape: textrun.CursorShapeHidden}, 0, 0},
	}

	for _, tt := range tests {
		run := b.Cursor(0, 2, textrun.NewCell(), tt.key, false)
		out := s.Shape(&run)
		if len(out) != 1 {
			t.Fatalf("%v: len(Shape()) = %d, want 1", tt.key.Shape, len(out))
		}
		g := out[0].Glyph
		if g.Width != tt.width || g.Height != tt.height {
			t.Errorf("%v wide=%v: glyph %vx%v, want %vx%v", tt.key.Shape, tt.key.IsWide, g.Width, g.Height, tt.width, tt.height)
		}
		if out[0].Cell.Cursor == nil || *out[0].Cell.Cursor != tt.key {
			t.Errorf("%v: cell cursor = %v, want %v", tt.key.Shape, out[0].Cell.Cursor, tt.key)
		}
		if out[0].Cell.Column != 2 {
			t.Errorf("%v: cell column = %d, want 2", tt.key.Shape, out[0].Cell.Column)
		}
	}
}

func TestAtlas_Rasterizes(t *testing.T) {
	s := NewFaceShaper(nil)
	g := s.Atlas().Glyph('M')

	pages := s.Atlas().Pages()
	if len(pages) != 1 {
		t.Fatalf("len(Pages()) = %d, want 1", len(pages))
	}
	if g.TexID != 0 {
		t.Errorf("TexID = %d, want 0", g.TexID)
	}

	var lit bool
	for y := 0; y < int(g.Height); y++ {
		for x := 0; x < int(g.Width); x++ {
			if pages[0].AlphaAt(x, y) != (color.Alpha{}) {
				lit = true
			}
		}
	}
	if !lit {
		t.Error("glyph mask is empty")
	}
}

func TestAtlas_NewPage(t *testing.T) {
	atlas := NewAtlas(basicfont.Face7x13, 14)

	first := atlas.Glyph('A')
	// A 14px page fits one 13px row of two 6px glyphs.
	atlas.Glyph('B')
	third := atlas.Glyph('C')

	if first.TexID != 0 {
		t.Errorf("first TexID = %d, want 0", first.TexID)
	}
	if third.TexID != 1 {
		t.Errorf("third TexID = %d, want 1", third.TexID)
	}
	if third.UVLeft != 0 || third.UVBot != 0 {
		t.Errorf("third UV = %v,%v, want 0,0", third.UVLeft, third.UVBot)
	}
	if len(atlas.Pages()) != 2 {
		t.Errorf("len(Pages()) = %d, want 2", len(atlas.Pages()))
	}
}

func TestLoadFont_Errors(t *testing.T) {
	if _, err := LoadFontFromBytes([]byte("not a font"), 12); err == nil {
		t.Error("LoadFontFromBytes() error = nil, want parse error")
	}
	if _, err := LoadFont("testdata/missing.ttf", 12); err == nil {
		t.Error("LoadFont() error = nil, want open error")
	}
}
