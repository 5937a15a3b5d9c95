package shape

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	textrun "github.com/danielgatis/go-textrun"
)

// DefaultAtlasSize is the side length of an atlas page in pixels.
const DefaultAtlasSize = 1024

// Atlas rasterizes glyph masks into square alpha pages, packed row by row.
// A glyph's TexID is the index of its page. Safe for concurrent use.
type Atlas struct {
	mu sync.Mutex

	face  font.Face
	size  int
	pages []*image.Alpha

	// Packing cursor in the last page
	x, y      int
	rowHeight int

	glyphs map[rune]textrun.Glyph
}

// NewAtlas creates an atlas for face with pages of size×size pixels.
// Values <= 0 are replaced with DefaultAtlasSize.
func NewAtlas(face font.Face, size int) *Atlas {
	if size <= 0 {
		size = DefaultAtlasSize
	}
	return &Atlas{
		face:   face,
		size:   size,
		glyphs: make(map[rune]textrun.Glyph),
	}
}

// Pages returns the atlas pages. The returned images must not be modified.
func (a *Atlas) Pages() []*image.Alpha {
	a.mu.Lock()
	defer a.mu.Unlock()
	pages := make([]*image.Alpha, len(a.pages))
	copy(pages, a.pages)
	return pages
}

// Len returns the number of rasterized glyphs.
func (a *Atlas) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.glyphs)
}

// Glyph returns the atlas entry for r, rasterizing it on first use.
// Runes without a visible mask get a zero-sized glyph.
func (a *Atlas) Glyph(r rune) textrun.Glyph {
	a.mu.Lock()
	defer a.mu.Unlock()

	if g, ok := a.glyphs[r]; ok {
		return g
	}

	g := a.rasterize(r)
	a.glyphs[r] = g
	return g
}

// kern returns the kerning adjustment between r0 and r1.
func (a *Atlas) kern(r0, r1 rune) fixed.Int26_6 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.face.Kern(r0, r1)
}

func (a *Atlas) rasterize(r rune) textrun.Glyph {
	dr, mask, maskp, _, ok := a.face.Glyph(fixed.P(0, 0), r)
	if !ok || dr.Empty() {
		return textrun.Glyph{}
	}

	w, h := dr.Dx(), dr.Dy()
	if w > a.size || h > a.size {
		return textrun.Glyph{}
	}

	if len(a.pages) == 0 {
		a.newPage()
	}
	if a.x+w > a.size {
		a.x = 0
		a.y += a.rowHeight
		a.rowHeight = 0
	}
	if a.y+h > a.size {
		a.newPage()
	}

	page := a.pages[len(a.pages)-1]
	draw.Draw(page, image.Rect(a.x, a.y, a.x+w, a.y+h), mask, maskp, draw.Src)

	size := float32(a.size)
	g := textrun.Glyph{
		TexID:    uint32(len(a.pages) - 1),
		Top:      float32(-dr.Min.Y),
		Left:     float32(dr.Min.X),
		Width:    float32(w),
		Height:   float32(h),
		UVBot:    float32(a.y) / size,
		UVLeft:   float32(a.x) / size,
		UVWidth:  float32(w) / size,
		UVHeight: float32(h) / size,
	}

	a.x += w
	if h > a.rowHeight {
		a.rowHeight = h
	}

	return g
}

func (a *Atlas) newPage() {
	a.pages = append(a.pages, image.NewAlpha(image.Rect(0, 0, a.size, a.size)))
	a.x, a.y, a.rowHeight = 0, 0, 0
}
