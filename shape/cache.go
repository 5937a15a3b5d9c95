package shape

import (
	"sync"
	"sync/atomic"

	textrun "github.com/danielgatis/go-textrun"
)

// Cache stores the glyphs of shaped runs keyed by run identity
// (textrun.RunKey). Runs that differ only in colors or position share one
// entry. Safe for concurrent use.
type Cache struct {
	mu         sync.RWMutex
	entries    map[textrun.RunKey][]textrun.Glyph
	maxEntries int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates a cache holding up to maxEntries runs. When full the
// cache is emptied before the next insert. Values <= 0 mean unbounded.
func NewCache(maxEntries int) *Cache {
	return &Cache{
		entries:    make(map[textrun.RunKey][]textrun.Glyph),
		maxEntries: maxEntries,
	}
}

// Shape fills run.Data, shaping with s only when no run with the same
// identity was shaped before. Cells always come from run itself, so the
// colors in run.Data are the live run's colors, never a cached run's.
// Already shaped runs are left alone.
func (c *Cache) Shape(run *textrun.TextRun, s Shaper) {
	if run.Shaped() {
		return
	}

	key := run.Key()

	c.mu.RLock()
	glyphs, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
		run.SetShaped(pair(run.VisualCells(), glyphs))
		return
	}

	c.misses.Add(1)
	data := s.Shape(run)
	run.SetShaped(data)

	glyphs = make([]textrun.Glyph, len(data))
	for i := range data {
		glyphs[i] = data[i].Glyph
	}

	c.mu.Lock()
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		clear(c.entries)
	}
	c.entries[key] = glyphs
	c.mu.Unlock()
}

// ShapeAll shapes every run in runs.
func (c *Cache) ShapeAll(runs []textrun.TextRun, s Shaper) {
	for i := range runs {
		c.Shape(&runs[i], s)
	}
}

// Len returns the number of cached runs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the number of cache hits and misses since creation or the last Reset.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Reset drops every entry and zeroes the statistics.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.hits.Store(0)
	c.misses.Store(0)
}

// pair lays glyphs over cells in the order FaceShaper emits them: each
// cell, then one entry per zero-width character of that cell.
func pair(cells []textrun.RenderableCell, glyphs []textrun.Glyph) []textrun.ShapedCell {
	out := make([]textrun.ShapedCell, 0, len(glyphs))
	for _, cell := range cells {
		for range 1 + len(marks(cell)) {
			sc := textrun.ShapedCell{Cell: cell}
			if len(out) < len(glyphs) {
				sc.Glyph = glyphs[len(out)]
			}
			out = append(out, sc)
		}
	}
	return out
}
