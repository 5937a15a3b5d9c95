// Package shape turns text runs into (visual cell, glyph) pairs using
// golang.org/x/image font faces, and caches the glyph geometry by run
// identity so identical runs are shaped once.
//
//	shaper := shape.NewFaceShaper(nil) // basicfont.Face7x13
//	cache := shape.NewCache(4096)
//
//	for i := range runs {
//	    cache.Shape(&runs[i], shaper)
//	}
//
// Only glyph geometry is cached. Cells of a cache hit are rebuilt from the
// run being shaped, so resolved colors always come from the live run.
package shape
