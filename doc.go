// Package textrun groups a line of terminal cells into text runs: maximal
// contiguous spans of cells that share resolved colors, attributes and
// selection state.
//
// Runs, not cells, are handed to the glyph shaping stage. Shaping a whole
// run lets adjacent characters form ligatures; splitting at every visual
// change keeps colors right, so a partial selection highlight breaks a
// ligature instead of painting it in the wrong color.
//
// # Quick Start
//
// Build the cells of a line, then group them:
//
//	pen := textrun.NewPen()
//	line := textrun.NewLine(0, 80)
//	line.Write(pen, "fn main() -> i32 {")
//
//	b := textrun.NewBuilder(textrun.DefaultConfig())
//	runs := b.BuildLine(line.Index, line.Cells, nil)
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Cell]: one grid position with raw color references and flags
//   - [ColorList]: palette plus semantic colors that raw references resolve to
//   - [Config]: selection overrides, primary colors, bold handling
//   - [RunStart]: the signature of the cell that opened a run
//   - [TextRun]: the run itself, with resolved colors and shaped output
//   - [Builder]: walks a line and produces runs
//
// # Color Resolution
//
// [ResolveColors] maps raw references, flags and selection to render
// colors, in this order:
//
//   - foreground and background are looked up in the color list, with
//     bold/dim remapping for the foreground
//   - the default background gets alpha 0 so a backdrop shows through
//   - a selected cell with a configured selection background takes it,
//     fully opaque, and is not inverted
//   - otherwise selected XOR inverse swaps foreground and background; if
//     both are equal and the cell is not hidden, the theme colors are used
//     instead so the text stays visible
//   - a configured selection text color replaces the foreground of
//     selected cells last
//
// # Run Boundaries
//
// A cell extends the open run when it is on the same line and its
// resolved foreground, resolved background, background alpha, flags and
// selection state all match the run's. Colors are stamped on the run when
// it opens.
//
// Every cell is one column. Zero-width characters ride in the ZeroWidth
// slots of the cell before them, up to [MaxZeroWidthChars]; [Line.Write]
// drops extra ones. The cursor is always its own one-column run, see
// [Builder.Cursor].
//
// # Identity
//
// [TextRun.Key] projects a run onto the fields that affect shaping: width,
// content, flags and the exact bits of the background alpha. Colors, line
// and columns are left out, so the same word drawn in another color or
// place reuses cached shaping work. [TextRun.Equal] compares every field
// and is what debugging and tests should use.
//
// # Debug Assertions
//
// Building with -tags textrundebug panics on broken run invariants
// (reversed spans, empty character runs).
//
// # Shaping
//
// The shape subpackage provides a reference shaping stage on top of
// golang.org/x/image font faces, and a cache keyed by run identity.
package textrun
