package textrun

import (
	"log/slog"
)

// SelectionFunc reports whether the cell at p is selected.
type SelectionFunc func(p Point) bool

// Builder groups the cells of a line into text runs.
//
// A Builder keeps no per-line state between calls, but it is not safe for
// concurrent use when its middleware is not. Use one Builder per goroutine
// to build lines in parallel.
type Builder struct {
	cfg        Config
	colors     *ColorList
	logger     *slog.Logger
	middleware *Middleware
}

// BuilderOption configures a Builder during construction.
type BuilderOption func(*Builder)

// WithColorList sets the color list used to resolve raw color references.
// If nil, NewColorList(cfg) is used.
func WithColorList(colors *ColorList) BuilderOption {
	return func(b *Builder) {
		b.colors = colors
	}
}

// WithLogger sets the logger for debug output. Defaults to discarding everything.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithMiddleware sets middleware hooks for intercepting builder steps.
func WithMiddleware(mw *Middleware) BuilderOption {
	return func(b *Builder) {
		if b.middleware == nil {
			b.middleware = &Middleware{}
		}
		b.middleware.Merge(mw)
	}
}

// NewBuilder creates a builder for cfg with the given options.
func NewBuilder(cfg Config, opts ...BuilderOption) *Builder {
	b := &Builder{cfg: cfg}

	for _, opt := range opts {
		opt(b)
	}

	if b.colors == nil {
		b.colors = NewColorList(cfg)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.DiscardHandler)
	}

	return b
}

// Config returns the config the builder resolves colors with.
func (b *Builder) Config() Config {
	return b.cfg
}

// Colors returns the builder's color list.
func (b *Builder) Colors() *ColorList {
	return b.colors
}

// Resolve returns the render colors for start, going through middleware.
func (b *Builder) Resolve(start RunStart) Colors {
	if b.middleware != nil && b.middleware.ResolveColors != nil {
		return b.middleware.ResolveColors(start, b.resolveInternal)
	}
	return b.resolveInternal(start)
}

func (b *Builder) resolveInternal(start RunStart) Colors {
	return ResolveColors(b.cfg, b.colors, start)
}

// openRun is the run currently being extended.
type openRun struct {
	start   RunStart
	colors  Colors
	content *CharContent
	run     TextRun
}

// BuildLine walks the cells of one line left to right and returns the
// maximal runs of cells sharing resolved colors and alpha, flags and
// selection.
//
// Each cell entry is one column and its base character is kept even when
// it has no display width. Combining characters travel in the cell's
// ZeroWidth slots. Wide character spacers extend the run of their wide
// character. A nil selected means nothing is selected. An empty line
// yields no runs.
func (b *Builder) BuildLine(line int, cells []Cell, selected SelectionFunc) []TextRun {
	if len(cells) == 0 {
		return nil
	}

	var (
		runs []TextRun
		open *openRun
	)

	for col := range cells {
		cell := &cells[col]

		if cell.IsWideSpacer() && open != nil {
			open.run.Span.End = col
			continue
		}

		p := Point{Line: line, Col: col}
		start := NewRunStart(p, *cell, selected != nil && selected(p))
		colors := b.Resolve(start)

		if open == nil || !open.start.Continues(open.colors, start, colors) {
			if open != nil {
				b.finish(&runs, open)
			}
			open = newOpenRun(start, colors)
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		open.content.push(ch, cell.ZeroWidth)
		open.run.Span.End = col
	}

	if open != nil {
		b.finish(&runs, open)
	}

	b.logger.Debug("built line", "line", line, "columns", len(cells), "runs", len(runs))

	return runs
}

// BuildLines builds the runs of every line, in order.
func (b *Builder) BuildLines(lines []Line, selected SelectionFunc) [][]TextRun {
	out := make([][]TextRun, len(lines))
	for i := range lines {
		out[i] = b.BuildLine(lines[i].Index, lines[i].Cells, selected)
	}
	return out
}

// Cursor creates the single-column cursor run at (line, col). Colors are
// resolved from cell, the cell under the cursor; its characters are not drawn.
func (b *Builder) Cursor(line, col int, cell Cell, key CursorKey, selected bool) TextRun {
	start := NewRunStart(Point{Line: line, Col: col}, cell, selected)
	return cursorRun(start, b.Resolve(start), key)
}

func newOpenRun(start RunStart, colors Colors) *openRun {
	content := &CharContent{}
	return &openRun{
		start:   start,
		colors:  colors,
		content: content,
		run: TextRun{
			Line:    start.Line,
			Span:    Span{Start: start.Column, End: start.Column},
			Content: content,
			Fg:      colors.Fg,
			Bg:      colors.Bg,
			BgAlpha: colors.BgAlpha,
			Flags:   start.Flags,
		},
	}
}

func (b *Builder) finish(runs *[]TextRun, open *openRun) {
	run := open.run
	assert(run.Span.Start <= run.Span.End, "run span %d..%d is reversed", run.Span.Start, run.Span.End)
	assert(len(open.content.Chars) > 0, "run at %d:%d has no characters", run.Line, run.Span.Start)

	next := func(r TextRun) {
		*runs = append(*runs, r)
	}
	if b.middleware != nil && b.middleware.FinishRun != nil {
		b.middleware.FinishRun(run, next)
		return
	}
	next(run)
}
