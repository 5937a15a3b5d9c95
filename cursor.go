package textrun

// CursorStyle is the DECSCUSR cursor style requested by the application.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// CursorShape is the glyph drawn for the cursor.
type CursorShape int

const (
	CursorShapeBlock CursorShape = iota
	CursorShapeUnderline
	CursorShapeBeam
	// CursorShapeHollowBlock is drawn when the window is unfocused.
	CursorShapeHollowBlock
	CursorShapeHidden
)

// Shape returns the cursor shape for the style; blinking is a draw-time concern.
func (s CursorStyle) Shape() CursorShape {
	switch s {
	case CursorStyleBlinkingUnderline, CursorStyleSteadyUnderline:
		return CursorShapeUnderline
	case CursorStyleBlinkingBar, CursorStyleSteadyBar:
		return CursorShapeBeam
	default:
		return CursorShapeBlock
	}
}

// String returns the lowercase shape name.
func (s CursorShape) String() string {
	switch s {
	case CursorShapeUnderline:
		return "underline"
	case CursorShapeBeam:
		return "beam"
	case CursorShapeHollowBlock:
		return "hollow_block"
	case CursorShapeHidden:
		return "hidden"
	default:
		return "block"
	}
}

// CursorKey selects a cursor glyph. Two cursors with the same key share
// the same rasterized glyph.
type CursorKey struct {
	Shape  CursorShape
	IsWide bool
}
