package textrun

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// Pen holds the attributes applied to newly written characters.
// It is modified by SGR (Select Graphic Rendition) attributes.
type Pen struct {
	Cell
}

// NewPen creates a pen with default attributes (default colors, no flags).
func NewPen() *Pen {
	return &Pen{Cell: NewCell()}
}

// Apply updates the pen with one SGR attribute.
func (p *Pen) Apply(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		p.Cell = NewCell()

	case ansicode.CharAttributeBold:
		p.SetFlag(CellFlagBold)

	case ansicode.CharAttributeDim:
		p.SetFlag(CellFlagDim)

	case ansicode.CharAttributeItalic:
		p.SetFlag(CellFlagItalic)

	case ansicode.CharAttributeUnderline:
		p.setUnderline(CellFlagUnderline)

	case ansicode.CharAttributeDoubleUnderline:
		p.setUnderline(CellFlagDoubleUnderline)

	case ansicode.CharAttributeCurlyUnderline:
		p.setUnderline(CellFlagCurlyUnderline)

	case ansicode.CharAttributeDottedUnderline:
		p.setUnderline(CellFlagDottedUnderline)

	case ansicode.CharAttributeDashedUnderline:
		p.setUnderline(CellFlagDashedUnderline)

	case ansicode.CharAttributeBlinkSlow:
		p.SetFlag(CellFlagBlinkSlow)

	case ansicode.CharAttributeBlinkFast:
		p.SetFlag(CellFlagBlinkFast)

	case ansicode.CharAttributeReverse:
		p.SetFlag(CellFlagInverse)

	case ansicode.CharAttributeHidden:
		p.SetFlag(CellFlagHidden)

	case ansicode.CharAttributeStrike:
		p.SetFlag(CellFlagStrike)

	case ansicode.CharAttributeCancelBold:
		p.ClearFlag(CellFlagBold)

	case ansicode.CharAttributeCancelBoldDim:
		p.ClearFlag(CellFlagBold | CellFlagDim)

	case ansicode.CharAttributeCancelItalic:
		p.ClearFlag(CellFlagItalic)

	case ansicode.CharAttributeCancelUnderline:
		p.ClearFlag(CellFlagAllUnderlines)

	case ansicode.CharAttributeCancelBlink:
		p.ClearFlag(CellFlagBlinkSlow | CellFlagBlinkFast)

	case ansicode.CharAttributeCancelReverse:
		p.ClearFlag(CellFlagInverse)

	case ansicode.CharAttributeCancelHidden:
		p.ClearFlag(CellFlagHidden)

	case ansicode.CharAttributeCancelStrike:
		p.ClearFlag(CellFlagStrike)

	case ansicode.CharAttributeForeground:
		p.Fg = colorReference(attr)

	case ansicode.CharAttributeBackground:
		p.Bg = colorReference(attr)
	}
}

// ApplyAll applies the attributes in order.
func (p *Pen) ApplyAll(attrs ...ansicode.TerminalCharAttribute) {
	for _, attr := range attrs {
		p.Apply(attr)
	}
}

func (p *Pen) setUnderline(style CellFlags) {
	p.ClearFlag(CellFlagAllUnderlines)
	p.SetFlag(style)
}

// Stamp returns a cell holding r with the pen's attributes.
func (p *Pen) Stamp(r rune) Cell {
	return Cell{
		Char:  r,
		Fg:    p.Fg,
		Bg:    p.Bg,
		Flags: p.Flags &^ (CellFlagWideChar | CellFlagWideCharSpacer),
	}
}

// colorReference converts the color carried by an SGR attribute into a raw
// color reference. Missing colors select the default foreground/background.
func colorReference(attr ansicode.TerminalCharAttribute) color.Color {
	if attr.RGBColor != nil {
		return color.RGBA{
			R: attr.RGBColor.R,
			G: attr.RGBColor.G,
			B: attr.RGBColor.B,
			A: 255,
		}
	}

	if attr.IndexedColor != nil {
		return &IndexedColor{Index: int(attr.IndexedColor.Index)}
	}

	if attr.NamedColor != nil {
		return &NamedColor{Name: int(*attr.NamedColor)}
	}

	if attr.Attr == ansicode.CharAttributeBackground {
		return &NamedColor{Name: NamedColorBackground}
	}
	return &NamedColor{Name: NamedColorForeground}
}
