package textrun

import "image/color"

// Colors is the resolved render color triple of a cell or run.
type Colors struct {
	Fg      color.RGBA
	Bg      color.RGBA
	BgAlpha float32
}

// ResolveColors turns the raw color references of start into render
// colors. The result depends only on its arguments.
//
// Precedence: a configured selection background disables inversion for
// selected cells; a configured selection text color replaces whatever
// foreground the other rules produced.
func ResolveColors(cfg Config, colors *ColorList, start RunStart) Colors {
	fg := colors.ForegroundRGB(cfg, start.Fg, start.Flags)
	bg := colors.BackgroundRGB(start.Bg)
	alpha := BackgroundAlpha(start.Bg)

	inverse := start.Flags&CellFlagInverse != 0
	hidden := start.Flags&CellFlagHidden != 0

	if sel := cfg.Colors.Selection.Background; start.Selected && sel != nil {
		bg = *sel
		alpha = 1
	} else if start.Selected != inverse {
		if fg == bg && !hidden {
			// Reveal text drawn in its own background color.
			fg = colors.Background()
			bg = colors.Foreground()
		} else {
			fg, bg = bg, fg
		}
		alpha = 1
	}

	if text := cfg.Colors.Selection.Text; start.Selected && text != nil {
		fg = *text
	}

	return Colors{Fg: fg, Bg: bg, BgAlpha: alpha}
}
