package textrun

import "image/color"

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color (light gray).
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}

// Named color indices for semantic colors (used with NamedColor).
// Names 0-15 address the ANSI colors directly.
const (
	NamedColorForeground       = 256 // Default foreground text color
	NamedColorBackground       = 257 // Default background color
	NamedColorCursor           = 258 // Cursor color
	NamedColorDimBlack         = 259 // Dim black
	NamedColorDimRed           = 260 // Dim red
	NamedColorDimGreen         = 261 // Dim green
	NamedColorDimYellow        = 262 // Dim yellow
	NamedColorDimBlue          = 263 // Dim blue
	NamedColorDimMagenta       = 264 // Dim magenta
	NamedColorDimCyan          = 265 // Dim cyan
	NamedColorDimWhite         = 266 // Dim white
	NamedColorBrightForeground = 267 // Bright foreground
	NamedColorDimForeground    = 268 // Dim foreground

	// NumColors is the size of a ColorList.
	NumColors = 269
)

const dimFactor = 0.66

// IndexedColor references a color by palette index (0-255).
// Resolution to actual RGBA happens at render time using the ColorList.
type IndexedColor struct {
	Index int
}

// RGBA implements color.Color, returning a placeholder (actual resolution happens at render time).
func (c *IndexedColor) RGBA() (r, g, b, a uint32) {
	return 0, 0, 0, 0xffff
}

// NamedColor references a color by semantic name (foreground, background, cursor, etc.).
// Resolution to actual RGBA happens at render time using the ColorList.
type NamedColor struct {
	Name int
}

// RGBA implements color.Color, returning a placeholder (actual resolution happens at render time).
func (c *NamedColor) RGBA() (r, g, b, a uint32) {
	return 0, 0, 0, 0xffff
}

// ColorList holds every color a raw color reference can resolve to:
// the 256-color palette followed by the named semantic colors.
type ColorList [NumColors]color.RGBA

// NewColorList builds the color list for cfg. Dim variants that the
// config leaves unset are derived from their base colors.
func NewColorList(cfg Config) *ColorList {
	var l ColorList
	copy(l[:256], DefaultPalette[:])

	if cfg.Colors.Normal != nil {
		copy(l[0:8], cfg.Colors.Normal[:])
	}
	if cfg.Colors.Bright != nil {
		copy(l[8:16], cfg.Colors.Bright[:])
	}

	primary := cfg.Colors.Primary
	l[NamedColorForeground] = primary.Foreground
	l[NamedColorBackground] = primary.Background
	l[NamedColorCursor] = DefaultCursorColor

	for i := 0; i < 8; i++ {
		if cfg.Colors.Dim != nil {
			l[NamedColorDimBlack+i] = cfg.Colors.Dim[i]
		} else {
			l[NamedColorDimBlack+i] = dim(l[i])
		}
	}

	l[NamedColorBrightForeground] = primary.Foreground
	if primary.BrightForeground != nil {
		l[NamedColorBrightForeground] = *primary.BrightForeground
	}

	l[NamedColorDimForeground] = dim(primary.Foreground)
	if primary.DimForeground != nil {
		l[NamedColorDimForeground] = *primary.DimForeground
	}

	return &l
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * dimFactor),
		G: uint8(float64(c.G) * dimFactor),
		B: uint8(float64(c.B) * dimFactor),
		A: 255,
	}
}

// Foreground returns the default text color.
func (l *ColorList) Foreground() color.RGBA {
	return l[NamedColorForeground]
}

// Background returns the default background color.
func (l *ColorList) Background() color.RGBA {
	return l[NamedColorBackground]
}

// ForegroundRGB resolves a raw foreground reference, applying the bold and
// dim remapping rules of cfg. A nil reference is the default foreground.
func (l *ColorList) ForegroundRGB(cfg Config, ref color.Color, flags CellFlags) color.RGBA {
	dimBold := flags & (CellFlagBold | CellFlagDim)
	bright := cfg.DrawBoldTextWithBrightColors

	switch v := ref.(type) {
	case nil:
		return l.named(NamedColorForeground, dimBold, cfg)
	case *NamedColor:
		if v == nil {
			return l.named(NamedColorForeground, dimBold, cfg)
		}
		return l.named(v.Name, dimBold, cfg)
	case *IndexedColor:
		if v == nil || v.Index < 0 || v.Index > 255 {
			return l[NamedColorForeground]
		}
		idx := v.Index
		switch {
		case bright && dimBold == CellFlagBold && idx < 8:
			idx += 8
		case dimBold == CellFlagDim && idx < 8:
			idx += NamedColorDimBlack
		case dimBold == CellFlagDim && idx < 16:
			idx += NamedColorDimBlack - 8
		}
		return l[idx]
	default:
		return toRGBA(ref)
	}
}

func (l *ColorList) named(name int, dimBold CellFlags, cfg Config) color.RGBA {
	if name < 0 || name >= NumColors {
		return l[NamedColorForeground]
	}
	bright := cfg.DrawBoldTextWithBrightColors

	switch {
	case dimBold == CellFlagBold|CellFlagDim && name == NamedColorForeground && cfg.Colors.Primary.BrightForeground == nil:
		// Without a bright foreground, bold is ignored for the default foreground.
		return l[NamedColorDimForeground]
	case bright && dimBold == CellFlagBold:
		return l[namedToBright(name)]
	case dimBold == CellFlagDim || (!bright && dimBold == CellFlagBold|CellFlagDim):
		return l[namedToDim(name)]
	default:
		return l[name]
	}
}

// BackgroundRGB resolves a raw background reference. A nil reference is
// the default background.
func (l *ColorList) BackgroundRGB(ref color.Color) color.RGBA {
	switch v := ref.(type) {
	case nil:
		return l[NamedColorBackground]
	case *NamedColor:
		if v == nil || v.Name < 0 || v.Name >= NumColors {
			return l[NamedColorBackground]
		}
		return l[v.Name]
	case *IndexedColor:
		if v == nil || v.Index < 0 || v.Index > 255 {
			return l[NamedColorBackground]
		}
		return l[v.Index]
	default:
		return toRGBA(ref)
	}
}

// BackgroundAlpha returns 0 for the default background so a window backdrop
// can show through, and 1 for everything else.
func BackgroundAlpha(ref color.Color) float32 {
	switch v := ref.(type) {
	case nil:
		return 0
	case *NamedColor:
		if v == nil || v.Name == NamedColorBackground {
			return 0
		}
	}
	return 1
}

// namedToBright maps a named color to the variant used for bold text.
func namedToBright(name int) int {
	switch {
	case name >= 0 && name < 8:
		return name + 8
	case name == NamedColorForeground:
		return NamedColorBrightForeground
	case name == NamedColorDimForeground:
		return NamedColorForeground
	case name >= NamedColorDimBlack && name <= NamedColorDimWhite:
		return name - NamedColorDimBlack
	default:
		return name
	}
}

// namedToDim maps a named color to the variant used for dim text.
func namedToDim(name int) int {
	switch {
	case name >= 0 && name < 8:
		return name + NamedColorDimBlack
	case name >= 8 && name < 16:
		return name - 8
	case name == NamedColorForeground:
		return NamedColorDimForeground
	case name == NamedColorBrightForeground:
		return NamedColorForeground
	default:
		return name
	}
}

func toRGBA(c color.Color) color.RGBA {
	if v, ok := c.(color.RGBA); ok {
		return v
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}
