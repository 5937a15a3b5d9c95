package textrun

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds the rendering settings the color pipeline depends on.
// Optional overrides are pointers; nil means "not configured".
type Config struct {
	Colors ColorsConfig

	// DrawBoldTextWithBrightColors maps bold text in colors 0-7 to their bright variants.
	DrawBoldTextWithBrightColors bool
}

// ColorsConfig groups the configurable colors.
type ColorsConfig struct {
	Primary   PrimaryColors
	Selection SelectionColors

	// Normal, Bright and Dim replace the first 16 palette entries and the
	// dim variants. If nil, DefaultPalette (and derived dims) are used.
	Normal *[8]color.RGBA
	Bright *[8]color.RGBA
	Dim    *[8]color.RGBA
}

// PrimaryColors are the default foreground and background colors.
type PrimaryColors struct {
	Foreground color.RGBA
	Background color.RGBA

	// BrightForeground is used for bold default-colored text. If nil, Foreground is used.
	BrightForeground *color.RGBA

	// DimForeground is used for dim default-colored text. If nil, derived from Foreground.
	DimForeground *color.RGBA
}

// SelectionColors override the colors of selected cells.
// If a field is nil, selected cells are drawn inverted instead.
type SelectionColors struct {
	Text       *color.RGBA
	Background *color.RGBA
}

// Option configures a Config during construction.
type Option func(*Config)

// DefaultConfig returns the default settings: default primary colors, no
// selection overrides, bold text drawn with bright colors.
func DefaultConfig() Config {
	return Config{
		Colors: ColorsConfig{
			Primary: PrimaryColors{
				Foreground: DefaultForeground,
				Background: DefaultBackground,
			},
		},
		DrawBoldTextWithBrightColors: true,
	}
}

// NewConfig creates a config from DefaultConfig with the given options applied.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPrimary sets the default foreground and background colors.
func WithPrimary(fg, bg color.RGBA) Option {
	return func(c *Config) {
		c.Colors.Primary.Foreground = fg
		c.Colors.Primary.Background = bg
	}
}

// WithBrightForeground sets the color used for bold default-colored text.
func WithBrightForeground(fg color.RGBA) Option {
	return func(c *Config) {
		c.Colors.Primary.BrightForeground = &fg
	}
}

// WithSelectionBackground forces the background of selected cells.
func WithSelectionBackground(bg color.RGBA) Option {
	return func(c *Config) {
		c.Colors.Selection.Background = &bg
	}
}

// WithSelectionText forces the foreground of selected cells.
func WithSelectionText(fg color.RGBA) Option {
	return func(c *Config) {
		c.Colors.Selection.Text = &fg
	}
}

// WithBoldBright enables or disables drawing bold text with bright colors.
func WithBoldBright(enabled bool) Option {
	return func(c *Config) {
		c.DrawBoldTextWithBrightColors = enabled
	}
}

type configFile struct {
	DrawBoldTextWithBrightColors *bool `toml:"draw_bold_text_with_bright_colors"`
	Colors                       struct {
		Primary struct {
			Foreground       string `toml:"foreground"`
			Background       string `toml:"background"`
			BrightForeground string `toml:"bright_foreground"`
			DimForeground    string `toml:"dim_foreground"`
		} `toml:"primary"`
		Selection struct {
			Text       string `toml:"text"`
			Background string `toml:"background"`
		} `toml:"selection"`
		Normal map[string]string `toml:"normal"`
		Bright map[string]string `toml:"bright"`
		Dim    map[string]string `toml:"dim"`
	} `toml:"colors"`
}

var ansiNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ParseConfig decodes a TOML document on top of DefaultConfig.
// Colors are hex strings ("#rrggbb"); unset keys keep their defaults.
//
//	draw_bold_text_with_bright_colors = false
//
//	[colors.primary]
//	foreground = "#d8d8d8"
//	background = "#181818"
//
//	[colors.selection]
//	background = "#44475a"
//
//	[colors.normal]
//	red = "#ff5555"
func ParseConfig(data []byte) (Config, error) {
	var f configFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg := DefaultConfig()
	if f.DrawBoldTextWithBrightColors != nil {
		cfg.DrawBoldTextWithBrightColors = *f.DrawBoldTextWithBrightColors
	}

	p := f.Colors.Primary
	if err := parseInto(&cfg.Colors.Primary.Foreground, "colors.primary.foreground", p.Foreground); err != nil {
		return Config{}, err
	}
	if err := parseInto(&cfg.Colors.Primary.Background, "colors.primary.background", p.Background); err != nil {
		return Config{}, err
	}

	optional := []struct {
		dst   **color.RGBA
		key   string
		value string
	}{
		{&cfg.Colors.Primary.BrightForeground, "colors.primary.bright_foreground", p.BrightForeground},
		{&cfg.Colors.Primary.DimForeground, "colors.primary.dim_foreground", p.DimForeground},
		{&cfg.Colors.Selection.Text, "colors.selection.text", f.Colors.Selection.Text},
		{&cfg.Colors.Selection.Background, "colors.selection.background", f.Colors.Selection.Background},
	}
	for _, o := range optional {
		if o.value == "" {
			continue
		}
		c, err := parseHex(o.key, o.value)
		if err != nil {
			return Config{}, err
		}
		*o.dst = &c
	}

	var err error
	if cfg.Colors.Normal, err = parseANSI("colors.normal", f.Colors.Normal, DefaultPalette[0:8]); err != nil {
		return Config{}, err
	}
	if cfg.Colors.Bright, err = parseANSI("colors.bright", f.Colors.Bright, DefaultPalette[8:16]); err != nil {
		return Config{}, err
	}
	if cfg.Colors.Dim, err = parseANSI("colors.dim", f.Colors.Dim, nil); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func parseInto(dst *color.RGBA, key, value string) error {
	if value == "" {
		return nil
	}
	c, err := parseHex(key, value)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

func parseHex(key, value string) (color.RGBA, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color for %s: %w", key, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// parseANSI returns nil when the table is absent. Missing names fall back
// to base, or to the derived dim color when base is nil.
func parseANSI(section string, table map[string]string, base []color.RGBA) (*[8]color.RGBA, error) {
	if len(table) == 0 {
		return nil, nil
	}

	var out [8]color.RGBA
	for i, name := range ansiNames {
		value, ok := table[name]
		if !ok {
			if base != nil {
				out[i] = base[i]
			} else {
				out[i] = dim(DefaultPalette[i])
			}
			continue
		}
		c, err := parseHex(section+"."+name, value)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	for name := range table {
		if !isANSIName(name) {
			return nil, fmt.Errorf("unknown color %s.%s", section, name)
		}
	}

	return &out, nil
}

func isANSIName(name string) bool {
	for _, n := range ansiNames {
		if n == name {
			return true
		}
	}
	return false
}
