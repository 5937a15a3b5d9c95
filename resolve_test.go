package textrun

import (
	"image/color"
	"testing"
)

func plainStart() RunStart {
	cell := NewCell()
	return NewRunStart(Point{}, cell, false)
}

func TestResolveColors(t *testing.T) {
	selBg := color.RGBA{68, 71, 90, 255}
	selText := color.RGBA{250, 250, 250, 255}
	same := color.RGBA{10, 20, 30, 255}

	tests := []struct {
		name  string
		cfg   Config
		start func() RunStart
		want  Colors
	}{
		{
			name:  "plain default colors",
			cfg:   DefaultConfig(),
			start: plainStart,
			want:  Colors{Fg: DefaultForeground, Bg: DefaultBackground, BgAlpha: 0},
		},
		{
			name: "selected without override swaps",
			cfg:  DefaultConfig(),
			start: func() RunStart {
				s := plainStart()
				s.Selected = true
				return s
			},
			want: Colors{Fg: DefaultBackground, Bg: DefaultForeground, BgAlpha: 1},
		},
		{
			name: "inverse swaps",
			cfg:  DefaultConfig(),
			start: func() RunStart {
				s := plainStart()
				s.Flags = CellFlagInverse
				return s
			},
			want: Colors{Fg: DefaultBackground, Bg: DefaultForeground, BgAlpha: 1},
		},
		{
			name: "selected inverse cancels out",
			cfg:  DefaultConfig(),
			start: func() RunStart {
				s := plainStart()
				s.Selected = true
				s.Flags = CellFlagInverse
				return s
			},
			want: Colors{Fg: DefaultForeground, Bg: DefaultBackground, BgAlpha: 0},
		},
		{
			name: "invisible text is revealed",
			cfg:  DefaultConfig(),
			start: func() RunStart {
				s := plainStart()
				s.Fg, s.Bg = same, same
				s.Flags = CellFlagInverse
				return s
			},
			want: Colors{Fg: DefaultBackground, Bg: DefaultForeground, BgAlpha: 1},
		},
		{
			name: "hidden text stays hidden",
			cfg:  DefaultConfig(),
			start: func() RunStart {
				s := plainStart()
				s.Fg, s.Bg = same, same
				s.Flags = CellFlagInverse | CellFlagHidden
				return s
			},
			want: Colors{Fg: same, Bg: same, BgAlpha: 1},
		},
		{
			name: "selection background override",
			cfg:  NewConfig(WithSelectionBackground(selBg)),
			start: func() RunStart {
				s := plainStart()
				s.Selected = true
				return s
			},
			want: Colors{Fg: DefaultForeground, Bg: selBg, BgAlpha: 1},
		},
		{
			name: "selection background wins over inverse",
			cfg:  NewConfig(WithSelectionBackground(selBg)),
			start: func() RunStart {
				s := plainStart()
				s.Selected = true
				s.Flags = CellFlagInverse
				return s
			},
			want: Colors{Fg: DefaultForeground, Bg: selBg, BgAlpha: 1},
		},
		{
			name: "selection text override applied after swap",
			cfg:  NewConfig(WithSelectionText(selText)),
			start: func() RunStart {
				s := plainStart()
				s.Selected = true
				return s
			},
			want: Colors{Fg: selText, Bg: DefaultForeground, BgAlpha: 1},
		},
		{
			name: "override only applies to selected cells",
			cfg:  NewConfig(WithSelectionText(selText), WithSelectionBackground(selBg)),
			start: func() RunStart {
				return plainStart()
			},
			want: Colors{Fg: DefaultForeground, Bg: DefaultBackground, BgAlpha: 0},
		},
		{
			name: "indexed background is opaque",
			cfg:  DefaultConfig(),
			start: func() RunStart {
				s := plainStart()
				s.Bg = &IndexedColor{Index: 4}
				return s
			},
			want: Colors{Fg: DefaultForeground, Bg: DefaultPalette[4], BgAlpha: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := NewColorList(tt.cfg)
			got := ResolveColors(tt.cfg, colors, tt.start())
			if got != tt.want {
				t.Errorf("ResolveColors() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveColorsDeterministic(t *testing.T) {
	cfg := NewConfig(WithSelectionText(color.RGBA{1, 2, 3, 255}))
	colors := NewColorList(cfg)
	start := plainStart()
	start.Selected = true
	start.Flags = CellFlagBold | CellFlagItalic
	start.Fg = &IndexedColor{Index: 3}

	first := ResolveColors(cfg, colors, start)
	for i := 0; i < 10; i++ {
		if got := ResolveColors(cfg, colors, start); got != first {
			t.Fatalf("ResolveColors() = %+v on call %d, want %+v", got, i, first)
		}
	}
}
