package textrun

// RunSnapshot is a JSON-friendly view of a TextRun for debugging and
// golden tests. It carries every field of the run.
type RunSnapshot struct {
	Line       int           `json:"line"`
	Start      int           `json:"start"`
	End        int           `json:"end"`
	Width      int           `json:"width"`
	Text       string        `json:"text,omitempty"`
	Cursor     string        `json:"cursor,omitempty"`
	Fg         string        `json:"fg"`
	Bg         string        `json:"bg"`
	BgAlpha    float32       `json:"bg_alpha"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Glyphs     int           `json:"glyphs,omitempty"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	Inverse       bool `json:"inverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Wide          bool `json:"wide,omitempty"`
}

// SnapshotRun creates a snapshot of one run.
func SnapshotRun(r *TextRun) RunSnapshot {
	snap := RunSnapshot{
		Line:       r.Line,
		Start:      r.Span.Start,
		End:        r.Span.End,
		Width:      r.Width(),
		Fg:         hexColor(r.Fg),
		Bg:         hexColor(r.Bg),
		BgAlpha:    r.BgAlpha,
		Attributes: flagsToSnapshot(r.Flags),
		Glyphs:     len(r.Data),
	}

	switch c := r.Content.(type) {
	case *CursorContent:
		snap.Cursor = c.Key.Shape.String()
	case *CharContent:
		snap.Text = c.Text()
	}

	return snap
}

// SnapshotRuns creates snapshots of runs, in order.
func SnapshotRuns(runs []TextRun) []RunSnapshot {
	snaps := make([]RunSnapshot, len(runs))
	for i := range runs {
		snaps[i] = SnapshotRun(&runs[i])
	}
	return snaps
}

// flagsToSnapshot extracts formatting attributes.
func flagsToSnapshot(f CellFlags) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:          f&CellFlagBold != 0,
		Dim:           f&CellFlagDim != 0,
		Italic:        f&CellFlagItalic != 0,
		Underline:     f&CellFlagAllUnderlines != 0,
		Blink:         f&(CellFlagBlinkSlow|CellFlagBlinkFast) != 0,
		Inverse:       f&CellFlagInverse != 0,
		Hidden:        f&CellFlagHidden != 0,
		Strikethrough: f&CellFlagStrike != 0,
		Wide:          f&CellFlagWideChar != 0,
	}
}
