package calendar

// ColorPair is the background/text colour combination rendered for one assignee.
type ColorPair struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Palette is the injected colour configuration: an ordered list of swatches
// plus the single index that needs dark text. Visual parity with existing
// clients is a data contract, so the values live here, not in render logic.
type Palette struct {
	Colors        []string
	DarkTextIndex int
	DarkText      string
	LightText     string
}

// DefaultPalette is the 10-swatch palette used by the web UI. Index 3 is the
// yellow swatch and gets dark text; every other swatch gets white text.
func DefaultPalette() Palette {
	return Palette{
		Colors: []string{
			"#007bff", "#28a745", "#dc3545", "#ffc107", "#6f42c1",
			"#fd7e14", "#20c997", "#e83e8c", "#6c757d", "#17a2b8",
		},
		DarkTextIndex: 3,
		DarkText:      "#212529",
		LightText:     "#ffffff",
	}
}

// PairFor returns the colour pair for an assignee by user number.
// The index is userNo mod len(Colors), so the mapping is stable across runs.
func (p Palette) PairFor(userNo int) ColorPair {
	if len(p.Colors) == 0 {
		return ColorPair{}
	}
	idx := userNo % len(p.Colors)
	if idx < 0 {
		idx += len(p.Colors)
	}
	text := p.LightText
	if idx == p.DarkTextIndex {
		text = p.DarkText
	}
	return ColorPair{Background: p.Colors[idx], Text: text}
}
