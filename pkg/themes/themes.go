// Package themes holds the three visual themes the sketch renderer draws
// in, and the colour helpers (palette selection, darkening) the shape and
// edge renderers share.
package themes

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/fonts"
)

// Theme is the set of numeric knobs that distinguish hand-drawn, clean,
// and minimal rendering. Unlike a polymorphic style interface, all three
// spec themes share one rendering algorithm and differ only in these
// values, so one data type generalises the teacher's Style interface
// faithfully (see SPEC_FULL.md §4.5).
type Theme struct {
	StrokeWidth  float64
	JitterAmount float64
	FillOpacity  float64
	FontFamily   string
	DoubleStroke bool
	CornerRadius float64
}

// Sketchy reports whether this theme draws wobbly, jittered geometry
// rather than native SVG primitives.
func (t Theme) Sketchy() bool {
	return t.JitterAmount > 0
}

var themeTable = map[diagram.Style]Theme{
	diagram.StyleHandDrawn: {
		StrokeWidth: 1.5, JitterAmount: 2, FillOpacity: 0.15,
		FontFamily:   fonts.FallbackFontFamily,
		DoubleStroke: true, CornerRadius: 0,
	},
	diagram.StyleClean: {
		StrokeWidth: 1.5, JitterAmount: 0, FillOpacity: 0.10,
		FontFamily: "Inter, Helvetica, Arial",
		DoubleStroke: false, CornerRadius: 3,
	},
	diagram.StyleMinimal: {
		StrokeWidth: 1.0, JitterAmount: 0, FillOpacity: 0.05,
		FontFamily: "Inter, Helvetica, Arial",
		DoubleStroke: false, CornerRadius: 3,
	},
}

// Get returns the Theme for the given style name, defaulting to
// hand-drawn for an unrecognised or empty name (the parser already
// rejects unknown style strings, so this only matters for callers that
// construct a Theme directly).
func Get(style diagram.Style) Theme {
	if t, ok := themeTable[style]; ok {
		return t
	}
	return themeTable[diagram.StyleHandDrawn]
}

// Palette is the fixed 10-colour fallback fill sequence.
var Palette = [10]string{
	"#4ECDC4", "#FF6B6B", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// PaletteColor returns the palette entry at index i, wrapping modulo the
// palette length.
func PaletteColor(i int) string {
	return Palette[i%len(Palette)]
}

// Darken returns hex scaled toward black by amount (0-1), preserving the
// lowercase #rrggbb format. Each channel is round(c*(1-amount)).
func Darken(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	r := math.Round(c.R*255*(1-amount)) / 255
	g := math.Round(c.G*255*(1-amount)) / 255
	b := math.Round(c.B*255*(1-amount)) / 255
	return colorful.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}.Hex()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// TextColor returns the node/participant text colour, honouring an
// explicit override or defaulting to the spec's standard dark grey.
func TextColor(override string) string {
	if override != "" {
		return override
	}
	return "#333333"
}

// FillColor returns the fill colour for node index i, honouring an
// explicit override or falling back to the palette.
func FillColor(override string, index int) string {
	if override != "" {
		return override
	}
	return PaletteColor(index)
}

// StrokeColor is the conventional 30%-darkened outline for a given fill.
func StrokeColor(fill string) string {
	return Darken(fill, 0.3)
}
