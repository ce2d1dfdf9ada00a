package themes

import (
	"testing"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
)

func TestGet_HandDrawn(t *testing.T) {
	th := Get(diagram.StyleHandDrawn)
	if !th.Sketchy() {
		t.Error("hand-drawn theme should be sketchy")
	}
	if !th.DoubleStroke {
		t.Error("hand-drawn theme should use double-stroke")
	}
}

func TestGet_MinimalVsClean(t *testing.T) {
	clean := Get(diagram.StyleClean)
	minimal := Get(diagram.StyleMinimal)
	if clean.Sketchy() || minimal.Sketchy() {
		t.Error("clean and minimal must not be sketchy")
	}
	if minimal.StrokeWidth >= clean.StrokeWidth {
		t.Error("minimal stroke width should be thinner than clean")
	}
	if minimal.FillOpacity >= clean.FillOpacity {
		t.Error("minimal fill opacity should be lower than clean")
	}
}

func TestPaletteColor_Wraps(t *testing.T) {
	if PaletteColor(0) != PaletteColor(10) {
		t.Error("palette should wrap modulo its length")
	}
}

func TestDarken(t *testing.T) {
	got := Darken("#ffffff", 0.5)
	if got != "#808080" && got != "#7f7f7f" {
		t.Errorf("Darken(#ffffff, 0.5) = %v, want ~#808080", got)
	}
}

func TestFillColor_OverrideWins(t *testing.T) {
	if FillColor("#112233", 0) != "#112233" {
		t.Error("explicit color override should win over palette")
	}
}
