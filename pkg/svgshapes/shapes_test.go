package svgshapes_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/rng"
	"github.com/arlojames/sketchdiagram/pkg/svgshapes"
	"github.com/arlojames/sketchdiagram/pkg/themes"
)

func TestDraw_CleanRectangleUsesNativeRect(t *testing.T) {
	var buf bytes.Buffer
	svgshapes.Draw(&buf, rng.New(), themes.Get(diagram.StyleClean), svgshapes.Node{
		ID: "a", Label: "A", Shape: diagram.ShapeRectangle, X: 0, Y: 0, W: 120, H: 60,
		Fill: "#fff", Stroke: "#000", TextColor: "#333",
	})
	if !strings.Contains(buf.String(), "<rect") {
		t.Errorf("clean rectangle should contain a native <rect>, got %s", buf.String())
	}
}

func TestDraw_HandDrawnRectangleUsesPath(t *testing.T) {
	var buf bytes.Buffer
	svgshapes.Draw(&buf, rng.New(), themes.Get(diagram.StyleHandDrawn), svgshapes.Node{
		ID: "a", Label: "A", Shape: diagram.ShapeRectangle, X: 0, Y: 0, W: 120, H: 60,
		Fill: "#fff", Stroke: "#000", TextColor: "#333",
	})
	if !strings.Contains(buf.String(), "<path") {
		t.Errorf("hand-drawn rectangle should contain sketchy <path> edges, got %s", buf.String())
	}
}

func TestDraw_CleanEllipseUsesNativeEllipse(t *testing.T) {
	var buf bytes.Buffer
	svgshapes.Draw(&buf, rng.New(), themes.Get(diagram.StyleMinimal), svgshapes.Node{
		ID: "a", Label: "A", Shape: diagram.ShapeEllipse, X: 0, Y: 0, W: 120, H: 60,
		Fill: "#fff", Stroke: "#000", TextColor: "#333",
	})
	if !strings.Contains(buf.String(), "<ellipse") {
		t.Errorf("clean ellipse should contain a native <ellipse>, got %s", buf.String())
	}
}

func TestDraw_Deterministic(t *testing.T) {
	n := svgshapes.Node{
		ID: "a", Label: "A", Shape: diagram.ShapeCloud, X: 0, Y: 0, W: 120, H: 60,
		Fill: "#fff", Stroke: "#000", TextColor: "#333",
	}
	th := themes.Get(diagram.StyleHandDrawn)

	var buf1, buf2 bytes.Buffer
	svgshapes.Draw(&buf1, rng.New(), th, n)
	svgshapes.Draw(&buf2, rng.New(), th, n)
	if buf1.String() != buf2.String() {
		t.Error("drawing the same node with freshly-seeded RNGs should be byte-identical")
	}
}

func TestDraw_LabelEscaped(t *testing.T) {
	var buf bytes.Buffer
	svgshapes.Draw(&buf, rng.New(), themes.Get(diagram.StyleClean), svgshapes.Node{
		ID: "a", Label: "A & B", Shape: diagram.ShapeRectangle, X: 0, Y: 0, W: 120, H: 60,
		Fill: "#fff", Stroke: "#000", TextColor: "#333",
	})
	if !strings.Contains(buf.String(), "A &amp; B") {
		t.Errorf("label should be XML-escaped, got %s", buf.String())
	}
}

func TestWrapLabel_ShortLabelUnwrapped(t *testing.T) {
	lines := svgshapes.WrapLabel("short")
	if len(lines) != 1 || lines[0] != "short" {
		t.Errorf("short label should not wrap, got %v", lines)
	}
}

func TestWrapLabel_LongLabelWraps(t *testing.T) {
	lines := svgshapes.WrapLabel("this is a rather long label that needs wrapping")
	if len(lines) < 2 {
		t.Errorf("long label should wrap into multiple lines, got %v", lines)
	}
	for _, l := range lines {
		if len(l) > 18 {
			t.Errorf("line %q exceeds maxCharsPerLine", l)
		}
	}
}
