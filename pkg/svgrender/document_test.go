package svgrender_test

import (
	"strings"
	"testing"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/flowlayout"
	"github.com/arlojames/sketchdiagram/pkg/rng"
	"github.com/arlojames/sketchdiagram/pkg/seqlayout"
	"github.com/arlojames/sketchdiagram/pkg/svgrender"
	"github.com/arlojames/sketchdiagram/pkg/themes"
)

func TestFlow_WellFormed(t *testing.T) {
	res := flowlayout.Result{
		Width: 200, Height: 100,
		Nodes: []flowlayout.LayoutNode{
			{ID: "a", Label: "A", Shape: diagram.ShapeRectangle, X: 10, Y: 10, Width: 100, Height: 60},
		},
	}
	out := svgrender.Flow(rng.New(), themes.Get(diagram.StyleClean), "Test", res)
	s := string(out)
	if !strings.HasPrefix(s, "<svg") {
		t.Error("document should start with <svg")
	}
	if !strings.HasSuffix(strings.TrimRight(s, "\n"), "</svg>") {
		t.Error("document should end with </svg>")
	}
	if !strings.Contains(s, "Test") || !strings.Contains(s, "A") {
		t.Error("title and node label should be preserved")
	}
}

func TestFlow_DashSignature(t *testing.T) {
	res := flowlayout.Result{
		Width: 200, Height: 100,
		Nodes: []flowlayout.LayoutNode{
			{ID: "a", Label: "A", X: 10, Y: 10, Width: 100, Height: 60},
			{ID: "b", Label: "B", X: 10, Y: 80, Width: 100, Height: 60},
		},
		Edges: []flowlayout.LayoutEdge{
			{From: "a", To: "b", Style: diagram.EdgeDashed, Direction: diagram.EdgeForward,
				Points: []flowlayout.Point{{X: 60, Y: 70}, {X: 60, Y: 80}}},
		},
	}
	out := svgrender.Flow(rng.New(), themes.Get(diagram.StyleClean), "", res)
	if !strings.Contains(string(out), `stroke-dasharray="8,4"`) {
		t.Errorf("dashed edge should emit stroke-dasharray=8,4, got %s", out)
	}
}

func TestFlow_HandDrawnUsesPaths(t *testing.T) {
	res := flowlayout.Result{
		Width: 200, Height: 100,
		Nodes: []flowlayout.LayoutNode{{ID: "a", Label: "A", X: 10, Y: 10, Width: 100, Height: 60}},
	}
	out := svgrender.Flow(rng.New(), themes.Get(diagram.StyleHandDrawn), "", res)
	if !strings.Contains(string(out), "<path") {
		t.Error("hand-drawn theme should emit <path> elements")
	}
}

func TestSequence_SelfMessageProducesLoop(t *testing.T) {
	d := &diagram.SequenceDiagram{
		Participants: []diagram.ParticipantDef{{ID: "svc", Label: "svc"}},
		Messages:     []diagram.MessageDef{{From: "svc", To: "svc", Label: "tick"}},
	}
	res := seqlayout.Layout(d)
	out := svgrender.Sequence(rng.New(), themes.Get(diagram.StyleClean), "", d, res)
	if !strings.Contains(string(out), "tick") {
		t.Error("self-message label should appear in output")
	}
}

func TestFlow_Deterministic(t *testing.T) {
	res := flowlayout.Result{
		Width: 200, Height: 100,
		Nodes: []flowlayout.LayoutNode{{ID: "a", Label: "A", X: 10, Y: 10, Width: 100, Height: 60}},
	}
	th := themes.Get(diagram.StyleHandDrawn)
	out1 := svgrender.Flow(rng.New(), th, "T", res)
	out2 := svgrender.Flow(rng.New(), th, "T", res)
	if string(out1) != string(out2) {
		t.Error("rendering the same input twice should be byte-identical")
	}
}
