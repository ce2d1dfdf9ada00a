package internal_test

import (
	"context"
	"testing"

	"github.com/arlojames/sketchdiagram/pkg/flowlayout"
	"github.com/arlojames/sketchdiagram/pkg/flowlayout/internal"
)

func buildChain() flowlayout.Tree {
	a := &flowlayout.Node{ID: "a", Width: 100, Height: 60}
	b := &flowlayout.Node{ID: "b", Width: 100, Height: 60}
	c := &flowlayout.Node{ID: "c", Width: 100, Height: 60}
	root := &flowlayout.Node{ID: "__root__", Children: []*flowlayout.Node{a, b, c}}
	edges := []*flowlayout.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}}
	return flowlayout.Tree{Root: root, Edges: edges, Direction: flowlayout.DirDown}
}

func TestCompute_LayersByLongestPath(t *testing.T) {
	tree := buildChain()
	out, err := internal.Service{}.Compute(context.Background(), tree)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	byID := make(map[string]*flowlayout.Node)
	for _, n := range out.Root.Children {
		byID[n.ID] = n
	}
	if !(byID["a"].Y < byID["b"].Y && byID["b"].Y < byID["c"].Y) {
		t.Errorf("expected strictly increasing Y down the chain, got a=%v b=%v c=%v",
			byID["a"].Y, byID["b"].Y, byID["c"].Y)
	}
}

func TestCompute_DeterministicAcrossRuns(t *testing.T) {
	out1, _ := internal.Service{}.Compute(context.Background(), buildChain())
	out2, _ := internal.Service{}.Compute(context.Background(), buildChain())
	for i := range out1.Root.Children {
		n1, n2 := out1.Root.Children[i], out2.Root.Children[i]
		if n1.X != n2.X || n1.Y != n2.Y {
			t.Fatalf("layout is not deterministic: %+v vs %+v", n1, n2)
		}
	}
}

func TestCompute_GroupSizedToChildren(t *testing.T) {
	child := &flowlayout.Node{ID: "child", Width: 100, Height: 60}
	group := &flowlayout.Node{ID: "g1", Children: []*flowlayout.Node{child}}
	root := &flowlayout.Node{ID: "__root__", Children: []*flowlayout.Node{group}}
	tree := flowlayout.Tree{Root: root, Direction: flowlayout.DirDown}

	out, err := internal.Service{}.Compute(context.Background(), tree)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	g := out.Root.Children[0]
	if g.Width <= child.Width || g.Height <= child.Height {
		t.Errorf("group should be padded larger than its child, got group=%+v child=%+v", g, child)
	}
	if child.X <= 0 || child.Y <= 0 {
		t.Errorf("child should be offset from the group origin by padding, got %+v", child)
	}
}

func TestCompute_CyclicEdgesDoNotHang(t *testing.T) {
	a := &flowlayout.Node{ID: "a", Width: 100, Height: 60}
	b := &flowlayout.Node{ID: "b", Width: 100, Height: 60}
	root := &flowlayout.Node{ID: "__root__", Children: []*flowlayout.Node{a, b}}
	edges := []*flowlayout.Edge{{From: "a", To: "b"}, {From: "b", To: "a"}}
	tree := flowlayout.Tree{Root: root, Edges: edges, Direction: flowlayout.DirDown}

	if _, err := (internal.Service{}).Compute(context.Background(), tree); err != nil {
		t.Fatalf("Compute should tolerate cycles, got error: %v", err)
	}
}
