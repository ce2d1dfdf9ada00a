// Package flowlayout builds the hierarchical graph for a flow diagram,
// invokes an external layered-layout service, and re-absolutises the
// coordinates it returns into a LayoutResult the renderer can draw
// directly. See SPEC_FULL.md §4.2.
package flowlayout

import "context"

// Point is a single waypoint in SVG user units.
type Point struct {
	X, Y float64
}

// Node is one entry in the tree handed to a LayoutService: either a leaf
// (a flow diagram node) or a compound container (a group) holding
// Children. Before Compute, only ID/Width/Height/Children are meaningful;
// after Compute, X/Y are populated — relative to the immediate parent for
// nested children, absolute for nodes living directly under Root (see
// Tree doc).
type Node struct {
	ID       string
	Width    float64
	Height   float64
	Children []*Node

	X, Y float64
}

// Section is one contiguous routed segment of an edge, following the
// external layout service's own vocabulary (start point, optional bend
// points, end point).
type Section struct {
	StartPoint Point
	BendPoints []Point
	EndPoint   Point
}

// Edge is one connection in the tree, always attached at the root per
// §4.2 step 3. Sections is empty before Compute.
type Edge struct {
	From, To string
	Sections []Section
}

// Tree is the collaborator contract of §6: a root container holding
// top-level children (loose nodes and group compounds) and a flat edge
// list. Compound children's coordinates are relative to their immediate
// parent; Root's direct children and all edges are absolute once Compute
// has run, since the root itself sits at the origin.
type Tree struct {
	Root      *Node
	Edges     []*Edge
	Direction string // one of DOWN, RIGHT, UP, LEFT
}

// Direction constants, the result of §4.2 step 4's mapping from
// diagram.Direction.
const (
	DirDown  = "DOWN"
	DirRight = "RIGHT"
	DirUp    = "UP"
	DirLeft  = "LEFT"
)

// LayoutService is the external hierarchical layout service collaborator:
// it accepts a tree and returns the same tree with node/edge geometry
// filled in. The core never implements the layered-layout algorithm
// itself — it only builds this input and interprets the output.
type LayoutService interface {
	Compute(ctx context.Context, tree Tree) (Tree, error)
}
