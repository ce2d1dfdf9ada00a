package flowlayout

import "github.com/arlojames/sketchdiagram/pkg/diagram"

// LayoutNode is a positioned flow diagram node, ready to render.
type LayoutNode struct {
	ID        string
	X, Y      float64
	Width     float64
	Height    float64
	Label     string
	Shape     diagram.Shape
	Color     string
	TextColor string
}

// LayoutEdge is a routed edge, ready to render.
type LayoutEdge struct {
	From, To  string
	Label     string
	Style     diagram.EdgeStyle
	Direction diagram.EdgeDirection
	Color     string
	Points    []Point // ≥2 absolute waypoints, including both endpoints
}

// LayoutGroup is a positioned group container, ready to render.
type LayoutGroup struct {
	ID     string
	Label  string
	X, Y   float64
	Width  float64
	Height float64
	Color  string
}

// Result is the complete positioned flow diagram.
type Result struct {
	Width  float64
	Height float64
	Nodes  []LayoutNode
	Edges  []LayoutEdge
	Groups []LayoutGroup
}
