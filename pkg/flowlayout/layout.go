package flowlayout

import (
	"context"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/sketcherr"
)

const (
	// NodeMinWidth is the floor on an estimated node width.
	NodeMinWidth = 120.0
	// CharWidthPx approximates average glyph width for width estimation.
	CharWidthPx = 10.0
	// NodeHeight is the height a flow node is given when it has no
	// explicit height.
	NodeHeight = 60.0
	// GroupInnerPadding separates a group's border from its members.
	GroupInnerPadding = 30.0
	// Padding is the whole-diagram margin applied once, after every
	// coordinate has been made absolute.
	Padding = 40.0
)

// EstimateWidth is §4.2 step 1: a node is at least NodeMinWidth wide, and
// grows with its label so long labels do not get clipped.
func EstimateWidth(label string) float64 {
	w := float64(len(label))*CharWidthPx + 40
	if w < NodeMinWidth {
		return NodeMinWidth
	}
	return w
}

func directionOf(d diagram.Direction) string {
	switch d {
	case diagram.DirectionLR:
		return DirRight
	case diagram.DirectionBT:
		return DirUp
	case diagram.DirectionRL:
		return DirLeft
	default:
		return DirDown
	}
}

// Layout runs the full §4.2 algorithm: it partitions nodes into groups
// (last writer wins, unknown group membership ignored), builds the
// collaborator Tree, hands it to svc, then rebases the returned
// coordinates into one absolute, padded Result.
func Layout(ctx context.Context, d *diagram.FlowDiagram, svc LayoutService) (Result, error) {
	groupOf := make(map[string]string, len(d.Nodes))
	validGroups := make(map[string]bool, len(d.Groups))
	for _, g := range d.Groups {
		validGroups[g.ID] = true
	}
	for _, g := range d.Groups {
		for _, memberID := range g.Contains {
			groupOf[memberID] = g.ID // last writer wins across groups
		}
	}

	nodeByID := make(map[string]*diagram.NodeDef, len(d.Nodes))
	for i := range d.Nodes {
		nodeByID[d.Nodes[i].ID] = &d.Nodes[i]
	}

	treeNodeByID := make(map[string]*Node, len(d.Nodes))
	groupNode := make(map[string]*Node, len(d.Groups))
	for _, g := range d.Groups {
		groupNode[g.ID] = &Node{ID: g.ID}
	}

	root := &Node{ID: "__root__"}
	for i := range d.Nodes {
		n := &d.Nodes[i]
		w, h := n.Width, n.Height
		if w == 0 {
			w = EstimateWidth(n.Label)
		}
		if h == 0 {
			h = NodeHeight
		}
		tn := &Node{ID: n.ID, Width: w, Height: h}
		treeNodeByID[n.ID] = tn

		gid, grouped := groupOf[n.ID]
		if grouped && validGroups[gid] {
			gn := groupNode[gid]
			gn.Children = append(gn.Children, tn)
		} else {
			root.Children = append(root.Children, tn)
		}
	}
	for _, g := range d.Groups {
		root.Children = append(root.Children, groupNode[g.ID])
	}

	edges := make([]*Edge, 0, len(d.Edges))
	for _, e := range d.Edges {
		edges = append(edges, &Edge{From: e.From, To: e.To})
	}

	tree := Tree{Root: root, Edges: edges, Direction: directionOf(d.Direction)}

	out, err := svc.Compute(ctx, tree)
	if err != nil {
		return Result{}, sketcherr.Wrap(sketcherr.CodeLayout, err, "compute flow layout")
	}

	res := Result{}
	maxX, maxY := 0.0, 0.0
	rawCenter := make(map[string]Point, len(d.Nodes)+len(d.Groups))

	var absolutize func(n *Node, offsetX, offsetY float64)
	absolutize = func(n *Node, offsetX, offsetY float64) {
		absX := n.X + offsetX
		absY := n.Y + offsetY
		rawCenter[n.ID] = Point{X: absX + n.Width/2, Y: absY + n.Height/2}

		if nd, ok := nodeByID[n.ID]; ok {
			ln := LayoutNode{
				ID: n.ID, X: absX + Padding, Y: absY + Padding,
				Width: n.Width, Height: n.Height,
				Label: nd.Label, Shape: nd.Shape,
				Color: nd.Color, TextColor: nd.TextColor,
			}
			res.Nodes = append(res.Nodes, ln)
		} else if gd := groupDefByID(d.Groups, n.ID); gd != nil {
			res.Groups = append(res.Groups, LayoutGroup{
				ID: n.ID, Label: gd.Label,
				X: absX + Padding, Y: absY + Padding,
				Width: n.Width, Height: n.Height, Color: gd.Color,
			})
		}

		if x := absX + n.Width; x > maxX {
			maxX = x
		}
		if y := absY + n.Height; y > maxY {
			maxY = y
		}

		for _, c := range n.Children {
			absolutize(c, absX, absY)
		}
	}
	for _, u := range out.Root.Children {
		absolutize(u, 0, 0)
	}

	for i, e := range out.Edges {
		srcDef := d.Edges[i]
		le := LayoutEdge{
			From: e.From, To: e.To, Label: srcDef.Label,
			Style: srcDef.Style, Direction: srcDef.Direction, Color: srcDef.Color,
		}
		le.Points = routePoints(e)
		if len(le.Points) < 2 {
			le.Points = straightLineFallback(rawCenter, e.From, e.To)
		}
		if len(le.Points) < 2 {
			continue // dangling endpoint: the edge is dropped
		}
		for i := range le.Points {
			le.Points[i].X += Padding
			le.Points[i].Y += Padding
		}
		res.Edges = append(res.Edges, le)
	}

	res.Width = maxX + 2*Padding
	res.Height = maxY + 2*Padding
	return res, nil
}

func groupDefByID(groups []diagram.GroupDef, id string) *diagram.GroupDef {
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i]
		}
	}
	return nil
}

// routePoints flattens an edge's sections into a single absolute polyline
// (start, any bend points, end), using only the first section — our
// layout backends never emit more than one.
func routePoints(e *Edge) []Point {
	if len(e.Sections) == 0 {
		return nil
	}
	s := e.Sections[0]
	pts := make([]Point, 0, len(s.BendPoints)+2)
	pts = append(pts, s.StartPoint)
	pts = append(pts, s.BendPoints...)
	pts = append(pts, s.EndPoint)
	return pts
}

// straightLineFallback draws edge geometry as a direct line between node
// (or group) centres when a layout service returns no route, per §4.2
// step 8. centers are pre-padding; Padding is added uniformly by the
// caller for both routed and fallback edges.
func straightLineFallback(centers map[string]Point, from, to string) []Point {
	a, aok := centers[from]
	b, bok := centers[to]
	if !aok || !bok {
		return nil
	}
	return []Point{a, b}
}
