// Package graphviz is the goccy/go-graphviz backed flowlayout.LayoutService,
// selectable through pkg/engineconfig as an alternative to the pure-Go
// default in pkg/flowlayout/internal. It builds a DOT graph (compound
// nodes become clusters), renders it to Graphviz's "plain" text output
// format, and parses that text for coordinates rather than rasterising
// or parsing SVG — the same graphviz.New/ParseBytes/Render sequence used
// elsewhere in this codebase's ancestry for node-link diagrams, pointed
// at a different output format.
package graphviz

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	gv "github.com/goccy/go-graphviz"

	"github.com/arlojames/sketchdiagram/pkg/flowlayout"
	"github.com/arlojames/sketchdiagram/pkg/sketcherr"
)

// pointsPerInch converts Graphviz's inch-based plain-format coordinates
// into the SVG user units the rest of the engine works in.
const pointsPerInch = 72.0

// Service is the graphviz-backed LayoutService.
type Service struct{}

func (Service) Compute(ctx context.Context, tree flowlayout.Tree) (flowlayout.Tree, error) {
	dot := toDOT(tree)

	g, err := gv.New(ctx)
	if err != nil {
		return tree, sketcherr.Wrap(sketcherr.CodeLayout, err, "init graphviz")
	}
	defer g.Close()

	graph, err := gv.ParseBytes([]byte(dot))
	if err != nil {
		return tree, sketcherr.Wrap(sketcherr.CodeLayout, err, "parse DOT")
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := g.Render(ctx, graph, gv.Format("plain"), &buf); err != nil {
		return tree, sketcherr.Wrap(sketcherr.CodeLayout, err, "render plain layout")
	}

	return applyPlain(tree, buf.String())
}

func toDOT(tree flowlayout.Tree) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", tree.Direction)
	buf.WriteString("  nodesep=0.4;\n  ranksep=0.6;\n")
	buf.WriteString("  node [shape=box];\n\n")

	var writeNode func(n *flowlayout.Node, depth int)
	writeNode = func(n *flowlayout.Node, depth int) {
		if len(n.Children) > 0 {
			fmt.Fprintf(&buf, "  subgraph cluster_%s {\n", escapeID(n.ID))
			for _, c := range n.Children {
				writeNode(c, depth+1)
			}
			buf.WriteString("  }\n")
			return
		}
		fmt.Fprintf(&buf, "  %q [width=%.3f, height=%.3f, fixedsize=true];\n",
			n.ID, n.Width/pointsPerInch, n.Height/pointsPerInch)
	}
	for _, u := range tree.Root.Children {
		writeNode(u, 0)
	}

	buf.WriteString("\n")
	for _, e := range tree.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func escapeID(id string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, id)
}

// applyPlain parses Graphviz's "plain" text format and writes positions
// back onto tree's nodes and edges. Graphviz's y axis points up with an
// origin at the bottom-left; ours points down from the top-left, so
// every y coordinate is flipped against the graph's total height.
func applyPlain(tree flowlayout.Tree, plain string) (flowlayout.Tree, error) {
	byID := make(map[string]*flowlayout.Node)
	var collect func(n *flowlayout.Node)
	collect = func(n *flowlayout.Node) {
		byID[n.ID] = n
		for _, c := range n.Children {
			collect(c)
		}
	}
	for _, u := range tree.Root.Children {
		collect(u)
	}

	var graphHeightIn float64
	scanner := bufio.NewScanner(strings.NewReader(plain))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "graph":
			if len(fields) >= 4 {
				graphHeightIn, _ = strconv.ParseFloat(fields[3], 64)
			}
		case "node":
			if len(fields) < 6 {
				continue
			}
			id := unquote(fields[1])
			n, ok := byID[id]
			if !ok {
				continue
			}
			cx, _ := strconv.ParseFloat(fields[2], 64)
			cy, _ := strconv.ParseFloat(fields[3], 64)
			w, _ := strconv.ParseFloat(fields[4], 64)
			h, _ := strconv.ParseFloat(fields[5], 64)
			n.Width = w * pointsPerInch
			n.Height = h * pointsPerInch
			n.X = cx*pointsPerInch - n.Width/2
			n.Y = (graphHeightIn-cy)*pointsPerInch - n.Height/2
		case "edge":
			applyPlainEdge(tree, fields, graphHeightIn)
		}
	}

	nestChildrenIntoParents(tree.Root)
	return tree, nil
}

func applyPlainEdge(tree flowlayout.Tree, fields []string, graphHeightIn float64) {
	if len(fields) < 4 {
		return
	}
	from := unquote(fields[1])
	to := unquote(fields[2])
	n, err := strconv.Atoi(fields[3])
	if err != nil || n < 1 || len(fields) < 4+2*n {
		return
	}
	var edge *flowlayout.Edge
	for _, e := range tree.Edges {
		if e.From == from && e.To == to {
			edge = e
			break
		}
	}
	if edge == nil {
		return
	}
	pts := make([]flowlayout.Point, 0, n)
	for i := 0; i < n; i++ {
		x, _ := strconv.ParseFloat(fields[4+2*i], 64)
		y, _ := strconv.ParseFloat(fields[5+2*i], 64)
		pts = append(pts, flowlayout.Point{
			X: x * pointsPerInch,
			Y: (graphHeightIn - y) * pointsPerInch,
		})
	}
	section := flowlayout.Section{StartPoint: pts[0], EndPoint: pts[len(pts)-1]}
	if len(pts) > 2 {
		section.BendPoints = pts[1 : len(pts)-1]
	}
	edge.Sections = []flowlayout.Section{section}
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}

// nestChildrenIntoParents rewrites every compound node's children from
// Graphviz's absolute coordinates into parent-relative ones, and sizes
// the parent to its children plus GroupInnerPadding, matching the
// contract flowlayout.Layout expects from any LayoutService.
func nestChildrenIntoParents(root *flowlayout.Node) {
	var walk func(n *flowlayout.Node)
	walk = func(n *flowlayout.Node) {
		if len(n.Children) == 0 {
			return
		}
		minX, minY := n.Children[0].X, n.Children[0].Y
		maxX, maxY := minX+n.Children[0].Width, minY+n.Children[0].Height
		for _, c := range n.Children[1:] {
			if c.X < minX {
				minX = c.X
			}
			if c.Y < minY {
				minY = c.Y
			}
			if c.X+c.Width > maxX {
				maxX = c.X + c.Width
			}
			if c.Y+c.Height > maxY {
				maxY = c.Y + c.Height
			}
		}
		const pad = 30.0
		n.X, n.Y = minX-pad, minY-pad
		n.Width = (maxX - minX) + 2*pad
		n.Height = (maxY - minY) + 2*pad
		for _, c := range n.Children {
			c.X -= n.X
			c.Y -= n.Y
			walk(c)
		}
	}
	for _, u := range root.Children {
		walk(u)
	}
}
