// Package internal is a deterministic, pure-Go implementation of
// flowlayout.LayoutService: longest-path layering followed by a
// barycenter ordering pass to reduce edge crossings. It is the engine's
// default layout backend so golden-output and property tests never
// depend on an installed graphviz/dot binary; the goccy/go-graphviz
// backed backend in pkg/flowlayout/graphviz remains available and
// selectable through pkg/engineconfig.
//
// The layering and crossing-reduction approach is adapted from the
// row-based DAG model and Fenwick-tree crossing counter used elsewhere in
// this codebase's ancestry (longest-path layer assignment, then iterative
// barycenter reordering of each row) — standard Sugiyama-style techniques,
// not anything specific to dependency graphs.
package internal

import (
	"context"
	"sort"

	"github.com/arlojames/sketchdiagram/pkg/flowlayout"
)

const (
	layerSpacingDown  = 80.0
	nodeSpacingAcross = 50.0
	groupPadding      = 30.0
)

// Service is the default LayoutService.
type Service struct{}

func (Service) Compute(_ context.Context, tree flowlayout.Tree) (flowlayout.Tree, error) {
	units := tree.Root.Children
	if len(units) == 0 {
		return tree, nil
	}

	index := make(map[string]int, len(units))
	for i, u := range units {
		index[u.ID] = i
	}

	adj := make([][]int, len(units))
	rev := make([][]int, len(units))
	for _, e := range tree.Edges {
		from, fok := index[e.From]
		to, tok := index[e.To]
		if !fok || !tok || from == to {
			continue
		}
		adj[from] = append(adj[from], to)
		rev[to] = append(rev[to], from)
	}

	layer := assignLayers(adj, rev, len(units))
	rows := bucketByLayer(layer, len(units))
	orderRows(rows, adj, rev)

	for _, u := range units {
		layoutGroupChildren(u)
	}
	placeUnits(units, rows, tree.Direction)

	for _, e := range tree.Edges {
		from, fok := index[e.From]
		to, tok := index[e.To]
		if !fok || !tok {
			e.Sections = nil
			continue
		}
		src := absoluteAnchor(units[from], e.From)
		dst := absoluteAnchor(units[to], e.To)
		e.Sections = []flowlayout.Section{{StartPoint: src, EndPoint: dst}}
	}

	return tree, nil
}

// assignLayers performs longest-path layering via a topological walk.
// Edges that would revisit an already-placed ancestor (a back edge) are
// ignored for layering purposes so non-DAG flow diagrams degrade
// gracefully instead of looping forever.
func assignLayers(adj, rev [][]int, n int) []int {
	layer := make([]int, n)
	for i := range layer {
		layer[i] = -1
	}

	indeg := make([]int, n)
	for i := 0; i < n; i++ {
		indeg[i] = len(rev[i])
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
			layer[i] = 0
		}
	}

	visited := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range adj[cur] {
			if layer[cur]+1 > layer[next] {
				layer[next] = layer[cur] + 1
			}
			indeg[next]--
			if indeg[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	// Anything left unreached is part of a cycle; place it at layer 0
	// rather than looping — flow diagrams are not guaranteed acyclic.
	for i := range layer {
		if layer[i] < 0 {
			layer[i] = 0
		}
	}
	return layer
}

func bucketByLayer(layer []int, n int) [][]int {
	maxLayer := 0
	for _, l := range layer {
		if l > maxLayer {
			maxLayer = l
		}
	}
	rows := make([][]int, maxLayer+1)
	for i := 0; i < n; i++ {
		rows[layer[i]] = append(rows[layer[i]], i)
	}
	return rows
}

// orderRows runs a few passes of barycenter ordering: each row is sorted
// by the mean position of its neighbours in the row above, alternating
// with the row below, which is the standard cheap approximation to
// crossing minimisation.
func orderRows(rows [][]int, adj, rev [][]int) {
	pos := make(map[int]int)
	reindex := func() {
		for _, row := range rows {
			for i, u := range row {
				pos[u] = i
			}
		}
	}
	reindex()

	const passes = 4
	for p := 0; p < passes; p++ {
		downward := p%2 == 0
		if downward {
			for r := 1; r < len(rows); r++ {
				sortByBarycenter(rows[r], rev, pos)
				reindex()
			}
		} else {
			for r := len(rows) - 2; r >= 0; r-- {
				sortByBarycenter(rows[r], adj, pos)
				reindex()
			}
		}
	}
}

func sortByBarycenter(row []int, neighbors [][]int, pos map[int]int) {
	bary := make(map[int]float64, len(row))
	for _, u := range row {
		ns := neighbors[u]
		if len(ns) == 0 {
			bary[u] = float64(pos[u])
			continue
		}
		sum := 0.0
		for _, n := range ns {
			sum += float64(pos[n])
		}
		bary[u] = sum / float64(len(ns))
	}
	sort.SliceStable(row, func(i, j int) bool {
		return bary[row[i]] < bary[row[j]]
	})
}

func placeUnits(units []*flowlayout.Node, rows [][]int, direction string) {
	switch direction {
	case flowlayout.DirUp:
		placeStacked(units, rows, true, false)
	case flowlayout.DirDown, "":
		placeStacked(units, rows, false, false)
	case flowlayout.DirLeft:
		placeStacked(units, rows, true, true)
	case flowlayout.DirRight:
		placeStacked(units, rows, false, true)
	default:
		placeStacked(units, rows, false, false)
	}
}

// placeStacked lays rows out along the main axis (y for TB/BT, x for
// LR/RL) with layerSpacingDown between layers, and distributes each row's
// members along the cross axis with nodeSpacingAcross between them.
// reverseMain flips layer order (BT/RL); transpose swaps main/cross axes
// (LR/RL).
func placeStacked(units []*flowlayout.Node, rows [][]int, reverseMain, transpose bool) {
	nRows := len(rows)
	mainCoord := 0.0
	for k := 0; k < nRows; k++ {
		li := k
		if reverseMain {
			li = nRows - 1 - k
		}

		crossCoord := 0.0
		depth := 0.0
		for _, u := range rows[li] {
			unit := units[u]
			if transpose {
				unit.X = mainCoord
				unit.Y = crossCoord
				crossCoord += unit.Height + nodeSpacingAcross
				depth = max(depth, unit.Width)
			} else {
				unit.X = crossCoord
				unit.Y = mainCoord
				crossCoord += unit.Width + nodeSpacingAcross
				depth = max(depth, unit.Height)
			}
		}
		mainCoord += depth + layerSpacingDown
	}
}

// layoutGroupChildren arranges a compound node's children in a single
// left-to-right row, relative to the group's own origin, and sizes the
// group to fit them plus groupPadding on every side.
func layoutGroupChildren(unit *flowlayout.Node) {
	if len(unit.Children) == 0 {
		return
	}
	x := groupPadding
	maxH := 0.0
	for _, c := range unit.Children {
		c.X = x
		c.Y = groupPadding
		x += c.Width + nodeSpacingAcross
		if c.Height > maxH {
			maxH = c.Height
		}
	}
	contentWidth := x - nodeSpacingAcross
	unit.Width = contentWidth + 2*groupPadding
	unit.Height = maxH + 2*groupPadding
}

// absoluteAnchor resolves the root-space centre of an edge endpoint. If
// id names a group directly, its own (absolute) centre is used;
// otherwise the id is searched among each unit's children and the
// group's absolute origin is added to the child's group-relative
// position, since edges are attached at the root per §4.2 step 3.
func absoluteAnchor(unit *flowlayout.Node, id string) flowlayout.Point {
	if unit.ID == id {
		return flowlayout.Point{X: unit.X + unit.Width/2, Y: unit.Y + unit.Height/2}
	}
	for _, c := range unit.Children {
		if c.ID == id {
			return flowlayout.Point{
				X: unit.X + c.X + c.Width/2,
				Y: unit.Y + c.Y + c.Height/2,
			}
		}
	}
	return flowlayout.Point{X: unit.X + unit.Width/2, Y: unit.Y + unit.Height/2}
}
