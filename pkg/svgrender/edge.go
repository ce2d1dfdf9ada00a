// Package svgrender assembles the final SVG document: edges with
// arrowheads and labels, group containers, the sequence-diagram
// lifelines/boxes/messages, and the outer <svg> wrapper, all written
// directly into a bytes.Buffer in the same style as pkg/svgshapes.
package svgrender

import (
	"bytes"
	"fmt"
	"math"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/flowlayout"
	"github.com/arlojames/sketchdiagram/pkg/rng"
	"github.com/arlojames/sketchdiagram/pkg/svgshapes"
	"github.com/arlojames/sketchdiagram/pkg/themes"
)

const (
	edgeFontSize   = 12.0
	arrowSize      = 10.0
	arrowBaseAngle = 0.82 * math.Pi
)

func numf(v float64) string { return fmt.Sprintf("%.1f", v) }

// DashArray is §4.7's dash-style lookup.
func DashArray(style diagram.EdgeStyle) string {
	switch style {
	case diagram.EdgeDashed:
		return "8,4"
	case diagram.EdgeDotted:
		return "3,3"
	default:
		return ""
	}
}

// DrawEdge renders one flow-diagram connection: a sketchy polyline
// through every waypoint, arrowhead(s) per its direction, and an
// optional label with a white background rect, per §4.7.
func DrawEdge(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, e flowlayout.LayoutEdge) {
	if len(e.Points) < 2 {
		return
	}
	stroke := e.Color
	if stroke == "" {
		stroke = "#666666"
	}

	fmt.Fprintf(buf, `<g class="edge" data-from="%s" data-to="%s">`+"\n",
		svgshapes.EscapeXML(e.From), svgshapes.EscapeXML(e.To))

	drawPolyline(buf, r, th, e.Points, stroke, DashArray(e.Style))
	drawArrowheads(buf, r, th, e.Points, e.Direction, stroke)
	if e.Label != "" {
		drawEdgeLabel(buf, e.Points, e.Label)
	}

	buf.WriteString("</g>\n")
}

func drawPolyline(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, pts []flowlayout.Point, stroke, dash string) {
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if th.Sketchy() {
			sketchySegment(buf, r, th, a.X, a.Y, b.X, b.Y, stroke, dash)
		} else {
			fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-dasharray="%s"/>`+"\n",
				numf(a.X), numf(a.Y), numf(b.X), numf(b.Y), stroke, numf(th.StrokeWidth), dash)
		}
	}
}

func sketchySegment(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, x1, y1, x2, y2 float64, stroke, dash string) {
	mx, my := rng.JitterPoint(r, (x1+x2)/2, (y1+y2)/2, th.JitterAmount)
	fmt.Fprintf(buf,
		`<path d="M %s %s Q %s %s %s %s" stroke="%s" stroke-width="%s" stroke-dasharray="%s" fill="none"/>`+"\n",
		numf(x1), numf(y1), numf(mx), numf(my), numf(x2), numf(y2), stroke, numf(th.StrokeWidth), dash)
}

func drawArrowheads(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, pts []flowlayout.Point, dir diagram.EdgeDirection, stroke string) {
	n := len(pts)
	switch dir {
	case diagram.EdgeForward:
		drawArrowhead(buf, r, th, pts[n-2], pts[n-1], stroke)
	case diagram.EdgeBackward:
		drawArrowhead(buf, r, th, pts[1], pts[0], stroke)
	case diagram.EdgeBoth:
		drawArrowhead(buf, r, th, pts[n-2], pts[n-1], stroke)
		drawArrowhead(buf, r, th, pts[1], pts[0], stroke)
	case diagram.EdgeNone:
	default:
		drawArrowhead(buf, r, th, pts[n-2], pts[n-1], stroke)
	}
}

// drawArrowhead draws a filled triangle at tip, with its base points
// computed by rotating the segment direction (base → tip) by
// ±arrowBaseAngle and stepping arrowSize from the tip.
func drawArrowhead(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, base, tip flowlayout.Point, fill string) {
	angle := math.Atan2(tip.Y-base.Y, tip.X-base.X)
	b1x := tip.X + arrowSize*math.Cos(angle+arrowBaseAngle)
	b1y := tip.Y + arrowSize*math.Sin(angle+arrowBaseAngle)
	b2x := tip.X + arrowSize*math.Cos(angle-arrowBaseAngle)
	b2y := tip.Y + arrowSize*math.Sin(angle-arrowBaseAngle)

	if th.Sketchy() {
		tip.X, tip.Y = rng.JitterPoint(r, tip.X, tip.Y, th.JitterAmount/2)
	}

	fmt.Fprintf(buf, `<polygon points="%s,%s %s,%s %s,%s" fill="%s"/>`+"\n",
		numf(tip.X), numf(tip.Y), numf(b1x), numf(b1y), numf(b2x), numf(b2y), fill)
}

func drawEdgeLabel(buf *bytes.Buffer, pts []flowlayout.Point, label string) {
	mid := midWaypoint(pts)
	w := math.Max(float64(len(label))*7+12, 30)
	const h = 20.0

	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="3" fill="#ffffff" fill-opacity="0.9"/>`+"\n",
		numf(mid.X-w/2), numf(mid.Y-h/2), numf(w), numf(h))
	fmt.Fprintf(buf, `<text x="%s" y="%s" font-size="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		numf(mid.X), numf(mid.Y), numf(edgeFontSize), svgshapes.EscapeXML(label))
}

// midWaypoint is the "middle one" point for an odd-count waypoint list,
// or the average of the two middle points for an even-count one.
func midWaypoint(pts []flowlayout.Point) flowlayout.Point {
	n := len(pts)
	if n%2 == 1 {
		return pts[n/2]
	}
	a, b := pts[n/2-1], pts[n/2]
	return flowlayout.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
