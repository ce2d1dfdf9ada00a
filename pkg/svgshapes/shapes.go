package svgshapes

import (
	"bytes"
	"fmt"
	"math"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/rng"
	"github.com/arlojames/sketchdiagram/pkg/themes"
)

const nodeFontSize = 14.0

// Node is everything needed to draw one flow-diagram node.
type Node struct {
	ID        string
	Label     string
	Shape     diagram.Shape
	X, Y      float64
	W, H      float64
	Fill      string
	Stroke    string
	TextColor string
}

// Draw renders n wrapped in <g class="node" data-id="...">, dispatching
// to the shape-specific body and then the label, per §4.6.
func Draw(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, n Node) {
	fmt.Fprintf(buf, `<g class="node" data-id="%s">`+"\n", EscapeXML(n.ID))

	switch n.Shape {
	case diagram.ShapeEllipse:
		drawEllipse(buf, r, th, n)
	case diagram.ShapeDiamond:
		drawDiamond(buf, r, th, n)
	case diagram.ShapeCylinder:
		drawCylinder(buf, r, th, n)
	case diagram.ShapeCloud:
		drawCloud(buf, r, th, n)
	case diagram.ShapeHexagon:
		drawHexagon(buf, r, th, n)
	case diagram.ShapeParallelogram:
		drawParallelogram(buf, r, th, n)
	default:
		drawRectangle(buf, r, th, n)
	}

	labelY := n.Y + n.H/2
	switch n.Shape {
	case diagram.ShapeCylinder:
		labelY += math.Min(15, n.H*0.15) / 2
	case diagram.ShapeCloud:
		labelY += n.H * 0.04
	}
	DrawLabel(buf, n.X+n.W/2, labelY, nodeFontSize, th.FontFamily, n.TextColor, n.Label)

	buf.WriteString("</g>\n")
}

// drawRectangle is §4.6's rectangle: four jittered corners, a fill
// polygon, and four sketchy edges when sketchy; a native rounded rect
// otherwise.
func drawRectangle(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, n Node) {
	if !th.Sketchy() {
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			numf(n.X), numf(n.Y), numf(n.W), numf(n.H), numf(th.CornerRadius),
			n.Fill, numf(th.FillOpacity), n.Stroke, numf(th.StrokeWidth))
		return
	}

	tl := jitterCorner(r, th, n.X, n.Y)
	tr := jitterCorner(r, th, n.X+n.W, n.Y)
	br := jitterCorner(r, th, n.X+n.W, n.Y+n.H)
	bl := jitterCorner(r, th, n.X, n.Y+n.H)
	corners := []point{tl, tr, br, bl}

	fillPolygon(buf, corners, n.Fill, th.FillOpacity)
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		edge(buf, r, th, a.x, a.y, b.x, b.y, n.Stroke)
	}
}

// drawEllipse is §4.6's ellipse: 8 jittered sample points on the
// parametric ellipse, joined by a cubic Bézier closed path with control
// points at ±0.4 of the segment, re-jittered; a native <ellipse>
// otherwise.
func drawEllipse(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, n Node) {
	cx, cy := n.X+n.W/2, n.Y+n.H/2
	rx, ry := n.W/2, n.H/2

	if !th.Sketchy() {
		fmt.Fprintf(buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			numf(cx), numf(cy), numf(rx), numf(ry), n.Fill, numf(th.FillOpacity), n.Stroke, numf(th.StrokeWidth))
		return
	}

	const samples = 8
	pts := make([]point, samples)
	for i := 0; i < samples; i++ {
		theta := 2 * math.Pi * float64(i) / samples
		x := cx + rx*math.Cos(theta)
		y := cy + ry*math.Sin(theta)
		pts[i] = jitterCorner(r, th, x, y)
	}

	var path bytes.Buffer
	fmt.Fprintf(&path, "M %s %s ", numf(pts[0].x), numf(pts[0].y))
	for i := 0; i < samples; i++ {
		a, b := pts[i], pts[(i+1)%samples]
		c1x, c1y := rng.JitterPoint(r, a.x+(b.x-a.x)*0.4, a.y+(b.y-a.y)*0.4, th.JitterAmount)
		c2x, c2y := rng.JitterPoint(r, a.x+(b.x-a.x)*0.6, a.y+(b.y-a.y)*0.6, th.JitterAmount)
		fmt.Fprintf(&path, "C %s %s %s %s %s %s ", numf(c1x), numf(c1y), numf(c2x), numf(c2y), numf(b.x), numf(b.y))
	}
	path.WriteString("Z")

	fmt.Fprintf(buf, `<path d="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		path.String(), n.Fill, numf(th.FillOpacity), n.Stroke, numf(th.StrokeWidth))
	if th.DoubleStroke {
		fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-opacity="0.3"/>`+"\n",
			path.String(), n.Stroke, numf(th.StrokeWidth/2))
	}
}

// drawDiamond is §4.6's diamond: jittered top/right/bottom/left vertices.
func drawDiamond(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, n Node) {
	cx, cy := n.X+n.W/2, n.Y+n.H/2
	top := jitterCorner(r, th, cx, n.Y)
	right := jitterCorner(r, th, n.X+n.W, cy)
	bottom := jitterCorner(r, th, cx, n.Y+n.H)
	left := jitterCorner(r, th, n.X, cy)
	corners := []point{top, right, bottom, left}

	fillPolygon(buf, corners, n.Fill, th.FillOpacity)
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		edge(buf, r, th, a.x, a.y, b.x, b.y, n.Stroke)
	}
}

// drawCylinder is §4.6's cylinder: a rectangular body between two
// horizontal ellipses, drawn body → bottom ellipse → side verticals →
// top ellipse so the top ellipse occludes the body's top edge.
func drawCylinder(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, n Node) {
	ry := math.Min(15, n.H*0.15)
	cx := n.X + n.W/2
	rx := n.W / 2
	topCY := n.Y + ry
	botCY := n.Y + n.H - ry

	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="%s"/>`+"\n",
		numf(n.X), numf(topCY), numf(n.W), numf(botCY-topCY), n.Fill, numf(th.FillOpacity))
	fmt.Fprintf(buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		numf(cx), numf(botCY), numf(rx), numf(ry), n.Fill, numf(th.FillOpacity), n.Stroke, numf(th.StrokeWidth))

	edge(buf, r, th, n.X, topCY, n.X, botCY, n.Stroke)
	edge(buf, r, th, n.X+n.W, topCY, n.X+n.W, botCY, n.Stroke)

	fmt.Fprintf(buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		numf(cx), numf(topCY), numf(rx), numf(ry), n.Fill, numf(th.FillOpacity), n.Stroke, numf(th.StrokeWidth))
}

// drawCloud is §4.6's cloud: eight jittered anchor points around the
// box, joined by eight cubic Bézier segments with control points offset
// outward.
func drawCloud(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, n Node) {
	cx, cy := n.X+n.W/2, n.Y+n.H/2
	rx, ry := n.W/2, n.H/2

	const samples = 8
	pts := make([]point, samples)
	for i := 0; i < samples; i++ {
		theta := 2 * math.Pi * float64(i) / samples
		x := cx + rx*math.Cos(theta)
		y := cy + ry*math.Sin(theta)
		pts[i] = jitterCorner(r, th, x, y)
	}

	var path bytes.Buffer
	fmt.Fprintf(&path, "M %s %s ", numf(pts[0].x), numf(pts[0].y))
	for i := 0; i < samples; i++ {
		a, b := pts[i], pts[(i+1)%samples]
		mx, my := (a.x+b.x)/2, (a.y+b.y)/2
		outX, outY := mx+(mx-cx)*0.3, my+(my-cy)*0.3
		c1x, c1y := rng.JitterPoint(r, outX, outY, th.JitterAmount)
		fmt.Fprintf(&path, "C %s %s %s %s %s %s ", numf(c1x), numf(c1y), numf(c1x), numf(c1y), numf(b.x), numf(b.y))
	}
	path.WriteString("Z")

	fmt.Fprintf(buf, `<path d="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		path.String(), n.Fill, numf(th.FillOpacity), n.Stroke, numf(th.StrokeWidth))
	if th.DoubleStroke {
		fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-opacity="0.3"/>`+"\n",
			path.String(), n.Stroke, numf(th.StrokeWidth/2))
	}
}

// drawHexagon is §4.6's hexagon: 6 vertices with inset = width*0.25.
func drawHexagon(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, n Node) {
	inset := n.W * 0.25
	cy := n.Y + n.H/2
	corners := []point{
		jitterCorner(r, th, n.X+inset, n.Y),
		jitterCorner(r, th, n.X+n.W-inset, n.Y),
		jitterCorner(r, th, n.X+n.W, cy),
		jitterCorner(r, th, n.X+n.W-inset, n.Y+n.H),
		jitterCorner(r, th, n.X+inset, n.Y+n.H),
		jitterCorner(r, th, n.X, cy),
	}

	fillPolygon(buf, corners, n.Fill, th.FillOpacity)
	for i := 0; i < len(corners); i++ {
		a, b := corners[i], corners[(i+1)%len(corners)]
		edge(buf, r, th, a.x, a.y, b.x, b.y, n.Stroke)
	}
}

// drawParallelogram is §4.6's parallelogram: a 15-unit skew.
func drawParallelogram(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, n Node) {
	const skew = 15.0
	corners := []point{
		jitterCorner(r, th, n.X+skew, n.Y),
		jitterCorner(r, th, n.X+n.W, n.Y),
		jitterCorner(r, th, n.X+n.W-skew, n.Y+n.H),
		jitterCorner(r, th, n.X, n.Y+n.H),
	}

	fillPolygon(buf, corners, n.Fill, th.FillOpacity)
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		edge(buf, r, th, a.x, a.y, b.x, b.y, n.Stroke)
	}
}
