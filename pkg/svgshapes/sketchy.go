package svgshapes

import (
	"bytes"
	"fmt"

	"github.com/arlojames/sketchdiagram/pkg/rng"
	"github.com/arlojames/sketchdiagram/pkg/themes"
)

// sketchyLine draws one hand-drawn segment between two already-placed
// endpoints: a quadratic Bézier through a freshly jittered midpoint, per
// §4.6. When th.DoubleStroke, a second thinner, fainter pass is drawn
// offset by its own independent midpoint jitter.
func sketchyLine(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, x1, y1, x2, y2 float64, stroke string) {
	drawPass(buf, r, th, x1, y1, x2, y2, stroke, th.StrokeWidth, 1.0)
	if th.DoubleStroke {
		drawPass(buf, r, th, x1, y1, x2, y2, stroke, th.StrokeWidth/2, 0.3)
	}
}

func drawPass(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, x1, y1, x2, y2 float64, stroke string, width, opacity float64) {
	mx, my := rng.JitterPoint(r, (x1+x2)/2, (y1+y2)/2, th.JitterAmount)
	fmt.Fprintf(buf,
		`<path d="M %s %s Q %s %s %s %s" stroke="%s" stroke-width="%s" stroke-opacity="%s" fill="none"/>`+"\n",
		numf(x1), numf(y1), numf(mx), numf(my), numf(x2), numf(y2), stroke, numf(width), numf(opacity))
}

// cleanLine draws a single straight segment with no jitter, used when
// the active theme is not sketchy (§4.6: "native primitives are used").
func cleanLine(buf *bytes.Buffer, th themes.Theme, x1, y1, x2, y2 float64, stroke string) {
	fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		numf(x1), numf(y1), numf(x2), numf(y2), stroke, numf(th.StrokeWidth))
}

// edge draws one boundary segment, sketchy or clean depending on theme.
func edge(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, x1, y1, x2, y2 float64, stroke string) {
	if th.Sketchy() {
		sketchyLine(buf, r, th, x1, y1, x2, y2, stroke)
	} else {
		cleanLine(buf, th, x1, y1, x2, y2, stroke)
	}
}

type point struct{ x, y float64 }

// jitterCorner jitters a corner point when the theme is sketchy, and
// passes it through unchanged otherwise.
func jitterCorner(r *rng.RNG, th themes.Theme, x, y float64) point {
	if !th.Sketchy() {
		return point{x, y}
	}
	jx, jy := rng.JitterPoint(r, x, y, th.JitterAmount)
	return point{jx, jy}
}

func fillPolygon(buf *bytes.Buffer, pts []point, fill string, opacity float64) {
	buf.WriteString(`<polygon points="`)
	for i, p := range pts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%s,%s", numf(p.x), numf(p.y))
	}
	fmt.Fprintf(buf, `" fill="%s" fill-opacity="%s"/>`+"\n", fill, numf(opacity))
}
