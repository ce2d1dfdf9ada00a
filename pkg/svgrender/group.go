package svgrender

import (
	"bytes"
	"fmt"

	"github.com/arlojames/sketchdiagram/pkg/flowlayout"
	"github.com/arlojames/sketchdiagram/pkg/rng"
	"github.com/arlojames/sketchdiagram/pkg/svgshapes"
	"github.com/arlojames/sketchdiagram/pkg/themes"
)

const groupLabelFontSize = 13.0

// DrawGroup is §4.8's dashed group container: a "6,4" dashed rectangle
// honouring theme jitter (four sketchy dashed edges) or a native rect
// with cornerRadius, plus a left-anchored label below the top-left
// corner.
func DrawGroup(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, g flowlayout.LayoutGroup) {
	stroke := g.Color
	if stroke == "" {
		stroke = "#AAAAAA"
	}
	const fill = "#F5F5F5"

	fmt.Fprintf(buf, `<g class="group" data-id="%s">`+"\n", svgshapes.EscapeXML(g.ID))

	if th.Sketchy() {
		corners := [][2]float64{
			{g.X, g.Y}, {g.X + g.Width, g.Y},
			{g.X + g.Width, g.Y + g.Height}, {g.X, g.Y + g.Height},
		}
		for i := 0; i < 4; i++ {
			a, b := corners[i], corners[(i+1)%4]
			sketchySegment(buf, r, th, a[0], a[1], b[0], b[1], stroke, "6,4")
		}
	} else {
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s" fill-opacity="0.05" stroke="%s" stroke-dasharray="6,4"/>`+"\n",
			numf(g.X), numf(g.Y), numf(g.Width), numf(g.Height), numf(th.CornerRadius), fill, stroke)
	}

	if g.Label != "" {
		fmt.Fprintf(buf, `<text x="%s" y="%s" font-size="%s" font-family="%s">%s</text>`+"\n",
			numf(g.X+12), numf(g.Y+14), numf(groupLabelFontSize), th.FontFamily, svgshapes.EscapeXML(g.Label))
	}

	buf.WriteString("</g>\n")
}
