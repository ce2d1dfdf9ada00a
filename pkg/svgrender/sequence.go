package svgrender

import (
	"bytes"
	"fmt"

	"github.com/arlojames/sketchdiagram/pkg/flowlayout"
	"github.com/arlojames/sketchdiagram/pkg/rng"
	"github.com/arlojames/sketchdiagram/pkg/seqlayout"
	"github.com/arlojames/sketchdiagram/pkg/svgshapes"
	"github.com/arlojames/sketchdiagram/pkg/themes"
)

const (
	participantFontSize = 13.0
	messageFontSize     = 12.0
	selfLoopWidth       = 30.0
	selfLoopHeight      = 20.0
)

// DrawLifeline is §4.9's dashed vertical line under a participant.
func DrawLifeline(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, p seqlayout.Participant, topY, bottomY float64) {
	const stroke = "#999999"
	if th.Sketchy() {
		sketchySegment(buf, r, th, p.X, topY+40, p.X, bottomY, stroke, "6,4")
	} else {
		fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-dasharray="6,4"/>`+"\n",
			numf(p.X), numf(topY+40), numf(p.X), numf(bottomY), stroke)
	}
}

// DrawParticipantBox draws one participant's box at y (either topY or
// bottomY, per §4.9 — callers draw both).
func DrawParticipantBox(buf *bytes.Buffer, th themes.Theme, p seqlayout.Participant, index int, y float64) {
	fill := themes.FillColor(p.Color, index)
	stroke := themes.StrokeColor(fill)

	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		numf(p.X-p.Width/2), numf(y), numf(p.Width), numf(seqlayout.ParticipantBoxHeight),
		numf(th.CornerRadius), fill, numf(th.FillOpacity), stroke, numf(th.StrokeWidth))
	svgshapes.DrawLabel(buf, p.X, y+seqlayout.ParticipantBoxHeight/2, participantFontSize, th.FontFamily, themes.TextColor(""), p.Label)
}

// DrawMessage is §4.9's message arrow: a horizontal line between
// participants, or a right-going loop for a self-message.
func DrawMessage(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, m seqlayout.Message, fromX, toX float64) {
	stroke := m.Color
	if stroke == "" {
		stroke = "#333333"
	}

	if m.Self {
		drawSelfMessage(buf, r, th, m, fromX, stroke)
		return
	}

	if th.Sketchy() {
		sketchySegment(buf, r, th, fromX, m.Y, toX, m.Y, stroke, DashArray(m.Style))
	} else {
		fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-dasharray="%s"/>`+"\n",
			numf(fromX), numf(m.Y), numf(toX), numf(m.Y), stroke, DashArray(m.Style))
	}
	drawArrowhead(buf, r, th, flowlayout.Point{X: fromX, Y: m.Y}, flowlayout.Point{X: toX, Y: m.Y}, stroke)

	if m.Label != "" {
		drawCenteredMessageLabel(buf, (fromX+toX)/2, m.Y-8, m.Label)
	}
}

func drawSelfMessage(buf *bytes.Buffer, r *rng.RNG, th themes.Theme, m seqlayout.Message, x float64, stroke string) {
	topY := m.Y
	botY := m.Y + selfLoopHeight
	rightX := x + selfLoopWidth

	pts := [][2]float64{{x, topY}, {rightX, topY}, {rightX, botY}, {x, botY}}
	for i := 0; i < 3; i++ {
		if th.Sketchy() {
			sketchySegment(buf, r, th, pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1], stroke, DashArray(m.Style))
		} else {
			fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
				numf(pts[i][0]), numf(pts[i][1]), numf(pts[i+1][0]), numf(pts[i+1][1]), stroke)
		}
	}
	drawArrowhead(buf, r, th, flowlayout.Point{X: rightX, Y: botY}, flowlayout.Point{X: x, Y: botY}, stroke)

	if m.Label != "" {
		fmt.Fprintf(buf, `<text x="%s" y="%s" font-size="%s" text-anchor="start">%s</text>`+"\n",
			numf(rightX+4), numf((topY+botY)/2), numf(messageFontSize), svgshapes.EscapeXML(m.Label))
	}
}

func drawCenteredMessageLabel(buf *bytes.Buffer, cx, cy float64, label string) {
	w := max(float64(len(label))*7+12, 30)
	const h = 20.0
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="3" fill="#ffffff" fill-opacity="0.9"/>`+"\n",
		numf(cx-w/2), numf(cy-h/2), numf(w), numf(h))
	fmt.Fprintf(buf, `<text x="%s" y="%s" font-size="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		numf(cx), numf(cy), numf(messageFontSize), svgshapes.EscapeXML(label))
}
