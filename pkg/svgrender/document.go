package svgrender

import (
	"bytes"
	"fmt"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/flowlayout"
	"github.com/arlojames/sketchdiagram/pkg/rng"
	"github.com/arlojames/sketchdiagram/pkg/seqlayout"
	"github.com/arlojames/sketchdiagram/pkg/svgshapes"
	"github.com/arlojames/sketchdiagram/pkg/themes"
)

const titleHeight = 40.0

// Flow renders a complete flow-diagram SVG document, per §4.10. r must
// already have been freshly constructed (or Reset) so that identical
// input yields byte-identical output.
func Flow(r *rng.RNG, th themes.Theme, title string, res flowlayout.Result) []byte {
	var content bytes.Buffer
	for _, g := range res.Groups {
		DrawGroup(&content, r, th, g)
	}
	for i, n := range res.Nodes {
		svgshapes.Draw(&content, r, th, svgshapes.Node{
			ID: n.ID, Label: n.Label, Shape: n.Shape,
			X: n.X, Y: n.Y, W: n.Width, H: n.Height,
			Fill:      themes.FillColor(n.Color, i),
			Stroke:    themes.StrokeColor(themes.FillColor(n.Color, i)),
			TextColor: themes.TextColor(n.TextColor),
		})
	}
	for _, e := range res.Edges {
		DrawEdge(&content, r, th, e)
	}

	return assemble(title, res.Width, res.Height, content.Bytes())
}

// Sequence renders a complete sequence-diagram SVG document, per §4.9
// and §4.10.
func Sequence(r *rng.RNG, th themes.Theme, title string, d *diagram.SequenceDiagram, res seqlayout.Result) []byte {
	var content bytes.Buffer

	for i, p := range res.Participants {
		DrawParticipantBox(&content, th, p, i, res.LifelineTop)
		DrawParticipantBox(&content, th, p, i, res.LifelineBot)
	}
	for _, p := range res.Participants {
		DrawLifeline(&content, r, th, p, res.LifelineTop, res.LifelineBot)
	}

	xOf := make(map[string]float64, len(res.Participants))
	for _, p := range res.Participants {
		xOf[p.ID] = p.X
	}
	for _, m := range res.Messages {
		fromX, fok := xOf[m.From]
		toX, tok := xOf[m.To]
		if !fok || !tok {
			continue
		}
		DrawMessage(&content, r, th, m, fromX, toX)
	}

	return assemble(title, res.Width, res.Height, content.Bytes())
}

// assemble wraps rendered content in the §4.10 document shell: a white
// background, an optional centred title, and a translate(0,40) wrapper
// when a title grows the canvas.
func assemble(title string, width, height float64, content []byte) []byte {
	totalHeight := height
	if title != "" {
		totalHeight += titleHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		numf(width), numf(totalHeight), numf(width), numf(totalHeight))
	fmt.Fprintf(&buf, `<rect x="0" y="0" width="%s" height="%s" fill="#ffffff"/>`+"\n", numf(width), numf(totalHeight))

	if title != "" {
		fmt.Fprintf(&buf, `<text x="%s" y="24" font-size="18" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
			numf(width/2), svgshapes.EscapeXML(title))
		buf.WriteString(`<g transform="translate(0, 40)">` + "\n")
		buf.Write(content)
		buf.WriteString("</g>\n")
	} else {
		buf.Write(content)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
