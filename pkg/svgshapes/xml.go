// Package svgshapes draws the seven flow-diagram node shapes (and their
// labels) directly into an output buffer, sketchy or clean depending on
// the active theme. It writes SVG markup with bytes.Buffer and
// fmt.Fprintf rather than building an intermediate DOM, the same
// direct-to-buffer style used throughout this codebase's rendering
// layer.
package svgshapes

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// EscapeXML escapes &, <, >, \", ' for safe inclusion in attribute
// values and text nodes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// numf formats a coordinate to one decimal place, per the output
// format's determinism requirement (toFixed(1)).
func numf(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

const maxCharsPerLine = 18

// WrapLabel greedily wraps label into lines of at most maxCharsPerLine
// characters once its total length exceeds 20, splitting on whitespace.
// A single word longer than maxCharsPerLine is not broken and stays on
// a line of its own.
func WrapLabel(label string) []string {
	if len(label) <= 20 {
		return []string{label}
	}
	words := strings.Fields(label)
	var lines []string
	var cur string
	for _, w := range words {
		candidate := w
		if cur != "" {
			candidate = cur + " " + w
		}
		if len(candidate) > maxCharsPerLine && cur != "" {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = candidate
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		lines = []string{label}
	}
	return lines
}

// DrawLabel centres wrapped label text at (cx, cy) using tspan lines
// spaced by 1.3*fontSize, with the starting line shifted up by half the
// total text block height so the block as a whole stays centred.
func DrawLabel(buf *bytes.Buffer, cx, cy, fontSize float64, fontFamily, color, label string) {
	lines := WrapLabel(label)
	lineHeight := fontSize * 1.3
	totalHeight := lineHeight * float64(len(lines)-1)
	startY := cy - totalHeight/2

	fmt.Fprintf(buf, `<text x="%s" y="%s" font-size="%s" font-family="%s" fill="%s" text-anchor="middle">`,
		numf(cx), numf(startY), numf(fontSize), fontFamily, color)
	for i, line := range lines {
		dy := "0"
		if i > 0 {
			dy = numf(lineHeight)
		}
		fmt.Fprintf(buf, `<tspan x="%s" dy="%s">%s</tspan>`, numf(cx), dy, EscapeXML(line))
	}
	buf.WriteString("</text>\n")
}
