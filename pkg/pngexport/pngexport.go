// Package pngexport is the secondary "SVG→PNG service" capability: a
// thin, synchronous wrapper over the rsvg-convert binary.
package pngexport

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/arlojames/sketchdiagram/pkg/sketcherr"
)

// Rasterize converts svg to PNG at the given scale factor via
// rsvg-convert. Failure is reported as a CodePNG error; the caller's SVG
// remains available regardless (§7: PngError does not discard the SVG).
func Rasterize(svg []byte, scale float64) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, sketcherr.Wrap(sketcherr.CodePNG, err,
			"PNG export requires librsvg (install rsvg-convert: brew install librsvg, or apt install librsvg2-bin)")
	}

	cmd := exec.Command("rsvg-convert", "-f", "png", "-z", fmt.Sprintf("%.2f", scale))
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, sketcherr.Wrap(sketcherr.CodePNG, err, "rsvg-convert failed: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
