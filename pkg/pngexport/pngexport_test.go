package pngexport_test

import (
	"testing"

	"github.com/arlojames/sketchdiagram/pkg/pngexport"
	"github.com/arlojames/sketchdiagram/pkg/sketcherr"
)

func TestRasterize_MissingBinaryReportsCodePNG(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := pngexport.Rasterize([]byte("<svg/>"), 2.0)
	if err == nil {
		t.Fatal("expected an error when rsvg-convert is not on PATH")
	}
	if !sketcherr.Is(err, sketcherr.CodePNG) {
		t.Errorf("expected CodePNG, got %v", sketcherr.GetCode(err))
	}
}
