package engineconfig_test

import (
	"testing"

	"github.com/arlojames/sketchdiagram/pkg/engineconfig"
)

func TestDefaults_AreValid(t *testing.T) {
	d := engineconfig.Defaults()
	if err := d.Validate(); err != nil {
		t.Fatalf("built-in defaults should validate, got %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	opts, err := engineconfig.Load([]byte(`
default_theme = "clean"
default_png = true
png_scale = 3.0
layout_backend = "graphviz"
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.DefaultTheme != "clean" || !opts.DefaultPNG || opts.PNGScale != 3.0 || opts.LayoutBackend != engineconfig.BackendGraphviz {
		t.Errorf("unexpected options after load: %+v", opts)
	}
}

func TestLoad_RejectsUnknownTheme(t *testing.T) {
	_, err := engineconfig.Load([]byte(`default_theme = "wireframe"`))
	if err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestLoad_RejectsNonPositiveScale(t *testing.T) {
	_, err := engineconfig.Load([]byte(`png_scale = 0`))
	if err == nil {
		t.Error("expected an error for a non-positive png_scale")
	}
}
