// Package engineconfig holds the engine's TOML-loaded defaults: which
// theme and flow-layout backend to use when a caller doesn't pin one,
// and the PNG export scale. Options are decoded from TOML via
// BurntSushi/toml over the built-in defaults and then validated.
package engineconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
)

// Backend selects which flowlayout.LayoutService implementation
// pkg/sketch wires in.
type Backend string

const (
	// BackendInternal is the pure-Go default layout backend.
	BackendInternal Backend = "internal"
	// BackendGraphviz is the goccy/go-graphviz backed backend.
	BackendGraphviz Backend = "graphviz"
)

// Options are the engine's tunable defaults.
type Options struct {
	DefaultTheme  diagram.Style `toml:"default_theme"`
	DefaultPNG    bool          `toml:"default_png"`
	PNGScale      float64       `toml:"png_scale"`
	LayoutBackend Backend       `toml:"layout_backend"`
}

// Defaults returns the built-in engine defaults: hand-drawn theme, no
// PNG, scale 2, the pure-Go layout backend.
func Defaults() Options {
	return Options{
		DefaultTheme:  diagram.StyleHandDrawn,
		DefaultPNG:    false,
		PNGScale:      2.0,
		LayoutBackend: BackendInternal,
	}
}

// Load parses TOML bytes over Defaults() and validates the result.
func Load(data []byte) (Options, error) {
	opts := Defaults()
	if _, err := toml.Decode(string(data), &opts); err != nil {
		return Options{}, fmt.Errorf("parsing engine config: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("validating engine config: %w", err)
	}
	return opts, nil
}

// Validate checks every field is one of its allowed values.
func (o *Options) Validate() error {
	switch o.DefaultTheme {
	case diagram.StyleHandDrawn, diagram.StyleClean, diagram.StyleMinimal:
	default:
		return fmt.Errorf("default_theme: unknown theme %q", o.DefaultTheme)
	}
	switch o.LayoutBackend {
	case BackendInternal, BackendGraphviz:
	default:
		return fmt.Errorf("layout_backend: unknown backend %q", o.LayoutBackend)
	}
	if o.PNGScale <= 0 {
		return fmt.Errorf("png_scale: must be positive, got %v", o.PNGScale)
	}
	return nil
}
