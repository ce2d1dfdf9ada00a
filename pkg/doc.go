// Package pkg provides the core libraries for the diagram sketch-rendering
// engine: schema parsing, flow/sequence layout, and seeded hand-drawn SVG
// rendering.
//
// # Overview
//
// The engine turns a declarative flow or sequence diagram description into
// a self-contained SVG document in one of three visual themes (hand-drawn,
// clean, minimal). The pipeline runs leaves-first:
//
//	raw input
//	    ↓
//	diagram.Parse                        (schema validation + defaulting)
//	    ↓
//	flowlayout.Layout / seqlayout.Layout  (positioned nodes/edges/groups)
//	    ↓
//	svgrender.Flow / svgrender.Sequence   (seeded sketch rendering)
//	    ↓
//	pngexport.Rasterize                  (optional SVG→PNG)
//
// # Quick start
//
//	res, err := sketch.Generate(ctx, rawJSON, sketch.WithTheme(diagram.StyleClean))
//	if err != nil {
//	    var e *sketcherr.Error
//	    if errors.As(err, &e) {
//	        // e.Code is one of sketcherr.CodeSchema/CodeLayout/CodePNG
//	    }
//	}
//	os.WriteFile("out.svg", res.SVG, 0o644)
//
// # Packages
//
//   - [diagram]: the Flow/Sequence tagged-union schema and its parser.
//   - [flowlayout]: hierarchical graph construction, the LayoutService
//     collaborator interface, and coordinate absolutisation/padding.
//   - [flowlayout/internal]: the pure-Go default layering backend.
//   - [flowlayout/graphviz]: the goccy/go-graphviz backed backend.
//   - [seqlayout]: pure arithmetic placement for sequence diagrams.
//   - [rng]: the deterministic Lehmer generator behind every jittered draw.
//   - [themes]: the three theme knob sets, palette, and colour helpers.
//   - [svgshapes]: the seven node-shape renderers and label wrapping.
//   - [svgrender]: edge/arrow/label, group, sequence, and document assembly.
//   - [pngexport]: the rsvg-convert SVG→PNG rasteriser.
//   - [engineconfig]: TOML-loaded engine defaults.
//   - [sketch]: the single exported Generate operation tying it all together.
//   - [sketcherr]: the structured Code/Error type returned by every stage.
//
// [diagram]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/diagram
// [flowlayout]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/flowlayout
// [flowlayout/internal]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/flowlayout/internal
// [flowlayout/graphviz]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/flowlayout/graphviz
// [seqlayout]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/seqlayout
// [rng]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/rng
// [themes]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/themes
// [svgshapes]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/svgshapes
// [svgrender]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/svgrender
// [pngexport]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/pngexport
// [engineconfig]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/engineconfig
// [sketch]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/sketch
// [sketcherr]: https://pkg.go.dev/github.com/arlojames/sketchdiagram/pkg/sketcherr
package pkg
