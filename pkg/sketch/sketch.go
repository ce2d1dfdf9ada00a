// Package sketch exposes the engine's one public operation, Generate,
// orchestrating parse → layout → render → optional rasterisation, with
// per-stage timing reported to an optional structured logger. There is
// no caching: the core here does no external I/O, so there is nothing
// to cache.
package sketch

import (
	"context"
	"io"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/engineconfig"
	"github.com/arlojames/sketchdiagram/pkg/flowlayout"
	flowgraphviz "github.com/arlojames/sketchdiagram/pkg/flowlayout/graphviz"
	flowinternal "github.com/arlojames/sketchdiagram/pkg/flowlayout/internal"
	"github.com/arlojames/sketchdiagram/pkg/pngexport"
	"github.com/arlojames/sketchdiagram/pkg/rng"
	"github.com/arlojames/sketchdiagram/pkg/seqlayout"
	"github.com/arlojames/sketchdiagram/pkg/sketcherr"
	"github.com/arlojames/sketchdiagram/pkg/svgrender"
	"github.com/arlojames/sketchdiagram/pkg/themes"
)

// Result is generate's output: the rendered SVG, and PNG bytes when
// requested.
type Result struct {
	SVG []byte
	PNG []byte
}

// Stats carries per-stage timings for callers that want to log them.
type Stats struct {
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
	PNGTime    time.Duration
}

type options struct {
	png      bool
	pngScale float64
	theme    diagram.Style
	themeSet bool
	backend  engineconfig.Backend
	logger   *charmlog.Logger
}

// Option configures a Generate call.
type Option func(*options)

// WithPNG requests PNG rasterisation in addition to SVG.
func WithPNG(enabled bool) Option { return func(o *options) { o.png = enabled } }

// WithPNGScale overrides the PNG rasterisation scale factor.
func WithPNGScale(scale float64) Option { return func(o *options) { o.pngScale = scale } }

// WithTheme overrides the visual theme the input diagram specifies.
func WithTheme(style diagram.Style) Option {
	return func(o *options) { o.theme = style; o.themeSet = true }
}

// WithConfig seeds every option from an engineconfig.Options, so callers
// can apply file-based defaults before layering call-specific overrides.
func WithConfig(cfg engineconfig.Options) Option {
	return func(o *options) {
		o.png = cfg.DefaultPNG
		o.pngScale = cfg.PNGScale
		o.theme = cfg.DefaultTheme
		o.themeSet = true
		o.backend = cfg.LayoutBackend
	}
}

// WithLogger attaches a structured logger that receives one Info line
// per stage.
func WithLogger(l *charmlog.Logger) Option { return func(o *options) { o.logger = l } }

// WithBackend overrides the flow layout backend.
func WithBackend(backend engineconfig.Backend) Option {
	return func(o *options) { o.backend = backend }
}

func newOptions(opts ...Option) options {
	o := options{pngScale: 2.0, backend: engineconfig.BackendInternal}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Generate is the engine's single public operation (§6): it parses raw
// input, computes the appropriate layout, renders SVG, and optionally
// rasterises to PNG.
func Generate(ctx context.Context, raw []byte, opts ...Option) (Result, error) {
	o := newOptions(opts...)
	logger := o.logger
	if logger == nil {
		logger = charmlog.NewWithOptions(io.Discard, charmlog.Options{Level: charmlog.FatalLevel})
	}

	parseStart := time.Now()
	def, err := diagram.Parse(raw)
	if err != nil {
		return Result{}, err
	}
	logger.Info("parsed diagram", "kind", def.Kind(), "duration", time.Since(parseStart))

	var svg []byte
	layoutStart := time.Now()
	switch d := def.(type) {
	case *diagram.FlowDiagram:
		style := d.Style
		if o.themeSet {
			style = o.theme
		}
		svc := layoutService(o.backend)
		res, err := flowlayout.Layout(ctx, d, svc)
		if err != nil {
			return Result{}, err
		}
		logger.Info("computed flow layout", "nodes", len(res.Nodes), "edges", len(res.Edges), "duration", time.Since(layoutStart))

		renderStart := time.Now()
		r := rng.New()
		svg = svgrender.Flow(r, themes.Get(style), d.Title, res)
		logger.Info("rendered svg", "bytes", len(svg), "duration", time.Since(renderStart))

	case *diagram.SequenceDiagram:
		style := d.Style
		if o.themeSet {
			style = o.theme
		}
		res := seqlayout.Layout(d)
		logger.Info("computed sequence layout", "participants", len(res.Participants), "messages", len(res.Messages), "duration", time.Since(layoutStart))

		renderStart := time.Now()
		r := rng.New()
		svg = svgrender.Sequence(r, themes.Get(style), d.Title, d, res)
		logger.Info("rendered svg", "bytes", len(svg), "duration", time.Since(renderStart))

	default:
		return Result{}, sketcherr.New(sketcherr.CodeSchema, "unknown diagram kind %v", def.Kind())
	}

	result := Result{SVG: svg}
	if o.png {
		pngStart := time.Now()
		scale := o.pngScale
		if scale == 0 {
			scale = 2.0
		}
		png, err := pngexport.Rasterize(svg, scale)
		if err != nil {
			return result, err
		}
		result.PNG = png
		logger.Info("rasterised png", "bytes", len(png), "duration", time.Since(pngStart))
	}

	return result, nil
}

func layoutService(backend engineconfig.Backend) flowlayout.LayoutService {
	if backend == engineconfig.BackendGraphviz {
		return flowgraphviz.Service{}
	}
	return flowinternal.Service{}
}
