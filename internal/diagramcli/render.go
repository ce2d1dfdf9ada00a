package diagramcli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/engineconfig"
	"github.com/arlojames/sketchdiagram/pkg/sketch"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

type renderOpts struct {
	output     string
	theme      string
	png        bool
	pngScale   float64
	backend    string
	configPath string
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{pngScale: 2.0}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram description to SVG (and optionally PNG)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts, cmd.Flags().Changed)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (default: derived from input)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "visual theme override: hand-drawn, clean, minimal")
	cmd.Flags().BoolVar(&opts.png, "png", false, "also rasterise to PNG (requires rsvg-convert)")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "PNG rasterisation scale factor")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "flow layout backend: internal (default), graphviz")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a TOML engine config file")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts, flagChanged func(string) bool) error {
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run_id", runID)
	logger.Infof("Rendering %s", input)

	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	genOpts, err := buildGenerateOpts(opts, flagChanged, logger)
	if err != nil {
		return err
	}

	res, err := sketch.Generate(ctx, raw, genOpts...)
	if err != nil {
		return err
	}
	logger.Debugf("Generated SVG: %d bytes", len(res.SVG))

	svgPath := opts.output
	if svgPath == "" {
		svgPath = basePath(input) + ".svg"
	} else if ext := filepath.Ext(svgPath); ext == ".png" {
		svgPath = strings.TrimSuffix(svgPath, ext) + ".svg"
	}
	if err := os.WriteFile(svgPath, res.SVG, 0o644); err != nil {
		return err
	}
	announce(svgPath)

	if res.PNG != nil {
		pngPath := strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + ".png"
		if err := os.WriteFile(pngPath, res.PNG, 0o644); err != nil {
			return err
		}
		announce(pngPath)
	}

	return nil
}

func announce(path string) {
	fmt.Println(successStyle.Render("✓") + " Generated " + path)
}

func basePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// buildGenerateOpts turns CLI flags into sketch.Option values. A TOML
// config file, if given, is applied first; explicit flags only override
// it when the user actually set them, so an unset --png-scale doesn't
// stomp a value the config file provided.
func buildGenerateOpts(opts *renderOpts, flagChanged func(string) bool, logger *log.Logger) ([]sketch.Option, error) {
	var genOpts []sketch.Option

	if opts.configPath != "" {
		data, err := os.ReadFile(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		cfg, err := engineconfig.Load(data)
		if err != nil {
			return nil, err
		}
		genOpts = append(genOpts, sketch.WithConfig(cfg))
	}

	if opts.theme != "" {
		style, err := parseStyle(opts.theme)
		if err != nil {
			return nil, err
		}
		genOpts = append(genOpts, sketch.WithTheme(style))
	}

	switch opts.backend {
	case "":
	case "internal":
		genOpts = append(genOpts, sketch.WithBackend(engineconfig.BackendInternal))
	case "graphviz":
		genOpts = append(genOpts, sketch.WithBackend(engineconfig.BackendGraphviz))
	default:
		return nil, fmt.Errorf("unknown backend %q (want internal or graphviz)", opts.backend)
	}

	if flagChanged("png") {
		genOpts = append(genOpts, sketch.WithPNG(opts.png))
	}
	if flagChanged("png-scale") {
		genOpts = append(genOpts, sketch.WithPNGScale(opts.pngScale))
	}
	genOpts = append(genOpts, sketch.WithLogger(logger))

	return genOpts, nil
}

func parseStyle(s string) (diagram.Style, error) {
	switch diagram.Style(s) {
	case diagram.StyleHandDrawn, diagram.StyleClean, diagram.StyleMinimal:
		return diagram.Style(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q (want hand-drawn, clean, or minimal)", s)
	}
}
