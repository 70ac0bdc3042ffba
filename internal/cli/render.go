package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/pipeline"
	"github.com/matzehuels/cartesian/pkg/render"
)

// stdoutPath selects standard output as the render destination.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format), base path (multiple) or "-"
	formats []string // output formats: "svg", "pdf", "png"
	width   float64  // viewport width override in pixels
	height  float64  // viewport height override in pixels
	scale   float64  // PNG scale factor
	noCache bool     // skip the artifact cache entirely
	refresh bool     // re-render and overwrite cached artifacts
}

// renderCommand creates the render command for turning chart specs into files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:               "render [spec]",
		Short:             "Render a chart spec (TOML or JSON) to SVG, PNG or PDF",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSpecFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			opts.formats = cfg.Render.Formats
			if formatsStr != "" {
				opts.formats = parseFormats(formatsStr)
			}
			if opts.scale == 0 {
				opts.scale = cfg.Render.Scale
			}
			if err := validateRenderOpts(&opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "override the spec width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "override the spec height")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor (default from settings)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if artifacts are cached")

	return cmd
}

// validateRenderOpts checks formats and the output destination.
func validateRenderOpts(opts *renderOpts) error {
	if err := pipeline.ValidateFormats(opts.formats); err != nil {
		return err
	}
	if opts.output == stdoutPath && len(opts.formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(opts.formats))
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, .png), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file an artifact is written to. A single format
// written to an explicit file keeps that name.
func outputPath(output, input, format string, single bool) string {
	if single && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// runRender loads the spec, renders it through the cached pipeline and
// writes one file per format.
func (c *CLI) runRender(ctx context.Context, cfg Config, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Debugf("Rendering %s", input)

	spec, err := pipeline.LoadSpec(input)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		spec.Width = opts.width
	}
	if opts.height > 0 {
		spec.Height = opts.height
	}

	runner, err := c.newRunner(cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	toStdout := opts.output == stdoutPath
	needsConverter := slices.ContainsFunc(opts.formats, func(f string) bool { return f != pipeline.FormatSVG })
	if needsConverter && !render.Available() && !toStdout {
		printWarning("PNG and PDF output need rsvg-convert (librsvg)")
	}

	var spinner *Spinner
	if needsConverter && !toStdout {
		spinner = newSpinner(ctx, os.Stderr, "Converting "+strings.Join(opts.formats, ", "))
		spinner.Start()
	}
	result, err := runner.Execute(ctx, spec, pipeline.Options{
		Formats: opts.formats,
		Scale:   opts.scale,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	if toStdout {
		_, err := stdout.Write(result.Artifacts[opts.formats[0]])
		return err
	}

	var paths []string
	for _, format := range opts.formats {
		path := outputPath(opts.output, input, format, len(opts.formats) == 1)
		if err := writeFile(path, result.Artifacts[format]); err != nil {
			return err
		}
		paths = append(paths, path)
	}
	prog.done(fmt.Sprintf("Rendered %s", input))

	printSuccess("Rendered %s", filepath.Base(input))
	printStats(result.Stats, result.CacheHit)
	for _, p := range paths {
		printFile(p)
	}
	printNextStep("Browse the chart regions", fmt.Sprintf("%s inspect %s", appName, input))
	return nil
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
