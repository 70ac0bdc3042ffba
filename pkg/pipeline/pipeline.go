// Package pipeline turns declarative chart specs into rendered artifacts.
//
// This package implements the spec → frame → document → artifact pipeline
// shared by the CLI and the HTTP API, so that both entry points produce
// byte-identical output for the same spec.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: read a [Spec] from TOML or JSON and apply defaults
//  2. Build: configure a [chart.Cartesian] frame and its plot area
//  3. Render: flush a scene document, serialise it to SVG and convert it to
//     the requested formats
//
// # Usage
//
//	spec, err := pipeline.LoadSpec("revenue.toml")
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, spec, pipeline.Options{Formats: []string{"svg", "png"}})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// [chart.Cartesian]: github.com/matzehuels/cartesian/pkg/chart.Cartesian
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cartesian/pkg/cache"
	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/render"
	"github.com/matzehuels/cartesian/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 600.0

	// DefaultFontSize is the default pixel size of 1em.
	DefaultFontSize = scene.DefaultFontSize
)

// Format constants for output formats.
const (
	FormatSVG = render.FormatSVG
	FormatPNG = render.FormatPNG
	FormatPDF = render.FormatPDF
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options controls how a spec is rendered. The spec itself says what is
// drawn; options only say in which formats.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG scale factor
	Refresh bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SpecHash is the content hash of the spec with defaults applied.
	SpecHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount int
	PointCount  int
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults applies default formats, PNG scale and logger.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = render.DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks the options.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// ArtifactKeyOpts returns cache key options for one output format of s.
func (o *Options) ArtifactKeyOpts(s *Spec, format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Width: s.Width, Height: s.Height}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

func hash(data []byte) string { return cache.Hash(data) }

func (s Stats) String() string {
	return fmt.Sprintf("%d series, %d points", s.SeriesCount, s.PointCount)
}
