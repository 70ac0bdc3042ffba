package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/series"
)

// Spec formats.
const (
	SpecTOML = "toml"
	SpecJSON = "json"
)

// Scale kinds.
const (
	ScaleLinear   = "linear"
	ScaleLog      = "log"
	ScaleIdentity = "identity"
)

// Series kinds.
const (
	SeriesLine    = "line"
	SeriesScatter = "scatter"
)

// Spec describes a chart declaratively. It is what the CLI reads from disk
// and what the HTTP API accepts as a request body.
type Spec struct {
	Title     string       `json:"title,omitempty" toml:"title"`
	Width     float64      `json:"width,omitempty" toml:"width"`
	Height    float64      `json:"height,omitempty" toml:"height"`
	FontSize  float64      `json:"font_size,omitempty" toml:"font_size"`
	Gridlines bool         `json:"gridlines,omitempty" toml:"gridlines"`
	X         AxisSpec     `json:"x" toml:"x"`
	Y         AxisSpec     `json:"y" toml:"y"`
	Series    []SeriesSpec `json:"series" toml:"series"`
}

// AxisSpec configures one dimension: its axis, label and scale.
type AxisSpec struct {
	Label  string `json:"label,omitempty" toml:"label"`
	Orient string `json:"orient,omitempty" toml:"orient"`

	Scale  string    `json:"scale,omitempty" toml:"scale"`
	Domain []float64 `json:"domain,omitempty" toml:"domain"` // [lo, hi]; data extent when empty
	Nice   bool      `json:"nice,omitempty" toml:"nice"`
	Clamp  bool      `json:"clamp,omitempty" toml:"clamp"`

	Ticks      int       `json:"ticks,omitempty" toml:"ticks"`
	TickFormat string    `json:"tick_format,omitempty" toml:"tick_format"` // printf verb, e.g. "%.1f"
	TickValues []float64 `json:"tick_values,omitempty" toml:"tick_values"`
	TickSize   *float64  `json:"tick_size,omitempty" toml:"tick_size"`
}

// SeriesSpec is one data series drawn in the plot area.
type SeriesSpec struct {
	Kind        string         `json:"kind,omitempty" toml:"kind"`
	Name        string         `json:"name,omitempty" toml:"name"`
	Stroke      string         `json:"stroke,omitempty" toml:"stroke"`
	Fill        string         `json:"fill,omitempty" toml:"fill"`
	StrokeWidth float64        `json:"stroke_width,omitempty" toml:"stroke_width"`
	Radius      float64        `json:"radius,omitempty" toml:"radius"`
	Points      []series.Point `json:"points" toml:"points"`
}

// DecodeSpec decodes a spec in the given format (toml or json).
func DecodeSpec(data []byte, format string) (Spec, error) {
	var s Spec
	switch format {
	case SpecTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
			return Spec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode toml spec")
		}
	case SpecJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Spec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode json spec")
		}
	default:
		return Spec{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported spec format %q (must be toml or json)", format)
	}
	return s, nil
}

// LoadSpec reads a spec file. The format follows the file extension.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Spec{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec %s", path)
	}
	if err != nil {
		return Spec{}, err
	}
	return DecodeSpec(data, SpecFormat(path))
}

// SpecFormat returns the spec format implied by a file name: json for
// .json files and toml otherwise.
func SpecFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return SpecJSON
	}
	return SpecTOML
}

// SetDefaults fills in the frame size, font size, scale and series kinds.
func (s *Spec) SetDefaults() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.FontSize == 0 {
		s.FontSize = DefaultFontSize
	}
	for _, a := range []*AxisSpec{&s.X, &s.Y} {
		if a.Scale == "" {
			a.Scale = ScaleLinear
		}
	}
	for i := range s.Series {
		if s.Series[i].Kind == "" {
			s.Series[i].Kind = SeriesLine
		}
	}
}

// Validate checks a spec with defaults applied. Orientations are checked
// by the chart frame when it renders.
func (s *Spec) Validate() error {
	if err := errors.ValidateFrameSize(s.Width, s.Height); err != nil {
		return err
	}
	if s.FontSize < 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "font_size must not be negative")
	}
	for _, label := range []string{s.Title, s.X.Label, s.Y.Label} {
		if err := errors.ValidateLabel(label); err != nil {
			return err
		}
	}
	for _, a := range []struct {
		dim  string
		spec AxisSpec
	}{{"x", s.X}, {"y", s.Y}} {
		if err := a.spec.validate(a.dim); err != nil {
			return err
		}
	}
	if len(s.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "at least one series is required")
	}
	for i, ss := range s.Series {
		if ss.Kind != SeriesLine && ss.Kind != SeriesScatter {
			return errors.New(errors.ErrCodeInvalidSpec, "series %d: unknown kind %q (must be line or scatter)", i, ss.Kind)
		}
	}
	return nil
}

func (a AxisSpec) validate(dim string) error {
	switch a.Scale {
	case ScaleLinear, ScaleLog, ScaleIdentity:
	default:
		return errors.New(errors.ErrCodeInvalidSpec, "%s.scale: unknown scale %q (must be linear, log or identity)", dim, a.Scale)
	}
	if len(a.Domain) != 0 && len(a.Domain) != 2 {
		return errors.New(errors.ErrCodeInvalidSpec, "%s.domain must have two values, got %d", dim, len(a.Domain))
	}
	if a.Ticks < 0 || a.Ticks > scale.MaxTickCount {
		return errors.New(errors.ErrCodeInvalidSpec, "%s.ticks must be between 0 and %d, got %d", dim, scale.MaxTickCount, a.Ticks)
	}
	if len(a.TickValues) > scale.MaxTickCount {
		return errors.New(errors.ErrCodeInvalidSpec, "%s.tick_values has %d values, at most %d are allowed", dim, len(a.TickValues), scale.MaxTickCount)
	}
	if a.Scale == ScaleLog && len(a.Domain) == 2 && (a.Domain[0] <= 0 || a.Domain[1] <= 0) {
		return errors.New(errors.ErrCodeInvalidSpec, "%s.domain: log scale needs a positive domain, got [%g, %g]", dim, a.Domain[0], a.Domain[1])
	}
	return nil
}

// Hash returns the content hash of the spec, used as its cache identity.
// Call it after SetDefaults so that implicit and explicit defaults agree.
func (s *Spec) Hash() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "marshal spec")
	}
	return hash(data), nil
}
