// Package series renders data into the plot area of a chart frame.
//
// Every series takes an x and a y scale and renders a datum into the <svg>
// element of a drawing region:
//
//   - [Line]: a polyline through the points
//   - [Scatter]: a circle per point
//   - [Gridline]: lines at the ticks of both scales
//   - [Multi]: several series sharing the same scales
//
// Data is a []Point. Points with a NaN coordinate are skipped.
package series

import (
	"math"
	"strconv"

	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/scene"
)

// Point is a datum of a cartesian series.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Defined reports whether both coordinates are numbers.
func (p Point) Defined() bool { return !math.IsNaN(p.X) && !math.IsNaN(p.Y) }

// Series is implemented by every renderer in this package.
type Series interface {
	SetXScale(s scale.Scale)
	SetYScale(s scale.Scale)
	Render(target *scene.Node, datum any, t *scene.Transition) error
}

// Option configures the presentation of a series.
type Option func(*style)

type style struct {
	stroke      string
	fill        string
	strokeWidth float64
	radius      float64
}

// WithStroke sets the stroke color.
func WithStroke(color string) Option { return func(s *style) { s.stroke = color } }

// WithFill sets the fill color.
func WithFill(color string) Option { return func(s *style) { s.fill = color } }

// WithStrokeWidth sets the stroke width in pixels.
func WithStrokeWidth(w float64) Option { return func(s *style) { s.strokeWidth = w } }

// WithRadius sets the radius of point symbols.
func WithRadius(r float64) Option { return func(s *style) { s.radius = r } }

func newStyle(opts []Option) style {
	s := style{stroke: "currentColor", fill: "none", strokeWidth: 1.5, radius: 3}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// scales is embedded by series that map points through an x and a y scale.
type scales struct {
	x, y scale.Scale
}

// SetXScale sets the scale for x values.
func (s *scales) SetXScale(x scale.Scale) { s.x = x }

// SetYScale sets the scale for y values.
func (s *scales) SetYScale(y scale.Scale) { s.y = y }

// XScale returns the scale for x values.
func (s *scales) XScale() scale.Scale { return s.x }

// YScale returns the scale for y values.
func (s *scales) YScale() scale.Scale { return s.y }

func (s *scales) check(kind string, target *scene.Node) error {
	if target == nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s series: nil render target", kind)
	}
	if s.x == nil || s.y == nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s series: x and y scales are required", kind)
	}
	return nil
}

// points converts a datum into series data. nil is an empty series.
func points(kind string, datum any) ([]Point, error) {
	switch d := datum.(type) {
	case nil:
		return nil, nil
	case []Point:
		return d, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidDatum, "%s series: datum must be []series.Point, got %T", kind, datum)
}

func applyTransition(n *scene.Node, t *scene.Transition) {
	if css := t.CSS(); css != "" {
		n.SetAttr("style", css)
		return
	}
	n.RemoveAttr("style")
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
