package pipeline

import (
	"context"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cartesian/pkg/chart"
	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/render"
	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/scene"
	"github.com/matzehuels/cartesian/pkg/series"
)

// Frame is a configured chart frame together with the datum it renders.
type Frame struct {
	Chart *chart.Cartesian
	Datum [][]series.Point
}

// BuildFrame configures a chart frame for s. Defaults must already be
// applied. The datum holds the points of every series in order.
func BuildFrame(s *Spec, logger *log.Logger) (*Frame, error) {
	x, err := newScale(s.X.Scale)
	if err != nil {
		return nil, err
	}
	y, err := newScale(s.Y.Scale)
	if err != nil {
		return nil, err
	}

	datum := make([][]series.Point, len(s.Series))
	for i, ss := range s.Series {
		datum[i] = ss.Points
	}

	frame := chart.New(x, y).
		SetLogger(logger).
		SetChartLabel(s.Title).
		SetXLabel(s.X.Label).
		SetYLabel(s.Y.Label)
	if s.X.Orient != "" {
		frame.SetXOrient(chart.Orientation(s.X.Orient))
	}
	if s.Y.Orient != "" {
		frame.SetYOrient(chart.Orientation(s.Y.Orient))
	}

	xlo, xhi, err := domainOf("x", s.X, datum, func(p series.Point) float64 { return p.X })
	if err != nil {
		return nil, err
	}
	ylo, yhi, err := domainOf("y", s.Y, datum, func(p series.Point) float64 { return p.Y })
	if err != nil {
		return nil, err
	}
	frame.SetXDomain(xlo, xhi).SetYDomain(ylo, yhi)

	configureAxis(s.X, frame.XNice, frame.SetXClamp, frame.SetXTicks, frame.SetXTickValues, frame.SetXTickSize)
	configureAxis(s.Y, frame.YNice, frame.SetYClamp, frame.SetYTicks, frame.SetYTickValues, frame.SetYTickSize)

	frame.SetPlotArea(plotArea(s))
	if err := frame.Err(); err != nil {
		return nil, err
	}
	return &Frame{Chart: frame, Datum: datum}, nil
}

func configureAxis(
	a AxisSpec,
	nice func(int) *chart.Cartesian,
	setClamp func(bool) *chart.Cartesian,
	setTicks func(...any) *chart.Cartesian,
	setTickValues func([]float64) *chart.Cartesian,
	setTickSize func(float64) *chart.Cartesian,
) {
	count := a.Ticks
	if count == 0 {
		count = scale.DefaultTickCount
	}
	if a.Nice {
		nice(count)
	}
	if a.Clamp {
		setClamp(true)
	}
	switch {
	case a.TickFormat != "":
		setTicks(count, a.TickFormat)
	case a.Ticks > 0:
		setTicks(a.Ticks)
	}
	if len(a.TickValues) > 0 {
		setTickValues(a.TickValues)
	}
	if a.TickSize != nil {
		setTickSize(*a.TickSize)
	}
}

func newScale(kind string) (scale.Scale, error) {
	switch kind {
	case ScaleLinear:
		return scale.NewLinear(), nil
	case ScaleLog:
		return scale.NewLog(), nil
	case ScaleIdentity:
		return scale.NewIdentity(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidSpec, "unknown scale %q", kind)
}

// domainOf returns the configured domain, or the extent of the defined
// points when none is configured. A degenerate extent is widened by one
// on each side.
func domainOf(dim string, a AxisSpec, data [][]series.Point, value func(series.Point) float64) (float64, float64, error) {
	if len(a.Domain) == 2 {
		lo, hi := a.Domain[0], a.Domain[1]
		if a.Scale == ScaleLog && (lo <= 0 || hi <= 0) {
			return 0, 0, errors.New(errors.ErrCodeInvalidSpec, "%s: log scale needs a positive domain, got [%g, %g]", dim, lo, hi)
		}
		return lo, hi, nil
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pts := range data {
		for _, p := range pts {
			if !p.Defined() {
				continue
			}
			v := value(p)
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	switch {
	case math.IsInf(lo, 1):
		lo, hi = 0, 1
		if a.Scale == ScaleLog {
			lo, hi = 1, 10
		}
	case lo == hi && a.Scale == ScaleLog:
		lo, hi = lo/10, hi*10
	case lo == hi:
		lo, hi = lo-1, hi+1
	}
	if a.Scale == ScaleLog && lo <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidSpec, "%s: log scale needs positive data, got %g", dim, lo)
	}
	return lo, hi, nil
}

// plotArea returns the series of s, behind gridlines when requested. Each
// series receives its own points from the frame datum.
func plotArea(s *Spec) chart.PlotArea {
	var children []series.Series
	if s.Gridlines {
		g := series.NewGridline()
		if s.X.Ticks > 0 {
			g.SetXTicks(s.X.Ticks)
		}
		if s.Y.Ticks > 0 {
			g.SetYTicks(s.Y.Ticks)
		}
		children = append(children, g)
	}
	offset := len(children)
	for _, ss := range s.Series {
		children = append(children, newSeries(ss))
	}

	multi := series.NewMulti(children...)
	multi.SetMapping(func(datum any, i int) any {
		data, ok := datum.([][]series.Point)
		if !ok || i < offset {
			return nil
		}
		return data[i-offset]
	})
	return multi
}

func newSeries(ss SeriesSpec) series.Series {
	var opts []series.Option
	if ss.Stroke != "" {
		opts = append(opts, series.WithStroke(ss.Stroke))
	}
	if ss.Fill != "" {
		opts = append(opts, series.WithFill(ss.Fill))
	}
	if ss.StrokeWidth > 0 {
		opts = append(opts, series.WithStrokeWidth(ss.StrokeWidth))
	}
	if ss.Radius > 0 {
		opts = append(opts, series.WithRadius(ss.Radius))
	}
	if ss.Kind == SeriesScatter {
		return series.NewScatter(opts...)
	}
	return series.NewLine(opts...)
}

// Document builds the frame for s, renders it into a new document and
// flushes it. Defaults must already be applied.
func Document(ctx context.Context, s *Spec, logger *log.Logger) (*scene.Document, error) {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	frame, err := BuildFrame(s, logger)
	if err != nil {
		return nil, err
	}
	doc := scene.NewDocument(s.Width, s.Height, scene.WithFontSize(s.FontSize), scene.WithLogger(logger))
	doc.Root().Datum = frame.Datum
	if err := frame.Chart.Render(scene.Select(doc.Root())); err != nil {
		return nil, err
	}
	if err := doc.Flush(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// RenderSVG renders s to a standalone SVG document.
func RenderSVG(ctx context.Context, s *Spec, logger *log.Logger) ([]byte, error) {
	doc, err := Document(ctx, s, logger)
	if err != nil {
		return nil, err
	}
	return doc.SVG(), nil
}

// Render renders s once and converts the result to every requested format.
func Render(ctx context.Context, s *Spec, opts Options) (map[string][]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	svg, err := RenderSVG(ctx, s, opts.Logger)
	if err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := render.Convert(ctx, svg, format, opts.Scale)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
