// Package chart provides the cartesian chart frame: a plot area laid out
// together with up to two axes that share a pair of scales.
//
// # Overview
//
// A [Cartesian] is configured once and rendered into any number of scene
// nodes. Each node's Datum is the chart datum; orientations and labels are
// functions of it and are evaluated on every render.
//
//	x, y := scale.NewLinear(), scale.NewLinear()
//	frame := chart.New(x, y).
//	    SetXDomain(0, 10).
//	    SetYDomain(0, 100).
//	    SetYOrient(chart.OrientLeft).
//	    SetChartLabel("Revenue")
//
//	doc := scene.NewDocument(800, 600)
//	doc.Root().Datum = points
//	if err := frame.Render(scene.Select(doc.Root())); err != nil {
//	    return err
//	}
//	err := doc.Flush(ctx)
//
// # Rendering
//
// Render reconciles a container per node, builds its regions the first time
// the container enters, refreshes label text and registers measure and draw
// listeners on the regions. The document then lays the regions out and fires
// the events: measuring the plot area assigns the scale ranges, and drawing
// configures and renders the axes and the plot area against them.
//
// # Configuration
//
// Every property has a getter and a setter that returns the frame, so calls
// can be chained. Per-datum properties also accept a [Func]. Scale options
// are forwarded under an x or y prefix, except range and tick format, which
// the frame owns.
package chart

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/scene"
	"github.com/matzehuels/cartesian/pkg/series"
)

// PlotArea draws the chart content against the frame's scales.
type PlotArea interface {
	SetXScale(s scale.Scale)
	SetYScale(s scale.Scale)
	Render(target *scene.Node, datum any, t *scene.Transition) error
}

// DrawFunc invokes the plot area for a measured surface. It decides what
// part of the surface the plot area renders into.
type DrawFunc func(datum any, surface *scene.Node, area PlotArea, t *scene.Transition) error

// DrawSVG renders the plot area into the surface's <svg> element.
func DrawSVG(datum any, surface *scene.Node, area PlotArea, t *scene.Transition) error {
	return area.Render(surface.Select(scene.TagSVG), datum, t)
}

// Decorator customizes a rendered container. It runs after the frame has
// finished rendering it.
type Decorator func(container *scene.Node, datum any, index int)

// Cartesian is a chart frame. It is not safe for concurrent use.
type Cartesian struct {
	surface string
	draw    DrawFunc
	xScale  scale.Scale
	yScale  scale.Scale

	xLabel     Func[string]
	yLabel     Func[string]
	chartLabel Func[string]
	xOrient    Func[Orientation]
	yOrient    Func[Orientation]

	plotArea    PlotArea
	xAxis       axisConfig
	yAxis       axisConfig
	decorate    Decorator
	axisFactory AxisFactory
	logger      *log.Logger

	optionErrs []optionError
}

// NewBase returns a frame whose plot area is a region of the given surface
// tag, drawn by draw. nil scales default to identity scales.
func NewBase(surface string, draw DrawFunc, x, y scale.Scale) *Cartesian {
	if x == nil {
		x = scale.NewIdentity()
	}
	if y == nil {
		y = scale.NewIdentity()
	}
	return &Cartesian{
		surface:     surface,
		draw:        draw,
		xScale:      x,
		yScale:      y,
		xLabel:      Const(""),
		yLabel:      Const(""),
		chartLabel:  Const(""),
		xOrient:     Const(OrientBottom),
		yOrient:     Const(OrientRight),
		plotArea:    series.NewLine(),
		axisFactory: DefaultAxisFactory,
		logger:      log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// New returns an SVG frame with a line series as its plot area.
func New(x, y scale.Scale) *Cartesian {
	return NewBase(scene.TagSVGSurface, DrawSVG, x, y)
}

// Render renders the frame into every node of sel, using each node's Datum
// as the chart datum. Configuration errors stop the render at the failing
// node. A transition on sel is passed on to the axes and the plot area.
func (c *Cartesian) Render(sel scene.Selection) error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.plotArea == nil {
		return errors.New(errors.ErrCodeMissingPlotArea, "no plot area configured")
	}
	for i, n := range sel.Nodes {
		if err := c.renderNode(n, i, sel.Transition); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cartesian) renderNode(node *scene.Node, index int, t *scene.Transition) error {
	datum := node.Datum
	xo, err := resolveOrient("x", c.xOrient, datum)
	if err != nil {
		return err
	}
	yo, err := resolveOrient("y", c.yOrient, datum)
	if err != nil {
		return err
	}
	xAxis, err := c.axisFor(xo)
	if err != nil {
		return err
	}
	yAxis, err := c.axisFor(yo)
	if err != nil {
		return err
	}

	join := scene.DataJoin{
		Element: scene.TagGroup,
		Class:   ClassContainer,
		Key:     func(any, int) string { return string(xo) + "/" + string(yo) },
	}
	joined := join.Join(node, []any{datum})
	container := joined.Nodes()[0]
	if joined.Entered(container) {
		skeleton := buildSkeleton(c.surface, xo, yo)
		c.logger.Debug("Building chart frame", "x", xo, "y", yo, "surface", c.surface, "regions", skeleton.Classes())
		build(container, skeleton)
	}

	chartLabel := c.chartLabel(datum)
	if n := container.Select("." + ClassChartLabel); n != nil {
		n.SetText(chartLabel)
		n.Style.Height = scene.Em(0)
		if chartLabel != "" {
			n.Style.Height = scene.Em(2)
		}
	}
	if n := container.Select("." + ClassXAxisLabel); n != nil {
		n.SetText(c.xLabel(datum))
	}
	if n := container.Select("." + ClassYAxisLabel); n != nil {
		n.SetText(c.yLabel(datum))
	}

	if region := container.Select("." + ClassXAxis); region != nil && xAxis != nil {
		c.bindAxis(region, xo, xAxis, &c.xAxis, c.xScale, t)
	}
	if region := container.Select("." + ClassYAxis); region != nil && yAxis != nil {
		c.bindAxis(region, yo, yAxis, &c.yAxis, c.yScale, t)
	}
	if region := container.Select("." + ClassPlotArea); region != nil {
		c.bindPlotArea(region, datum, t)
	}

	container.RequestRedraw()

	if c.decorate != nil {
		c.decorate(container, datum, index)
	}
	return nil
}

func (c *Cartesian) axisFor(o Orientation) (Axis, error) {
	if o == OrientNone {
		return nil, nil
	}
	a, err := c.axisFactory(o)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New(errors.ErrCodeInvalidOrientation, "no axis implementation for orientation %q", o)
	}
	return a, nil
}

// bindAxis registers the listeners of an axis region. Measuring shifts the
// viewport of top and left axes, which draw in negative coordinates.
func (c *Cartesian) bindAxis(region *scene.Node, o Orientation, a Axis, cfg *axisConfig, s scale.Scale, t *scene.Transition) {
	region.On(scene.EventMeasure, func(ev scene.Event) error {
		w, h := ev.Detail.Width, ev.Detail.Height
		viewBox := fmt.Sprintf("0 0 %g %g", w, h)
		switch o {
		case OrientLeft:
			viewBox = fmt.Sprintf("%g 0 %g %g", -w, w, h)
		case OrientTop:
			viewBox = fmt.Sprintf("0 %g %g %g", -h, w, h)
		}
		ev.Target.Select(scene.TagSVG).SetAttr("viewBox", viewBox)
		return nil
	})
	region.On(scene.EventDraw, func(ev scene.Event) error {
		cfg.apply(a)
		a.SetScale(s)
		return a.Render(ev.Target.Select(scene.TagSVG), t)
	})
}

// bindPlotArea registers the listeners of the plot area. Its measure is the
// only place scale ranges are assigned.
func (c *Cartesian) bindPlotArea(region *scene.Node, datum any, t *scene.Transition) {
	region.On(scene.EventMeasure, func(ev scene.Event) error {
		c.xScale.SetRange(0, ev.Detail.Width)
		c.yScale.SetRange(ev.Detail.Height, 0)
		return nil
	})
	region.On(scene.EventDraw, func(ev scene.Event) error {
		c.plotArea.SetXScale(c.xScale)
		c.plotArea.SetYScale(c.yScale)
		return c.draw(datum, ev.Target, c.plotArea, t)
	})
}
