package chart

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cartesian/pkg/axis"
)

// Surface returns the element tag of the plot-area region.
func (c *Cartesian) Surface() string { return c.surface }

// Err returns the configuration error that the next Render will report, if
// any. It reflects the options currently set: switching an unsupported scale
// option off again clears it.
func (c *Cartesian) Err() error {
	if len(c.optionErrs) == 0 {
		return nil
	}
	return c.optionErrs[0].err
}

// =============================================================================
// Labels and orientation
// =============================================================================

// XLabel returns the x axis label accessor.
func (c *Cartesian) XLabel() Func[string] { return c.xLabel }

// SetXLabel sets a constant x axis label.
func (c *Cartesian) SetXLabel(label string) *Cartesian { return c.SetXLabelFunc(Const(label)) }

// SetXLabelFunc sets a per-datum x axis label.
func (c *Cartesian) SetXLabelFunc(fn Func[string]) *Cartesian {
	c.xLabel = orConst(fn, "")
	return c
}

// YLabel returns the y axis label accessor.
func (c *Cartesian) YLabel() Func[string] { return c.yLabel }

// SetYLabel sets a constant y axis label.
func (c *Cartesian) SetYLabel(label string) *Cartesian { return c.SetYLabelFunc(Const(label)) }

// SetYLabelFunc sets a per-datum y axis label.
func (c *Cartesian) SetYLabelFunc(fn Func[string]) *Cartesian {
	c.yLabel = orConst(fn, "")
	return c
}

// ChartLabel returns the chart title accessor.
func (c *Cartesian) ChartLabel() Func[string] { return c.chartLabel }

// SetChartLabel sets a constant chart title. An empty title collapses the
// label region.
func (c *Cartesian) SetChartLabel(label string) *Cartesian {
	return c.SetChartLabelFunc(Const(label))
}

// SetChartLabelFunc sets a per-datum chart title.
func (c *Cartesian) SetChartLabelFunc(fn Func[string]) *Cartesian {
	c.chartLabel = orConst(fn, "")
	return c
}

// XOrient returns the x axis orientation accessor. Defaults to bottom.
func (c *Cartesian) XOrient() Func[Orientation] { return c.xOrient }

// SetXOrient sets a constant x axis orientation: top, bottom or none.
func (c *Cartesian) SetXOrient(o Orientation) *Cartesian { return c.SetXOrientFunc(Const(o)) }

// SetXOrientFunc sets a per-datum x axis orientation.
func (c *Cartesian) SetXOrientFunc(fn Func[Orientation]) *Cartesian {
	c.xOrient = orConst(fn, OrientBottom)
	return c
}

// YOrient returns the y axis orientation accessor. Defaults to right.
func (c *Cartesian) YOrient() Func[Orientation] { return c.yOrient }

// SetYOrient sets a constant y axis orientation: left, right or none.
func (c *Cartesian) SetYOrient(o Orientation) *Cartesian { return c.SetYOrientFunc(Const(o)) }

// SetYOrientFunc sets a per-datum y axis orientation.
func (c *Cartesian) SetYOrientFunc(fn Func[Orientation]) *Cartesian {
	c.yOrient = orConst(fn, OrientRight)
	return c
}

func orConst[T any](fn Func[T], def T) Func[T] {
	if fn == nil {
		return Const(def)
	}
	return fn
}

// =============================================================================
// Collaborators and hooks
// =============================================================================

// PlotArea returns the plot-area delegate. Defaults to a line series.
func (c *Cartesian) PlotArea() PlotArea { return c.plotArea }

// SetPlotArea sets the plot-area delegate. Rendering without one fails.
func (c *Cartesian) SetPlotArea(p PlotArea) *Cartesian {
	c.plotArea = p
	return c
}

// Decorate returns the container decorator.
func (c *Cartesian) Decorate() Decorator { return c.decorate }

// SetDecorate sets the container decorator.
func (c *Cartesian) SetDecorate(fn Decorator) *Cartesian {
	c.decorate = fn
	return c
}

// AxisFactory returns the function creating axes for an orientation.
func (c *Cartesian) AxisFactory() AxisFactory { return c.axisFactory }

// SetAxisFactory sets the function creating axes. nil restores the default.
func (c *Cartesian) SetAxisFactory(fn AxisFactory) *Cartesian {
	if fn == nil {
		fn = DefaultAxisFactory
	}
	c.axisFactory = fn
	return c
}

// Logger returns the logger used for render diagnostics.
func (c *Cartesian) Logger() *log.Logger { return c.logger }

// SetLogger sets the logger used for render diagnostics. nil discards.
func (c *Cartesian) SetLogger(l *log.Logger) *Cartesian {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{})
	}
	c.logger = l
	return c
}

// =============================================================================
// X axis ticks
// =============================================================================

// XTickFormat returns the x tick formatter, nil when the axis default is
// used.
func (c *Cartesian) XTickFormat() func(float64) string { return c.xAxis.tickFormat }

// SetXTickFormat sets the x tick formatter. nil restores the axis default.
func (c *Cartesian) SetXTickFormat(fn func(float64) string) *Cartesian {
	c.xAxis.tickFormat = fn
	return c
}

// XTicks returns the x tick arguments and whether they are set.
func (c *Cartesian) XTicks() ([]any, bool) { return c.xAxis.tickArgs, c.xAxis.tickArgsOK }

// SetXTicks sets the arguments passed to the x axis ticks on every draw.
func (c *Cartesian) SetXTicks(args ...any) *Cartesian {
	c.xAxis.tickArgs, c.xAxis.tickArgsOK = args, true
	return c
}

// XTickSize returns the x tick size and whether it is set.
func (c *Cartesian) XTickSize() (float64, bool) { return c.xAxis.tickSize, c.xAxis.tickSizeOK }

// SetXTickSize sets the x tick size.
func (c *Cartesian) SetXTickSize(size float64) *Cartesian {
	c.xAxis.tickSize, c.xAxis.tickSizeOK = size, true
	return c
}

// XTickValues returns the explicit x tick values, nil when unset.
func (c *Cartesian) XTickValues() []float64 { return c.xAxis.tickValues }

// SetXTickValues sets explicit x tick values. nil unsets them.
func (c *Cartesian) SetXTickValues(vs []float64) *Cartesian {
	c.xAxis.tickValues = vs
	return c
}

// XDecorate returns the x axis tick decorator.
func (c *Cartesian) XDecorate() axis.Decorator { return c.xAxis.decorate }

// SetXDecorate sets the x axis tick decorator.
func (c *Cartesian) SetXDecorate(fn axis.Decorator) *Cartesian {
	c.xAxis.decorate = fn
	return c
}

// =============================================================================
// Y axis ticks
// =============================================================================

// YTickFormat returns the y tick formatter, nil when the axis default is
// used.
func (c *Cartesian) YTickFormat() func(float64) string { return c.yAxis.tickFormat }

// SetYTickFormat sets the y tick formatter. nil restores the axis default.
func (c *Cartesian) SetYTickFormat(fn func(float64) string) *Cartesian {
	c.yAxis.tickFormat = fn
	return c
}

// YTicks returns the y tick arguments and whether they are set.
func (c *Cartesian) YTicks() ([]any, bool) { return c.yAxis.tickArgs, c.yAxis.tickArgsOK }

// SetYTicks sets the arguments passed to the y axis ticks on every draw.
func (c *Cartesian) SetYTicks(args ...any) *Cartesian {
	c.yAxis.tickArgs, c.yAxis.tickArgsOK = args, true
	return c
}

// YTickSize returns the y tick size and whether it is set.
func (c *Cartesian) YTickSize() (float64, bool) { return c.yAxis.tickSize, c.yAxis.tickSizeOK }

// SetYTickSize sets the y tick size.
func (c *Cartesian) SetYTickSize(size float64) *Cartesian {
	c.yAxis.tickSize, c.yAxis.tickSizeOK = size, true
	return c
}

// YTickValues returns the explicit y tick values, nil when unset.
func (c *Cartesian) YTickValues() []float64 { return c.yAxis.tickValues }

// SetYTickValues sets explicit y tick values. nil unsets them.
func (c *Cartesian) SetYTickValues(vs []float64) *Cartesian {
	c.yAxis.tickValues = vs
	return c
}

// YDecorate returns the y axis tick decorator.
func (c *Cartesian) YDecorate() axis.Decorator { return c.yAxis.decorate }

// SetYDecorate sets the y axis tick decorator.
func (c *Cartesian) SetYDecorate(fn axis.Decorator) *Cartesian {
	c.yAxis.decorate = fn
	return c
}
