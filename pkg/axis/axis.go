// Package axis draws a scale as a line with ticks and labels.
//
// An [Axis] is configured with a scale and optional tick settings and
// rendered into the <svg> element of a drawing region. Ticks are reconciled
// against the previous render by value, so an axis redrawn with the same
// ticks updates its nodes in place.
//
// The four orientations differ only in where ticks and labels sit relative
// to the axis line. Bottom and right axes draw in positive coordinates from
// the origin; top and left axes draw in negative coordinates, so the region
// hosting them must shift its viewport accordingly.
package axis

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/scene"
)

// Orientations.
const (
	Top    = "top"
	Bottom = "bottom"
	Left   = "left"
	Right  = "right"
)

const (
	defaultTickSize    = 6
	defaultTickPadding = 3
)

// Decorator customizes rendered ticks after every render. values holds the
// tick value of each node in ticks.
type Decorator func(ticks []*scene.Node, values []float64)

// Axis renders a scale along one edge of a region.
type Axis struct {
	orient     string
	scale      scale.Scale
	tickFormat func(float64) string
	tickArgs   []any
	tickSize   float64
	tickValues []float64
	decorate   Decorator
}

// New returns an axis with the given orientation.
func New(orient string) (*Axis, error) {
	switch orient {
	case Top, Bottom, Left, Right:
		return &Axis{orient: orient, tickSize: defaultTickSize}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidOrientation, "unknown axis orientation %q", orient)
}

// ForOrient is New under the name chart frames use as their default axis
// factory.
func ForOrient(orient string) (*Axis, error) { return New(orient) }

// Orient returns the orientation.
func (a *Axis) Orient() string { return a.orient }

func (a *Axis) horizontal() bool { return a.orient == Top || a.orient == Bottom }

// Scale returns the scale drawn by the axis.
func (a *Axis) Scale() scale.Scale { return a.scale }

// SetScale sets the scale drawn by the axis.
func (a *Axis) SetScale(s scale.Scale) { a.scale = s }

// TickFormat returns the explicit tick formatter, or nil.
func (a *Axis) TickFormat() func(float64) string { return a.tickFormat }

// SetTickFormat sets the tick label formatter. nil restores the scale's
// formatter.
func (a *Axis) SetTickFormat(fn func(float64) string) { a.tickFormat = fn }

// TickArgs returns the arguments of the last SetTicks call.
func (a *Axis) TickArgs() []any { return a.tickArgs }

// SetTicks sets the arguments passed to the scale when generating ticks:
// an integer is the tick count and a string is a printf verb for labels.
func (a *Axis) SetTicks(args ...any) { a.tickArgs = args }

// TickSize returns the tick line length.
func (a *Axis) TickSize() float64 { return a.tickSize }

// SetTickSize sets the tick line length in pixels.
func (a *Axis) SetTickSize(size float64) { a.tickSize = size }

// TickValues returns the explicit tick values, or nil.
func (a *Axis) TickValues() []float64 { return a.tickValues }

// SetTickValues sets explicit tick values, overriding the scale's ticks.
func (a *Axis) SetTickValues(vs []float64) { a.tickValues = vs }

// SetDecorate sets the tick decorator. nil disables decoration.
func (a *Axis) SetDecorate(fn Decorator) { a.decorate = fn }

// tickSettings interprets the tick arguments.
func (a *Axis) tickSettings() (count int, spec string, err error) {
	count = scale.DefaultTickCount
	for _, arg := range a.tickArgs {
		switch v := arg.(type) {
		case int:
			count = v
		case float64:
			count = int(v)
		case string:
			spec = v
		default:
			return 0, "", errors.New(errors.ErrCodeInvalidInput, "unsupported tick argument %v (%T)", arg, arg)
		}
	}
	return count, spec, nil
}

// Render draws the axis into target, the <svg> element of a region. A
// non-nil transition is applied to the drawn elements.
func (a *Axis) Render(target *scene.Node, t *scene.Transition) error {
	if target == nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s axis: nil render target", a.orient)
	}
	if a.scale == nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s axis: no scale", a.orient)
	}
	count, spec, err := a.tickSettings()
	if err != nil {
		return err
	}

	values := a.tickValues
	if values == nil {
		values = a.scale.Ticks(count)
	}
	format := a.tickFormat
	if format == nil {
		format = a.scale.TickFormat(count, spec)
	}

	domain := scene.DataJoin{Element: "path", Class: "domain"}.Join(target, []any{a.orient})
	for _, n := range domain.Nodes() {
		n.SetAttr("d", a.domainPath())
		n.SetAttr("fill", "none").SetAttr("stroke", "currentColor")
		applyTransition(n, t)
	}

	ticks := scene.DataJoin{
		Element: "g",
		Class:   "tick",
		Key:     func(d any, _ int) string { return strconv.FormatFloat(d.(float64), 'g', -1, 64) },
	}.Join(target, scene.Values(values))

	nodes := ticks.Nodes()
	for i, n := range nodes {
		a.drawTick(n, values[i], format(values[i]))
		applyTransition(n, t)
	}

	if a.decorate != nil {
		a.decorate(nodes, values)
	}
	return nil
}

func (a *Axis) drawTick(g *scene.Node, v float64, label string) {
	pos := num(a.scale.Apply(v))
	size, offset := a.tickSize, a.tickSize+defaultTickPadding
	if a.orient == Top || a.orient == Left {
		size, offset = -size, -offset
	}

	g.Clear()
	line := g.Append("line").SetAttr("stroke", "currentColor")
	text := g.Append("text").SetAttr("fill", "currentColor").SetText(label)

	switch a.orient {
	case Bottom, Top:
		g.SetAttr("transform", fmt.Sprintf("translate(%s,0)", pos))
		line.SetAttr("y2", num(size))
		text.SetAttr("y", num(offset)).SetAttr("text-anchor", "middle")
		if a.orient == Bottom {
			text.SetAttr("dy", "0.71em")
		}
	case Left, Right:
		g.SetAttr("transform", fmt.Sprintf("translate(0,%s)", pos))
		line.SetAttr("x2", num(size))
		text.SetAttr("x", num(offset)).SetAttr("dy", "0.32em")
		if a.orient == Left {
			text.SetAttr("text-anchor", "end")
		} else {
			text.SetAttr("text-anchor", "start")
		}
	}
}

func (a *Axis) domainPath() string {
	r0, r1 := a.scale.Range()
	size := a.tickSize
	if a.orient == Top || a.orient == Left {
		size = -size
	}
	if a.horizontal() {
		return fmt.Sprintf("M%s,%sV0H%sV%s", num(r0), num(size), num(r1), num(size))
	}
	return fmt.Sprintf("M%s,%sH0V%sH%s", num(size), num(r0), num(r1), num(size))
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
