package chart

import (
	"github.com/matzehuels/cartesian/pkg/axis"
	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/scene"
)

// Axis is the contract a frame needs from an axis implementation.
type Axis interface {
	SetScale(s scale.Scale)
	SetTickFormat(fn func(float64) string)
	SetTicks(args ...any)
	SetTickSize(size float64)
	SetTickValues(vs []float64)
	SetDecorate(fn axis.Decorator)
	Render(target *scene.Node, t *scene.Transition) error
}

// AxisFactory creates the axis for an orientation other than none.
type AxisFactory func(o Orientation) (Axis, error)

// DefaultAxisFactory returns the axis package implementation for o.
func DefaultAxisFactory(o Orientation) (Axis, error) {
	a, err := axis.ForOrient(string(o))
	if err != nil {
		return nil, err
	}
	return a, nil
}

// axisConfig holds the caller's overrides for one axis. Unset fields leave
// the axis defaults in place.
type axisConfig struct {
	tickFormat func(float64) string
	decorate   axis.Decorator

	tickArgs   []any
	tickArgsOK bool
	tickSize   float64
	tickSizeOK bool
	tickValues []float64
}

func noDecorate([]*scene.Node, []float64) {}

// apply pushes the configuration onto a. Format and decoration are always
// applied; the tick settings only when configured.
func (c *axisConfig) apply(a Axis) {
	a.SetTickFormat(c.tickFormat)
	if c.decorate != nil {
		a.SetDecorate(c.decorate)
	} else {
		a.SetDecorate(noDecorate)
	}
	if c.tickArgsOK {
		a.SetTicks(c.tickArgs...)
	}
	if c.tickSizeOK {
		a.SetTickSize(c.tickSize)
	}
	if c.tickValues != nil {
		a.SetTickValues(c.tickValues)
	}
}
