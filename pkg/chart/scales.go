package chart

import (
	"math"
	"slices"

	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/scale"
)

// The frame assigns scale ranges itself when the plot area is measured and
// leaves tick formatting to the axes, so neither is exposed here. The other
// scale options are forwarded under an x or y prefix. Options the scale does
// not implement stay recorded until they are switched off again, and Render
// fails while any is recorded.

// optionError is an unsupported scale option that is currently set.
type optionError struct {
	key string
	err error
}

// unsupported records option as set on a scale that cannot honour it, or
// clears the record when set is false.
func (c *Cartesian) unsupported(dim string, s scale.Scale, option string, set bool) {
	key := dim + "." + option
	c.optionErrs = slices.DeleteFunc(c.optionErrs, func(o optionError) bool { return o.key == key })
	if set {
		err := errors.New(errors.ErrCodeUnsupportedScaleOption, "%s scale %T does not support %s", dim, s, option)
		c.optionErrs = append(c.optionErrs, optionError{key: key, err: err})
	}
}

func (c *Cartesian) setClamp(dim string, s scale.Scale, clamp bool) {
	if cl, ok := s.(scale.Clamper); ok {
		cl.SetClamp(clamp)
		return
	}
	c.unsupported(dim, s, "clamp", clamp)
}

// nice is a one-off request rather than a setting, so an unsupported nice
// stays recorded until the domain is set again.
func (c *Cartesian) nice(dim string, s scale.Scale, count int) {
	if n, ok := s.(scale.Nicer); ok {
		n.Nice(count)
		return
	}
	c.unsupported(dim, s, "nice", true)
}

func (c *Cartesian) setDomain(dim string, s scale.Scale, lo, hi float64) {
	s.SetDomain(lo, hi)
	c.unsupported(dim, s, "nice", false)
}

func (c *Cartesian) setRound(dim string, s scale.Scale, round bool) {
	if r, ok := s.(scale.Rounder); ok {
		r.SetRound(round)
		return
	}
	c.unsupported(dim, s, "round", round)
}

func (c *Cartesian) setUnknown(dim string, s scale.Scale, v float64) {
	if u, ok := s.(scale.Unknowner); ok {
		u.SetUnknown(v)
		return
	}
	c.unsupported(dim, s, "unknown", !math.IsNaN(v))
}

func clampOf(s scale.Scale) bool {
	if cl, ok := s.(scale.Clamper); ok {
		return cl.Clamp()
	}
	return false
}

func roundOf(s scale.Scale) bool {
	if r, ok := s.(scale.Rounder); ok {
		return r.Round()
	}
	return false
}

func unknownOf(s scale.Scale) float64 {
	if u, ok := s.(scale.Unknowner); ok {
		return u.Unknown()
	}
	return math.NaN()
}

// XDomain returns the domain of the x scale.
func (c *Cartesian) XDomain() (lo, hi float64) { return c.xScale.Domain() }

// SetXDomain sets the domain of the x scale.
func (c *Cartesian) SetXDomain(lo, hi float64) *Cartesian {
	c.setDomain("x", c.xScale, lo, hi)
	return c
}

// XClamp reports whether the x scale clamps its output.
func (c *Cartesian) XClamp() bool { return clampOf(c.xScale) }

// SetXClamp enables or disables clamping on the x scale.
func (c *Cartesian) SetXClamp(clamp bool) *Cartesian {
	c.setClamp("x", c.xScale, clamp)
	return c
}

// XNice extends the x domain to round values for count ticks.
func (c *Cartesian) XNice(count int) *Cartesian {
	c.nice("x", c.xScale, count)
	return c
}

// XRound reports whether the x scale rounds its output.
func (c *Cartesian) XRound() bool { return roundOf(c.xScale) }

// SetXRound enables or disables output rounding on the x scale.
func (c *Cartesian) SetXRound(round bool) *Cartesian {
	c.setRound("x", c.xScale, round)
	return c
}

// XUnknown returns the x scale output for NaN input.
func (c *Cartesian) XUnknown() float64 { return unknownOf(c.xScale) }

// SetXUnknown sets the x scale output for NaN input.
func (c *Cartesian) SetXUnknown(v float64) *Cartesian {
	c.setUnknown("x", c.xScale, v)
	return c
}

// XInvert maps a plot-area pixel offset back to an x value.
func (c *Cartesian) XInvert(px float64) float64 { return c.xScale.Invert(px) }

// YDomain returns the domain of the y scale.
func (c *Cartesian) YDomain() (lo, hi float64) { return c.yScale.Domain() }

// SetYDomain sets the domain of the y scale.
func (c *Cartesian) SetYDomain(lo, hi float64) *Cartesian {
	c.setDomain("y", c.yScale, lo, hi)
	return c
}

// YClamp reports whether the y scale clamps its output.
func (c *Cartesian) YClamp() bool { return clampOf(c.yScale) }

// SetYClamp enables or disables clamping on the y scale.
func (c *Cartesian) SetYClamp(clamp bool) *Cartesian {
	c.setClamp("y", c.yScale, clamp)
	return c
}

// YNice extends the y domain to round values for count ticks.
func (c *Cartesian) YNice(count int) *Cartesian {
	c.nice("y", c.yScale, count)
	return c
}

// YRound reports whether the y scale rounds its output.
func (c *Cartesian) YRound() bool { return roundOf(c.yScale) }

// SetYRound enables or disables output rounding on the y scale.
func (c *Cartesian) SetYRound(round bool) *Cartesian {
	c.setRound("y", c.yScale, round)
	return c
}

// YUnknown returns the y scale output for NaN input.
func (c *Cartesian) YUnknown() float64 { return unknownOf(c.yScale) }

// SetYUnknown sets the y scale output for NaN input.
func (c *Cartesian) SetYUnknown(v float64) *Cartesian {
	c.setUnknown("y", c.yScale, v)
	return c
}

// YInvert maps a plot-area pixel offset back to a y value.
func (c *Cartesian) YInvert(px float64) float64 { return c.yScale.Invert(px) }
