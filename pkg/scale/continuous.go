package scale

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// continuous holds the state shared by the interpolating scales. The
// transform pair maps domain values into the space where interpolation is
// linear (identity for Linear, log10 for Log).
type continuous struct {
	d0, d1  float64
	r0, r1  float64
	clamp   bool
	round   bool
	unknown float64
	locale  language.Tag

	transform   func(float64) float64
	untransform func(float64) float64
}

func newContinuous(transform, untransform func(float64) float64) continuous {
	return continuous{
		d1:          1,
		r1:          1,
		unknown:     math.NaN(),
		locale:      language.English,
		transform:   transform,
		untransform: untransform,
	}
}

func (c *continuous) Apply(v float64) float64 {
	if math.IsNaN(v) {
		return c.unknown
	}
	t := normalize(c.transform(v), c.transform(c.d0), c.transform(c.d1))
	if math.IsNaN(t) {
		return c.unknown
	}
	if c.clamp {
		t = math.Max(0, math.Min(1, t))
	}
	out := c.r0 + t*(c.r1-c.r0)
	if c.round {
		out = math.Round(out)
	}
	return out
}

func (c *continuous) Invert(v float64) float64 {
	t := normalize(v, c.r0, c.r1)
	if c.clamp {
		t = math.Max(0, math.Min(1, t))
	}
	lo, hi := c.transform(c.d0), c.transform(c.d1)
	return c.untransform(lo + t*(hi-lo))
}

func (c *continuous) Domain() (lo, hi float64) { return c.d0, c.d1 }

func (c *continuous) SetDomain(lo, hi float64) { c.d0, c.d1 = lo, hi }

func (c *continuous) Range() (lo, hi float64) { return c.r0, c.r1 }

func (c *continuous) SetRange(lo, hi float64) { c.r0, c.r1 = lo, hi }

func (c *continuous) Clamp() bool { return c.clamp }

func (c *continuous) SetClamp(clamp bool) { c.clamp = clamp }

func (c *continuous) Round() bool { return c.round }

func (c *continuous) SetRound(round bool) { c.round = round }

func (c *continuous) Unknown() float64 { return c.unknown }

func (c *continuous) SetUnknown(v float64) { c.unknown = v }

// Locale returns the locale used for tick labels.
func (c *continuous) Locale() language.Tag { return c.locale }

// SetLocale sets the locale used for tick labels.
func (c *continuous) SetLocale(tag language.Tag) { c.locale = tag }

// formatter wraps a printf verb in the scale's locale. Negative zero prints
// as zero.
func (c *continuous) formatter(verb string) func(float64) string {
	p := message.NewPrinter(c.locale)
	return func(v float64) string {
		if v == 0 {
			v = 0
		}
		return p.Sprintf(verb, v)
	}
}

// normalize returns the position of v within [a, b] as a fraction. A
// degenerate interval maps everything to its middle.
func normalize(v, a, b float64) float64 {
	if b-a == 0 {
		if math.IsNaN(b) {
			return math.NaN()
		}
		return 0.5
	}
	return (v - a) / (b - a)
}

func identity(v float64) float64 { return v }
