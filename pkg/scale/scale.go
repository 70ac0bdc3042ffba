// Package scale maps data values onto pixel coordinates.
//
// A [Scale] has a domain (data space) and a range (pixel space). Chart
// frames own the range and assign it when their plot area is measured;
// callers configure the domain and whatever optional capabilities a scale
// implementation offers:
//
//   - [Clamper]: restrict output to the range
//   - [Nicer]: extend the domain to round tick values
//   - [Rounder]: round output to whole pixels
//   - [Unknowner]: the output for undefined (NaN) input
//
// [Linear] and [Log] implement all of them. [Identity] implements only the
// base interface, so configuring clamping on an identity scale is an error
// at the frame level rather than a silent no-op.
//
// Tick labels are formatted through golang.org/x/text/message so that digit
// grouping follows the scale's locale:
//
//	s := scale.NewLinear()
//	s.SetDomain(0, 5000)
//	format := s.TickFormat(5, "")
//	format(2000) // "2,000"
package scale

// Scale is the contract shared by chart frames, axes and series.
type Scale interface {
	// Apply maps a domain value to the range.
	Apply(v float64) float64
	// Invert maps a range value back to the domain.
	Invert(v float64) float64
	Domain() (lo, hi float64)
	SetDomain(lo, hi float64)
	Range() (lo, hi float64)
	SetRange(lo, hi float64)
	// Ticks returns roughly count representative domain values.
	Ticks(count int) []float64
	// TickFormat returns a label formatter suited to Ticks(count). A
	// non-empty spec is a printf verb for float64 values, such as "%.1f".
	TickFormat(count int, spec string) func(float64) string
}

// Clamper is implemented by scales that can restrict output to their range.
type Clamper interface {
	Clamp() bool
	SetClamp(clamp bool)
}

// Nicer is implemented by scales that can extend their domain to round
// values.
type Nicer interface {
	Nice(count int)
}

// Rounder is implemented by scales that can round output to integers.
type Rounder interface {
	Round() bool
	SetRound(round bool)
}

// Unknowner is implemented by scales with a configurable output for NaN
// input.
type Unknowner interface {
	Unknown() float64
	SetUnknown(v float64)
}

// DefaultTickCount is the tick count used when none is requested.
const DefaultTickCount = 10

// MaxTickCount bounds the tick count a scale honours. Larger requests are
// clamped to it.
const MaxTickCount = 1000
