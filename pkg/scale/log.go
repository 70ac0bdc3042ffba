package scale

import (
	"fmt"
	"math"
	"slices"
)

// Log is a continuous scale interpolating in base-10 logarithmic space. Its
// domain must be strictly positive or strictly negative.
type Log struct {
	continuous
}

// NewLog returns a log scale with domain [1, 10] and range [0, 1].
func NewLog() *Log {
	s := &Log{continuous: newContinuous(logTransform, powTransform)}
	s.d0, s.d1 = 1, 10
	return s
}

func logTransform(v float64) float64 {
	if v < 0 {
		return -math.Log10(-v)
	}
	return math.Log10(v)
}

func powTransform(v float64) float64 {
	if v < 0 {
		return -math.Pow(10, -v)
	}
	return math.Pow(10, v)
}

// Ticks returns the powers of ten within the domain. When the domain spans
// fewer decades than count, the integer multiples 1..9 of each power are
// included as well.
func (s *Log) Ticks(count int) []float64 {
	if count <= 0 {
		count = DefaultTickCount
	}
	lo, hi := s.d0, s.d1
	reverse := hi < lo
	if reverse {
		lo, hi = hi, lo
	}
	if lo <= 0 && hi >= 0 {
		return nil
	}
	negative := hi < 0
	if negative {
		lo, hi = -hi, -lo
	}

	i, j := math.Floor(math.Log10(lo)), math.Ceil(math.Log10(hi))
	var ticks []float64
	for p := i; p <= j; p++ {
		base := math.Pow(10, p)
		if j-i >= float64(count) {
			if base >= lo && base <= hi {
				ticks = append(ticks, base)
			}
			continue
		}
		for k := 1.0; k < 10; k++ {
			t := k * base
			if t > hi {
				break
			}
			if t >= lo {
				ticks = append(ticks, t)
			}
		}
	}

	if negative {
		for n, t := range ticks {
			ticks[n] = -t
		}
		slices.Reverse(ticks)
	}
	if reverse {
		slices.Reverse(ticks)
	}
	return ticks
}

// Nice extends the domain outward to powers of ten.
func (s *Log) Nice(int) {
	lo, hi := s.d0, s.d1
	reverse := hi < lo
	if reverse {
		lo, hi = hi, lo
	}
	lo = powTransform(math.Floor(logTransform(lo)))
	hi = powTransform(math.Ceil(logTransform(hi)))
	if reverse {
		lo, hi = hi, lo
	}
	s.d0, s.d1 = lo, hi
}

// TickFormat returns a formatter that prints each tick with the decimals
// its own magnitude needs.
func (s *Log) TickFormat(_ int, spec string) func(float64) string {
	if spec != "" {
		return s.formatter(spec)
	}
	return func(v float64) string {
		return s.formatter(fmt.Sprintf("%%.%df", precisionFixed(v)))(v)
	}
}

var (
	_ Scale     = (*Log)(nil)
	_ Clamper   = (*Log)(nil)
	_ Nicer     = (*Log)(nil)
	_ Rounder   = (*Log)(nil)
	_ Unknowner = (*Log)(nil)
)
