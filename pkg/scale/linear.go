package scale

import "fmt"

// Linear is a continuous scale with a linear mapping. The zero domain and
// range are [0, 1].
type Linear struct {
	continuous
}

// NewLinear returns a linear scale with domain and range [0, 1].
func NewLinear() *Linear {
	return &Linear{continuous: newContinuous(identity, identity)}
}

// Ticks returns about count round values within the domain.
func (s *Linear) Ticks(count int) []float64 {
	return linearTicks(s.d0, s.d1, count)
}

// Nice extends the domain so that it starts and ends on round values for
// the given tick count.
func (s *Linear) Nice(count int) {
	if count <= 0 {
		count = DefaultTickCount
	}
	s.d0, s.d1 = niceDomain(s.d0, s.d1, count)
}

// TickFormat returns a formatter with just enough decimals for the tick
// step and locale digit grouping. A non-empty spec overrides the verb.
func (s *Linear) TickFormat(count int, spec string) func(float64) string {
	if count <= 0 {
		count = DefaultTickCount
	}
	if spec != "" {
		return s.formatter(spec)
	}
	return s.formatter(fmt.Sprintf("%%.%df", precisionFixed(tickStep(s.d0, s.d1, count))))
}

var (
	_ Scale     = (*Linear)(nil)
	_ Clamper   = (*Linear)(nil)
	_ Nicer     = (*Linear)(nil)
	_ Rounder   = (*Linear)(nil)
	_ Unknowner = (*Linear)(nil)
)
