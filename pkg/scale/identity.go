package scale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Identity is a scale whose domain and range are the same interval. Setting
// either sets both, so Apply and Invert return their input.
type Identity struct {
	lo, hi float64
}

// NewIdentity returns an identity scale over [0, 1].
func NewIdentity() *Identity { return &Identity{hi: 1} }

func (s *Identity) Apply(v float64) float64 { return v }

func (s *Identity) Invert(v float64) float64 { return v }

func (s *Identity) Domain() (lo, hi float64) { return s.lo, s.hi }

func (s *Identity) SetDomain(lo, hi float64) { s.lo, s.hi = lo, hi }

func (s *Identity) Range() (lo, hi float64) { return s.lo, s.hi }

func (s *Identity) SetRange(lo, hi float64) { s.lo, s.hi = lo, hi }

func (s *Identity) Ticks(count int) []float64 { return linearTicks(s.lo, s.hi, count) }

func (s *Identity) TickFormat(count int, spec string) func(float64) string {
	if count <= 0 {
		count = DefaultTickCount
	}
	if spec == "" {
		spec = fmt.Sprintf("%%.%df", precisionFixed(tickStep(s.lo, s.hi, count)))
	}
	p := message.NewPrinter(language.English)
	return func(v float64) string { return p.Sprintf(spec, v) }
}

var _ Scale = (*Identity)(nil)
