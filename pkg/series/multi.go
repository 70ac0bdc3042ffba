package series

import (
	"fmt"

	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/scene"
)

// Multi renders several series into the same region, each in its own group,
// sharing one pair of scales.
type Multi struct {
	series  []Series
	mapping func(datum any, index int) any
}

// NewMulti returns a series that renders each of ss in order.
func NewMulti(ss ...Series) *Multi {
	return &Multi{series: ss}
}

// Series returns the child series.
func (m *Multi) Series() []Series { return m.series }

// SetMapping sets the function selecting the datum of the i-th child. By
// default every child receives the whole datum.
func (m *Multi) SetMapping(fn func(datum any, index int) any) { m.mapping = fn }

// SetXScale sets the x scale of every child.
func (m *Multi) SetXScale(s scale.Scale) {
	for _, c := range m.series {
		c.SetXScale(s)
	}
}

// SetYScale sets the y scale of every child.
func (m *Multi) SetYScale(s scale.Scale) {
	for _, c := range m.series {
		c.SetYScale(s)
	}
}

// Render draws every child into a group of its own, in order.
func (m *Multi) Render(target *scene.Node, datum any, t *scene.Transition) error {
	if target == nil {
		return errors.New(errors.ErrCodeInvalidInput, "multi series: nil render target")
	}
	joined := scene.DataJoin{Element: "g", Class: "multi"}.Join(target, make([]any, len(m.series)))
	for i, g := range joined.Nodes() {
		d := datum
		if m.mapping != nil {
			d = m.mapping(datum, i)
		}
		if err := m.series[i].Render(g, d, t); err != nil {
			return fmt.Errorf("multi series %d: %w", i, err)
		}
	}
	return nil
}

var _ Series = (*Multi)(nil)
