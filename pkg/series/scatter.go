package series

import "github.com/matzehuels/cartesian/pkg/scene"

// Scatter draws a circle per defined point of a datum.
type Scatter struct {
	scales
	style style
}

// NewScatter returns a scatter series.
func NewScatter(opts ...Option) *Scatter {
	s := &Scatter{style: newStyle(opts)}
	if s.style.fill == "none" {
		s.style.fill = s.style.stroke
	}
	return s
}

// Render draws the datum into target.
func (s *Scatter) Render(target *scene.Node, datum any, t *scene.Transition) error {
	if err := s.check("point", target); err != nil {
		return err
	}
	pts, err := points("point", datum)
	if err != nil {
		return err
	}

	defined := make([]Point, 0, len(pts))
	for _, p := range pts {
		if p.Defined() {
			defined = append(defined, p)
		}
	}

	joined := scene.DataJoin{Element: "circle", Class: "point"}.Join(target, scene.Values(defined))
	for i, n := range joined.Nodes() {
		p := defined[i]
		n.SetAttr("cx", num(s.x.Apply(p.X)))
		n.SetAttr("cy", num(s.y.Apply(p.Y)))
		n.SetAttr("r", num(s.style.radius))
		n.SetAttr("fill", s.style.fill)
		n.SetAttr("stroke", s.style.stroke)
		applyTransition(n, t)
	}
	return nil
}

var _ Series = (*Scatter)(nil)
