package series

import (
	"strings"

	"github.com/matzehuels/cartesian/pkg/scene"
)

// Line draws a polyline through the points of a datum. Undefined points
// split the line into segments.
type Line struct {
	scales
	style style
}

// NewLine returns a line series.
func NewLine(opts ...Option) *Line {
	return &Line{style: newStyle(opts)}
}

// Render draws the datum into target.
func (l *Line) Render(target *scene.Node, datum any, t *scene.Transition) error {
	if err := l.check("line", target); err != nil {
		return err
	}
	pts, err := points("line", datum)
	if err != nil {
		return err
	}

	joined := scene.DataJoin{Element: "path", Class: "line"}.Join(target, []any{pts})
	for _, n := range joined.Nodes() {
		n.SetAttr("d", l.path(pts))
		n.SetAttr("fill", "none")
		n.SetAttr("stroke", l.style.stroke)
		n.SetAttr("stroke-width", num(l.style.strokeWidth))
		applyTransition(n, t)
	}
	return nil
}

func (l *Line) path(pts []Point) string {
	var b strings.Builder
	move := true
	for _, p := range pts {
		if !p.Defined() {
			move = true
			continue
		}
		if move {
			b.WriteByte('M')
			move = false
		} else {
			b.WriteByte('L')
		}
		b.WriteString(num(l.x.Apply(p.X)))
		b.WriteByte(',')
		b.WriteString(num(l.y.Apply(p.Y)))
	}
	return b.String()
}

var _ Series = (*Line)(nil)
