package series

import (
	"strconv"

	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/scene"
)

// Gridline draws a line across the plot at every tick of the x and y
// scales. It ignores its datum.
type Gridline struct {
	scales
	style  style
	xTicks int
	yTicks int
}

// NewGridline returns a gridline series with the default tick counts.
func NewGridline(opts ...Option) *Gridline {
	g := &Gridline{
		style:  newStyle(append([]Option{WithStroke("#e0e0e0"), WithStrokeWidth(1)}, opts...)),
		xTicks: scale.DefaultTickCount,
		yTicks: scale.DefaultTickCount,
	}
	return g
}

// SetXTicks sets the tick count used for vertical lines.
func (g *Gridline) SetXTicks(n int) { g.xTicks = n }

// SetYTicks sets the tick count used for horizontal lines.
func (g *Gridline) SetYTicks(n int) { g.yTicks = n }

// Render draws the gridlines into target.
func (g *Gridline) Render(target *scene.Node, _ any, t *scene.Transition) error {
	if err := g.check("gridline", target); err != nil {
		return err
	}
	xr0, xr1 := g.x.Range()
	yr0, yr1 := g.y.Range()

	key := func(d any, _ int) string { return strconv.FormatFloat(d.(float64), 'g', -1, 64) }

	xs := g.x.Ticks(g.xTicks)
	joined := scene.DataJoin{Element: "line", Class: "gridline-x", Key: key}.Join(target, scene.Values(xs))
	for i, n := range joined.Nodes() {
		x := num(g.x.Apply(xs[i]))
		n.SetAttr("x1", x).SetAttr("x2", x)
		n.SetAttr("y1", num(yr0)).SetAttr("y2", num(yr1))
		g.stroke(n, t)
	}

	ys := g.y.Ticks(g.yTicks)
	joined = scene.DataJoin{Element: "line", Class: "gridline-y", Key: key}.Join(target, scene.Values(ys))
	for i, n := range joined.Nodes() {
		y := num(g.y.Apply(ys[i]))
		n.SetAttr("x1", num(xr0)).SetAttr("x2", num(xr1))
		n.SetAttr("y1", y).SetAttr("y2", y)
		g.stroke(n, t)
	}
	return nil
}

func (g *Gridline) stroke(n *scene.Node, t *scene.Transition) {
	n.SetAttr("stroke", g.style.stroke)
	n.SetAttr("stroke-width", num(g.style.strokeWidth))
	applyTransition(n, t)
}

var _ Series = (*Gridline)(nil)
