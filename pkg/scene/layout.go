package scene

import "math"

// layout assigns boxes to n and its layout descendants. Drawn content below
// a surface's <svg> is not laid out.
func (d *Document) layout(n *Node, b Box) {
	n.box = b
	if n.Tag == TagSVG {
		return
	}
	switch n.Style.Display {
	case DisplayNone:
		for _, c := range n.children {
			d.layout(c, Box{X: b.X, Y: b.Y})
		}
	case DisplayFlex:
		d.layoutFlex(n)
	default:
		d.layoutBlock(n)
	}
}

// layoutBlock gives every child the parent's box, shrunk by the child's
// margins and clamped to its explicit size.
func (d *Document) layoutBlock(n *Node) {
	b := n.box
	for _, c := range n.children {
		if c.Tag == TagSVG {
			d.layout(c, b)
			continue
		}
		m := d.margins(c, b)
		cb := Box{
			X:      b.X + m.left,
			Y:      b.Y + m.top,
			Width:  math.Max(0, b.Width-m.left-m.right),
			Height: math.Max(0, b.Height-m.top-m.bottom),
		}
		if !c.Style.Width.IsAuto() {
			cb.Width = c.Style.Width.Resolve(b.Width, d.fontSize)
		}
		if !c.Style.Height.IsAuto() {
			cb.Height = c.Style.Height.Resolve(b.Height, d.fontSize)
		}
		d.layout(c, cb)
	}
}

type resolvedMargins struct{ top, right, bottom, left float64 }

func (d *Document) margins(n *Node, parent Box) resolvedMargins {
	m := n.Style.Margin
	return resolvedMargins{
		top:    m.Top.Resolve(parent.Height, d.fontSize),
		right:  m.Right.Resolve(parent.Width, d.fontSize),
		bottom: m.Bottom.Resolve(parent.Height, d.fontSize),
		left:   m.Left.Resolve(parent.Width, d.fontSize),
	}
}

// layoutFlex places children along the main axis in order (or reversed),
// giving fixed-size items their size and sharing the remaining space among
// growing items by weight. On the cross axis items stretch unless sized.
func (d *Document) layoutFlex(n *Node) {
	b := n.box
	dir := n.Style.Direction
	if dir == "" {
		dir = Row
	}
	row := dir.IsRow()

	mainTotal, crossTotal := b.Height, b.Width
	if row {
		mainTotal, crossTotal = b.Width, b.Height
	}

	type item struct {
		node                    *Node
		main, cross             float64
		mainBefore, mainAfter   float64
		crossBefore, crossAfter float64
	}

	items := make([]item, 0, len(n.children))
	var used, grow float64
	for _, c := range n.children {
		if c.Style.Display == DisplayNone {
			d.layout(c, Box{X: b.X, Y: b.Y})
			continue
		}
		m := d.margins(c, b)
		it := item{node: c}
		mainLen, crossLen := c.Style.Height, c.Style.Width
		if row {
			mainLen, crossLen = c.Style.Width, c.Style.Height
			it.mainBefore, it.mainAfter = m.left, m.right
			it.crossBefore, it.crossAfter = m.top, m.bottom
		} else {
			it.mainBefore, it.mainAfter = m.top, m.bottom
			it.crossBefore, it.crossAfter = m.left, m.right
		}
		if !mainLen.IsAuto() {
			it.main = mainLen.Resolve(mainTotal, d.fontSize)
		}
		if !crossLen.IsAuto() {
			it.cross = crossLen.Resolve(crossTotal, d.fontSize)
		} else {
			it.cross = math.Max(0, crossTotal-it.crossBefore-it.crossAfter)
		}
		used += it.main + it.mainBefore + it.mainAfter
		grow += c.Style.Grow
		items = append(items, it)
	}

	free := math.Max(0, mainTotal-used)
	if grow > 0 {
		for i := range items {
			if g := items[i].node.Style.Grow; g > 0 {
				items[i].main += free * g / grow
			}
		}
	}

	// Reversed items are placed from the end of the main axis, so their
	// physical right or bottom margin leads.
	cursor := 0.0
	place := func(it item) {
		lead, trail := it.mainBefore, it.mainAfter
		if dir.IsReverse() {
			lead, trail = trail, lead
		}
		start := cursor + lead
		cursor = start + it.main + trail
		if dir.IsReverse() {
			start = mainTotal - start - it.main
		}
		var cb Box
		if row {
			cb = Box{X: b.X + start, Y: b.Y + it.crossBefore, Width: it.main, Height: it.cross}
		} else {
			cb = Box{X: b.X + it.crossBefore, Y: b.Y + start, Width: it.cross, Height: it.main}
		}
		d.layout(it.node, cb)
	}
	for _, it := range items {
		place(it)
	}
}
