package scene

import "testing"

func TestLengthResolve(t *testing.T) {
	tests := []struct {
		name string
		l    Length
		want float64
	}{
		{"auto", Length{}, 0},
		{"px", Px(12), 12},
		{"em", Em(2), 32},
		{"percent", Percent(25), 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Resolve(200, 16); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyleString(t *testing.T) {
	s := Style{Display: DisplayFlex, Direction: ColumnReverse, Grow: 1, Height: Em(2)}
	s.SetMargin("left", Em(4))
	s.SetMargin("diagonal", Em(1))

	want := "display: flex; flex-direction: column-reverse; flex: 1; height: 2em; margin-left: 4em"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func layoutOf(t *testing.T, w, h float64, build func(root *Node)) *Document {
	t.Helper()
	doc := NewDocument(w, h)
	build(doc.Root())
	doc.layout(doc.root, Box{Width: w, Height: h})
	return doc
}

func TestLayoutFlexColumn(t *testing.T) {
	var label, plot *Node
	layoutOf(t, 200, 100, func(root *Node) {
		col := root.Append(TagDiv)
		col.Style = Style{Display: DisplayFlex, Direction: Column}
		label = col.Append(TagDiv)
		label.Style.Height = Em(2)
		plot = col.Append(TagDiv)
		plot.Style.Grow = 1
	})

	if got, want := label.Box(), (Box{X: 0, Y: 0, Width: 200, Height: 32}); got != want {
		t.Errorf("label box = %+v, want %+v", got, want)
	}
	if got, want := plot.Box(), (Box{X: 0, Y: 32, Width: 200, Height: 68}); got != want {
		t.Errorf("plot box = %+v, want %+v", got, want)
	}
}

func TestLayoutFlexReverse(t *testing.T) {
	tests := []struct {
		name      string
		dir       Direction
		wantFixed Box
		wantGrow  Box
	}{
		{"row", Row, Box{X: 0, Width: 50, Height: 80}, Box{X: 50, Width: 150, Height: 80}},
		{"row-reverse", RowReverse, Box{X: 150, Width: 50, Height: 80}, Box{X: 0, Width: 150, Height: 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fixed, grow *Node
			layoutOf(t, 200, 80, func(root *Node) {
				row := root.Append(TagDiv)
				row.Style = Style{Display: DisplayFlex, Direction: tt.dir}
				fixed = row.Append(TagDiv)
				fixed.Style.Width = Px(50)
				grow = row.Append(TagDiv)
				grow.Style.Grow = 1
			})
			if got := fixed.Box(); got != tt.wantFixed {
				t.Errorf("fixed box = %+v, want %+v", got, tt.wantFixed)
			}
			if got := grow.Box(); got != tt.wantGrow {
				t.Errorf("grow box = %+v, want %+v", got, tt.wantGrow)
			}
		})
	}
}

func TestLayoutMarginsCountAgainstMainAxis(t *testing.T) {
	var axis *Node
	layoutOf(t, 300, 100, func(root *Node) {
		row := root.Append(TagDiv)
		row.Style = Style{Display: DisplayFlex, Direction: Row}
		plot := row.Append(TagDiv)
		plot.Style.Grow = 1
		axis = row.Append(TagDiv)
		axis.Style.Width = Em(3)
		axis.Style.SetMargin("right", Em(1))
	})

	want := Box{X: 300 - 16 - 48, Width: 48, Height: 100}
	if got := axis.Box(); got != want {
		t.Errorf("axis box = %+v, want %+v", got, want)
	}
}

func TestLayoutMarginsKeepPhysicalSide(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		side string
		want Box
	}{
		{"row right", Row, "right", Box{X: 0, Width: 50, Height: 100}},
		{"row left", Row, "left", Box{X: 10, Width: 50, Height: 100}},
		{"row-reverse right", RowReverse, "right", Box{X: 140, Width: 50, Height: 100}},
		{"row-reverse left", RowReverse, "left", Box{X: 150, Width: 50, Height: 100}},
		{"column-reverse bottom", ColumnReverse, "bottom", Box{Y: 40, Width: 200, Height: 50}},
		{"column-reverse top", ColumnReverse, "top", Box{Y: 50, Width: 200, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item *Node
			layoutOf(t, 200, 100, func(root *Node) {
				flex := root.Append(TagDiv)
				flex.Style = Style{Display: DisplayFlex, Direction: tt.dir}
				item = flex.Append(TagDiv)
				if tt.dir.IsRow() {
					item.Style.Width = Px(50)
				} else {
					item.Style.Height = Px(50)
				}
				item.Style.SetMargin(tt.side, Px(10))
			})
			if got := item.Box(); got != tt.want {
				t.Errorf("item box = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLayoutDisplayNone(t *testing.T) {
	var hidden, child, sibling *Node
	layoutOf(t, 100, 100, func(root *Node) {
		col := root.Append(TagDiv)
		col.Style = Style{Display: DisplayFlex, Direction: Column}
		hidden = col.Append(TagDiv)
		hidden.Style = Style{Display: DisplayNone, Height: Em(2)}
		child = hidden.Append(TagDiv)
		sibling = col.Append(TagDiv)
		sibling.Style.Grow = 1
	})

	if got := hidden.Box(); got.Width != 0 || got.Height != 0 {
		t.Errorf("hidden box = %+v, want zero size", got)
	}
	if got := child.Box(); got.Width != 0 || got.Height != 0 {
		t.Errorf("hidden child box = %+v, want zero size", got)
	}
	if got := sibling.Box().Height; got != 100 {
		t.Errorf("sibling height = %v, want 100", got)
	}
}

func TestLayoutSurfaceFillsBox(t *testing.T) {
	var surface *Node
	layoutOf(t, 120, 60, func(root *Node) {
		surface = root.Append(TagSVGSurface)
		surface.Style.SetMargin("top", Px(10))
	})

	inner := surface.Select(TagSVG)
	if inner == nil {
		t.Fatal("surface has no inner svg")
	}
	want := Box{Y: 10, Width: 120, Height: 50}
	if got := inner.Box(); got != want {
		t.Errorf("inner svg box = %+v, want %+v", got, want)
	}
}
