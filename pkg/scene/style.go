package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the unit of a Length.
type Unit int

const (
	unitAuto Unit = iota
	UnitPx
	UnitEm
	UnitPercent
)

// Length is a layout dimension. The zero value means "auto": the layout
// engine stretches or shrinks the node as its container dictates.
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns a length in pixels.
func Px(v float64) Length { return Length{Value: v, Unit: UnitPx} }

// Em returns a length relative to the document font size.
func Em(v float64) Length { return Length{Value: v, Unit: UnitEm} }

// Percent returns a length relative to the containing box.
func Percent(v float64) Length { return Length{Value: v, Unit: UnitPercent} }

// IsAuto reports whether l carries no explicit size.
func (l Length) IsAuto() bool { return l.Unit == unitAuto }

// Resolve converts l to pixels. ref is the containing dimension used for
// percentages and em is the font size in pixels.
func (l Length) Resolve(ref, em float64) float64 {
	switch l.Unit {
	case UnitPx:
		return l.Value
	case UnitEm:
		return l.Value * em
	case UnitPercent:
		return l.Value * ref / 100
	}
	return 0
}

func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	switch l.Unit {
	case UnitPx:
		return v + "px"
	case UnitEm:
		return v + "em"
	case UnitPercent:
		return v + "%"
	}
	return "auto"
}

// Display selects how a node lays out its children.
type Display int

const (
	// DisplayBlock gives every child the full content box of its parent.
	DisplayBlock Display = iota
	// DisplayFlex lays children out along a main axis.
	DisplayFlex
	// DisplayNone removes the node and its subtree from layout.
	DisplayNone
)

// Direction is a flex main axis.
type Direction string

const (
	Row           Direction = "row"
	RowReverse    Direction = "row-reverse"
	Column        Direction = "column"
	ColumnReverse Direction = "column-reverse"
)

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether items are placed from the end of the main axis.
func (d Direction) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// Edges holds per-side lengths (margins).
type Edges struct {
	Top, Right, Bottom, Left Length
}

// Style holds the inline layout directives of a node.
type Style struct {
	Display   Display
	Direction Direction
	Grow      float64
	Width     Length
	Height    Length
	Margin    Edges
	TextAlign string  // "", "start", "center", "end"
	Rotate    float64 // degrees, applied to text content
	Overflow  string  // "", "hidden"
}

// SetMargin sets the margin on the named side ("top", "right", "bottom",
// "left"). Unknown sides are ignored.
func (s *Style) SetMargin(side string, l Length) {
	switch side {
	case "top":
		s.Margin.Top = l
	case "right":
		s.Margin.Right = l
	case "bottom":
		s.Margin.Bottom = l
	case "left":
		s.Margin.Left = l
	}
}

// String renders the style as CSS declarations, for debugging and for the
// data-style attribute of serialized output.
func (s Style) String() string {
	var parts []string
	add := func(k, v string) { parts = append(parts, k+": "+v) }

	switch s.Display {
	case DisplayFlex:
		add("display", "flex")
		dir := s.Direction
		if dir == "" {
			dir = Row
		}
		add("flex-direction", string(dir))
	case DisplayNone:
		add("display", "none")
	}
	if s.Grow > 0 {
		add("flex", strconv.FormatFloat(s.Grow, 'f', -1, 64))
	}
	if !s.Width.IsAuto() {
		add("width", s.Width.String())
	}
	if !s.Height.IsAuto() {
		add("height", s.Height.String())
	}
	for _, m := range []struct {
		side string
		l    Length
	}{{"top", s.Margin.Top}, {"right", s.Margin.Right}, {"bottom", s.Margin.Bottom}, {"left", s.Margin.Left}} {
		if !m.l.IsAuto() {
			add("margin-"+m.side, m.l.String())
		}
	}
	if s.TextAlign != "" {
		add("text-align", s.TextAlign)
	}
	if s.Rotate != 0 {
		add("transform", fmt.Sprintf("rotate(%gdeg)", s.Rotate))
	}
	if s.Overflow != "" {
		add("overflow", s.Overflow)
	}
	return strings.Join(parts, "; ")
}
