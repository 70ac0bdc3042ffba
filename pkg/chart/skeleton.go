package chart

import "github.com/matzehuels/cartesian/pkg/scene"

// Region classes of a frame.
const (
	ClassContainer  = "cartesian-chart"
	ClassChartLabel = "chart-label"
	ClassPlotArea   = "plot-area"
	ClassXAxis      = "x-axis"
	ClassYAxis      = "y-axis"
	ClassXAxisLabel = "x-axis-label"
	ClassYAxisLabel = "y-axis-label"
)

// axisMargin is the offset that keeps labels and the x axis aligned with the
// plot area rather than with the y axis column.
var axisMargin = scene.Em(4)

// buildSkeleton describes the container of a frame and its regions for the
// given orientations. An x axis on top reverses the vertical stack and a y
// axis on the left reverses the horizontal row.
func buildSkeleton(surface string, xo, yo Orientation) scene.Template {
	label := scene.Template{
		Tag:   scene.TagDiv,
		Class: ClassChartLabel,
		Style: scene.Style{TextAlign: "center"},
	}
	label.Style.SetMargin(string(yo), axisMargin)

	row := scene.Template{
		Tag:   scene.TagDiv,
		Style: scene.Style{Grow: 1, Display: scene.DisplayFlex, Direction: scene.Row},
		Children: []scene.Template{{
			Tag:   surface,
			Class: ClassPlotArea,
			Style: scene.Style{Grow: 1, Overflow: "hidden"},
		}},
	}
	if yo == OrientLeft {
		row.Style.Direction = scene.RowReverse
	}
	if yo != OrientNone {
		row.Children = append(row.Children,
			scene.Template{
				Tag:   scene.TagSVGSurface,
				Class: ClassYAxis,
				Style: scene.Style{Width: scene.Em(3)},
			},
			scene.Template{
				Tag:   scene.TagDiv,
				Style: scene.Style{Width: scene.Em(1)},
				Children: []scene.Template{{
					Tag:   scene.TagDiv,
					Class: ClassYAxisLabel,
					Style: scene.Style{TextAlign: "center", Rotate: -90},
				}},
			},
		)
	}

	stack := scene.Template{
		Tag:      scene.TagDiv,
		Style:    scene.Style{Grow: 1, Display: scene.DisplayFlex, Direction: scene.Column},
		Children: []scene.Template{row},
	}
	if xo == OrientTop {
		stack.Style.Direction = scene.ColumnReverse
	}
	if xo != OrientNone {
		xAxis := scene.Template{
			Tag:   scene.TagSVGSurface,
			Class: ClassXAxis,
			Style: scene.Style{Height: scene.Em(2)},
		}
		xAxis.Style.SetMargin(string(yo), axisMargin)
		xLabel := scene.Template{
			Tag:   scene.TagDiv,
			Class: ClassXAxisLabel,
			Style: scene.Style{Height: scene.Em(1), TextAlign: "center"},
		}
		xLabel.Style.SetMargin(string(yo), axisMargin)
		stack.Children = append(stack.Children, xAxis, xLabel)
	}

	return scene.Template{
		Tag:   scene.TagGroup,
		Class: ClassContainer,
		Style: scene.Style{
			Display:   scene.DisplayFlex,
			Direction: scene.Column,
			Width:     scene.Percent(100),
			Height:    scene.Percent(100),
		},
		Attrs:    map[string]string{"auto-resize": ""},
		Children: []scene.Template{label, stack},
	}
}

// build materializes the skeleton into a freshly entered container.
func build(container *scene.Node, t scene.Template) {
	container.Style = t.Style
	for k, v := range t.Attrs {
		container.SetAttr(k, v)
	}
	container.Build(t.Children...)
}
