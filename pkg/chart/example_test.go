package chart_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/cartesian/pkg/chart"
	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/scene"
	"github.com/matzehuels/cartesian/pkg/series"
)

func ExampleNew() {
	// Configure a frame with linear scales and a left y axis
	x, y := scale.NewLinear(), scale.NewLinear()
	frame := chart.New(x, y).
		SetXDomain(0, 10).
		SetYDomain(0, 50).
		SetYOrient(chart.OrientLeft).
		SetChartLabel("Revenue")

	// Bind the data to the document root and render
	doc := scene.NewDocument(400, 300)
	doc.Root().Datum = []series.Point{{X: 0, Y: 10}, {X: 5, Y: 40}, {X: 10, Y: 25}}
	if err := frame.Render(scene.Select(doc.Root())); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := doc.Flush(context.Background()); err != nil {
		fmt.Println("Error:", err)
		return
	}

	for _, class := range []string{"chart-label", "y-axis", "plot-area", "x-axis"} {
		b := doc.Root().Select("." + class).Box()
		fmt.Printf("%-11s x=%v y=%v %vx%v\n", class, b.X, b.Y, b.Width, b.Height)
	}
	lo, hi := y.Range()
	fmt.Printf("y range: [%v, %v]\n", lo, hi)
	// Output:
	// chart-label x=64 y=0 336x32
	// y-axis      x=16 y=32 48x220
	// plot-area   x=64 y=32 336x220
	// x-axis      x=64 y=252 336x32
	// y range: [220, 0]
}

func ExampleCartesian_SetPlotArea() {
	// Gridlines behind a scatter plot, sharing the frame's scales
	x, y := scale.NewLinear(), scale.NewLinear()
	frame := chart.New(x, y).
		SetXDomain(0, 4).
		SetYDomain(0, 4).
		SetXOrient(chart.OrientNone).
		SetYOrient(chart.OrientNone).
		SetPlotArea(series.NewMulti(series.NewGridline(), series.NewScatter()))

	doc := scene.NewDocument(200, 200)
	doc.Root().Datum = []series.Point{{X: 1, Y: 1}, {X: 3, Y: 2}}
	_ = frame.Render(scene.Select(doc.Root()))
	_ = doc.Flush(context.Background())

	for _, c := range doc.Root().SelectAll("circle.point") {
		fmt.Println(c.Attr("cx"), c.Attr("cy"))
	}
	// Output:
	// 50 150
	// 150 100
}

func ExampleConst() {
	title := chart.Const("Quarterly revenue")
	fmt.Println(title(nil))
	// Output: Quarterly revenue
}
