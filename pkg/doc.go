// Package pkg provides the libraries behind the cartesian chart renderer.
//
// # Overview
//
// Cartesian lays a plot area out together with up to two axes, keeps the
// axes and the plot area on one pair of scales and writes the result as SVG,
// PNG or PDF. The pkg directory is organized in three layers:
//
//  1. Substrate: [scene] (node tree, reconciler, flex layout, SVG output)
//  2. Chart: [scale], [axis], [series] and the [chart] frame tying them
//     together
//  3. Orchestration: [pipeline] (spec, render, cache), [render]
//     (format conversion), [cache] (file and Redis artifact caches)
//
// # Architecture
//
// The data flow of a render:
//
//	TOML/JSON spec
//	      ↓
//	 [pipeline] package (decode, defaults, validation, hash)
//	      ↓
//	 [chart] package (orientations, skeleton, listeners)
//	      ↓
//	 [scene] package (layout, measure, draw)
//	      ↓
//	 [render] package (SVG → PNG/PDF)
//
// # Quick Start
//
//	x, y := scale.NewLinear(), scale.NewLinear()
//	frame := chart.New(x, y).
//	    SetXDomain(0, 10).
//	    SetYDomain(0, 100).
//	    SetYOrient(chart.OrientLeft)
//
//	doc := scene.NewDocument(800, 600)
//	doc.Root().Datum = points
//	if err := frame.Render(scene.Select(doc.Root())); err != nil {
//	    return err
//	}
//	if err := doc.Flush(ctx); err != nil {
//	    return err
//	}
//	svg := doc.SVG()
//
// # Supporting Packages
//
//   - [errors]: Structured error codes
//   - [observability]: Render, cache and request hooks
//   - [buildinfo]: Version information set at build time
//
// [scene]: github.com/matzehuels/cartesian/pkg/scene
// [scale]: github.com/matzehuels/cartesian/pkg/scale
// [axis]: github.com/matzehuels/cartesian/pkg/axis
// [series]: github.com/matzehuels/cartesian/pkg/series
// [chart]: github.com/matzehuels/cartesian/pkg/chart
// [pipeline]: github.com/matzehuels/cartesian/pkg/pipeline
// [render]: github.com/matzehuels/cartesian/pkg/render
// [cache]: github.com/matzehuels/cartesian/pkg/cache
// [errors]: github.com/matzehuels/cartesian/pkg/errors
// [observability]: github.com/matzehuels/cartesian/pkg/observability
// [buildinfo]: github.com/matzehuels/cartesian/pkg/buildinfo
package pkg
