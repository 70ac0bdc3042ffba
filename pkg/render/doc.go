// Package render converts rendered chart documents into output formats.
//
// A chart is always produced as SVG by [scene.Document.SVG]. The [ToPDF] and
// [ToPNG] functions convert that SVG using the external rsvg-convert tool
// (from librsvg):
//
//	svg := doc.SVG()
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [Convert] dispatches on a format name and is what the CLI and the HTTP API
// call for every requested artifact.
//
// [scene.Document.SVG]: github.com/matzehuels/cartesian/pkg/scene.Document.SVG
package render
