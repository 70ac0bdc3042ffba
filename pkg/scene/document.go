// Package scene is the structural host that chart frames render into.
//
// # Overview
//
// A [Document] owns a tree of [Node] values. Layout nodes carry inline
// [Style] directives (flex direction, grow, explicit sizes, margins) and
// are positioned by a small flex layout engine. Drawing regions are
// surfaces ([TagSVGSurface]) whose inner <svg> element receives content
// produced by axes and series.
//
// # Measure and Draw
//
// Regions register listeners for [EventMeasure] and [EventDraw] with
// [Node.On]. When a subtree has requested a redraw ([Node.RequestRedraw]),
// [Document.Flush] lays the document out, then fires measure on every
// listening region of the subtree with its pixel size, and only after all
// of them have been measured fires draw. A region is therefore always
// measured before it is drawn, and every region sees scales that were
// ranged during the same flush.
//
// # Reconciling Data
//
// [DataJoin] maps a data array onto persistent child nodes, classifying
// them as entering, updating or exiting, so that structure built once per
// datum survives later renders.
//
//	doc := scene.NewDocument(800, 600)
//	frame.Render(scene.Select(doc.Root()))
//	if err := doc.Flush(ctx); err != nil {
//	    return err
//	}
//	svg := doc.SVG()
package scene

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cartesian/pkg/observability"
)

// DefaultFontSize is the pixel size of 1em.
const DefaultFontSize = 16.0

// Document is the root of a scene and the host that schedules measure and
// draw. It is not safe for concurrent use.
type Document struct {
	root       *Node
	width      float64
	height     float64
	fontSize   float64
	pixelRatio float64
	logger     *log.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for flush diagnostics.
func WithLogger(l *log.Logger) Option { return func(d *Document) { d.logger = l } }

// WithFontSize sets the pixel size of 1em.
func WithFontSize(px float64) Option { return func(d *Document) { d.fontSize = px } }

// WithPixelRatio sets the device pixel ratio reported in event details.
func WithPixelRatio(r float64) Option { return func(d *Document) { d.pixelRatio = r } }

// NewDocument creates a document with a viewport of the given size.
func NewDocument(width, height float64, opts ...Option) *Document {
	d := &Document{
		root:       NewNode(TagDiv),
		width:      width,
		height:     height,
		fontSize:   DefaultFontSize,
		pixelRatio: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return d
}

// Root returns the root node.
func (d *Document) Root() *Node { return d.root }

// Size returns the viewport size.
func (d *Document) Size() (width, height float64) { return d.width, d.height }

// FontSize returns the pixel size of 1em.
func (d *Document) FontSize() float64 { return d.fontSize }

// Resize changes the viewport and requests a redraw of every auto-resize
// node, as a window resize would.
func (d *Document) Resize(width, height float64) {
	d.width, d.height = width, height
	d.root.walk(func(n *Node) bool {
		if n.HasAttr("auto-resize") {
			n.RequestRedraw()
		}
		return true
	})
}

// Flush lays the document out and, for every subtree that requested a
// redraw, fires measure on each listening node followed by draw on each
// listening node. The first listener error aborts the flush and is
// returned wrapped with the failing region.
func (d *Document) Flush(ctx context.Context) (err error) {
	regions := collectRedraw(d.root, nil, false)
	if len(regions) == 0 {
		return nil
	}

	hooks := observability.Render()
	start := time.Now()
	hooks.OnFlushStart(ctx, len(regions))
	defer func() {
		hooks.OnFlushComplete(ctx, len(regions), time.Since(start), err)
	}()

	d.layout(d.root, Box{Width: d.width, Height: d.height})
	d.logger.Debug("Flushing scene", "regions", len(regions), "width", d.width, "height", d.height)

	details := make([]Detail, len(regions))
	for i, n := range regions {
		if err := ctx.Err(); err != nil {
			return err
		}
		detail := d.detail(n)
		details[i] = detail
		n.lastBox, n.measured = n.box, true
		hooks.OnMeasure(ctx, n.Class(), detail.Width, detail.Height)
		if err := n.Dispatch(Event{Type: EventMeasure, Detail: detail}); err != nil {
			return fmt.Errorf("measure %s: %w", describe(n), err)
		}
	}

	for i, n := range regions {
		if err := ctx.Err(); err != nil {
			return err
		}
		drawStart := time.Now()
		err := n.Dispatch(Event{Type: EventDraw, Detail: details[i]})
		hooks.OnDraw(ctx, n.Class(), time.Since(drawStart), err)
		if err != nil {
			return fmt.Errorf("draw %s: %w", describe(n), err)
		}
	}
	return nil
}

// collectRedraw appends, in document order, the listening nodes of every
// subtree that requested a redraw, clearing the requests.
func collectRedraw(n *Node, regions []*Node, pending bool) []*Node {
	pending = pending || n.redraw
	n.redraw = false
	if pending && (n.Listens(EventMeasure) || n.Listens(EventDraw)) {
		regions = append(regions, n)
	}
	for _, c := range n.children {
		regions = collectRedraw(c, regions, pending)
	}
	return regions
}

func (d *Document) detail(n *Node) Detail {
	resized := !n.measured || n.lastBox.Width != n.box.Width || n.lastBox.Height != n.box.Height
	return Detail{
		Width:      n.box.Width,
		Height:     n.box.Height,
		PixelRatio: d.pixelRatio,
		Resized:    resized,
	}
}

func describe(n *Node) string {
	if c := n.Class(); c != "" {
		return n.Tag + "." + c
	}
	return n.Tag
}
