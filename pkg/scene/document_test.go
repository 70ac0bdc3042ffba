package scene

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newRegions(doc *Document, classes ...string) (*Node, []*Node) {
	group := doc.Root().Append(TagGroup)
	group.Style = Style{Display: DisplayFlex, Direction: Row}
	regions := make([]*Node, len(classes))
	for i, c := range classes {
		r := group.Append(TagSVGSurface)
		r.SetAttr("class", c)
		r.Style.Grow = 1
		regions[i] = r
	}
	return group, regions
}

func TestFlushMeasuresBeforeDraw(t *testing.T) {
	doc := NewDocument(200, 100)
	group, regions := newRegions(doc, "a", "b")

	var events []string
	for _, r := range regions {
		r.On(EventMeasure, func(ev Event) error {
			events = append(events, "measure "+ev.Target.Class())
			return nil
		})
		r.On(EventDraw, func(ev Event) error {
			events = append(events, "draw "+ev.Target.Class())
			return nil
		})
	}
	group.RequestRedraw()

	if err := doc.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := "measure a,measure b,draw a,draw b"
	if got := strings.Join(events, ","); got != want {
		t.Errorf("events = %q, want %q", got, want)
	}
	if group.RedrawRequested() {
		t.Error("redraw flag should be cleared after flush")
	}
}

func TestFlushWithoutRedrawIsNoop(t *testing.T) {
	doc := NewDocument(200, 100)
	_, regions := newRegions(doc, "a")

	called := false
	regions[0].On(EventDraw, func(Event) error {
		called = true
		return nil
	})
	if err := doc.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if called {
		t.Error("draw fired without a redraw request")
	}
}

func TestFlushDetail(t *testing.T) {
	doc := NewDocument(200, 100, WithPixelRatio(2))
	group, regions := newRegions(doc, "a", "b")
	group.SetAttr("auto-resize", "")

	var got []Detail
	regions[0].On(EventMeasure, func(ev Event) error {
		got = append(got, ev.Detail)
		return nil
	})

	ctx := context.Background()
	group.RequestRedraw()
	if err := doc.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	group.RequestRedraw()
	if err := doc.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	doc.Resize(400, 100)
	if err := doc.Flush(ctx); err != nil {
		t.Fatal(err)
	}

	want := []Detail{
		{Width: 100, Height: 100, PixelRatio: 2, Resized: true},
		{Width: 100, Height: 100, PixelRatio: 2, Resized: false},
		{Width: 200, Height: 100, PixelRatio: 2, Resized: true},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d measures, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("measure %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFlushListenerError(t *testing.T) {
	doc := NewDocument(200, 100)
	group, regions := newRegions(doc, "plot-area")

	boom := errors.New("boom")
	regions[0].On(EventDraw, func(Event) error { return boom })
	group.RequestRedraw()

	err := doc.Flush(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Flush error = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "svg-surface.plot-area") {
		t.Errorf("error %q does not name the region", err)
	}
}

func TestFlushCancelled(t *testing.T) {
	doc := NewDocument(200, 100)
	group, regions := newRegions(doc, "a")
	regions[0].On(EventMeasure, func(Event) error { return nil })
	group.RequestRedraw()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := doc.Flush(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Flush error = %v, want context.Canceled", err)
	}
}

func TestOnReplacesListener(t *testing.T) {
	n := NewNode(TagDiv)
	count := 0
	for range 3 {
		n.On(EventDraw, func(Event) error {
			count++
			return nil
		})
	}
	if err := n.Dispatch(Event{Type: EventDraw}); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("listener ran %d times, want 1", count)
	}

	n.On(EventDraw, nil)
	if n.Listens(EventDraw) {
		t.Error("nil listener should remove the registration")
	}
}

func TestSelect(t *testing.T) {
	root := NewNode(TagDiv)
	root.Build(Template{
		Tag:   TagDiv,
		Class: "outer",
		Children: []Template{
			{Tag: TagSVGSurface, Class: "plot-area"},
			{Tag: TagDiv, Class: "x-axis label"},
		},
	})

	if root.Select(".plot-area") == nil {
		t.Error("Select(.plot-area) = nil")
	}
	if got := root.Select("div.label"); got == nil || got.Class() != "x-axis label" {
		t.Errorf("Select(div.label) = %v", got)
	}
	if root.Select("svg-surface.label") != nil {
		t.Error("Select(svg-surface.label) should not match")
	}
	if got := len(root.SelectAll(TagDiv)); got != 2 {
		t.Errorf("SelectAll(div) = %d nodes, want 2", got)
	}
}

func TestTemplateClasses(t *testing.T) {
	tmpl := Template{
		Tag:   TagDiv,
		Class: "root",
		Children: []Template{
			{Tag: TagDiv, Children: []Template{{Tag: TagSVGSurface, Class: "y-axis"}}},
		},
	}
	if got := strings.Join(tmpl.Classes(), ","); got != "root,y-axis" {
		t.Errorf("Classes() = %q", got)
	}
}

func TestFlushSiblingSubtrees(t *testing.T) {
	doc := NewDocument(200, 100)
	var drawn []string
	for _, class := range []string{"first", "second"} {
		_, regions := newRegions(doc, class)
		regions[0].On(EventDraw, func(ev Event) error {
			drawn = append(drawn, ev.Target.Class())
			return nil
		})
		regions[0].Parent().RequestRedraw()
	}

	if err := doc.Flush(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(drawn, ","); got != "first,second" {
		t.Errorf("drawn = %q, want both subtrees", got)
	}
}
