package axis

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/cartesian/pkg/errors"
	"github.com/matzehuels/cartesian/pkg/scale"
	"github.com/matzehuels/cartesian/pkg/scene"
)

func linear(lo, hi, r0, r1 float64) *scale.Linear {
	s := scale.NewLinear()
	s.SetDomain(lo, hi)
	s.SetRange(r0, r1)
	return s
}

func labels(target *scene.Node) []string {
	var out []string
	for _, t := range target.SelectAll("text") {
		out = append(out, t.Text)
	}
	return out
}

func TestNew(t *testing.T) {
	for _, o := range []string{Top, Bottom, Left, Right} {
		a, err := ForOrient(o)
		if err != nil {
			t.Fatalf("ForOrient(%q): %v", o, err)
		}
		if a.Orient() != o || a.TickSize() != 6 {
			t.Errorf("ForOrient(%q) = orient %q size %v", o, a.Orient(), a.TickSize())
		}
	}
	if _, err := New("diagonal"); !errors.Is(err, errors.ErrCodeInvalidOrientation) {
		t.Errorf("New(diagonal) error = %v, want INVALID_ORIENTATION", err)
	}
}

func TestRenderBottom(t *testing.T) {
	target := scene.NewNode(scene.TagSVG)
	a, _ := New(Bottom)
	a.SetScale(linear(0, 10, 0, 100))
	a.SetTicks(5)

	if err := a.Render(target, nil); err != nil {
		t.Fatal(err)
	}

	want := []string{"0", "2", "4", "6", "8", "10"}
	if got := labels(target); !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	ticks := target.SelectAll("g.tick")
	if got := ticks[1].Attr("transform"); got != "translate(20,0)" {
		t.Errorf("tick transform = %q", got)
	}
	if got := ticks[1].Select("line").Attr("y2"); got != "6" {
		t.Errorf("tick line y2 = %q, want 6", got)
	}
	if got := target.Select("path.domain").Attr("d"); got != "M0,6V0H100V6" {
		t.Errorf("domain path = %q", got)
	}
}

func TestRenderOrientations(t *testing.T) {
	tests := []struct {
		orient     string
		transform  string
		lineAttr   string
		lineValue  string
		textAnchor string
		domain     string
	}{
		{Top, "translate(50,0)", "y2", "-6", "middle", "M0,-6V0H100V-6"},
		{Left, "translate(0,50)", "x2", "-6", "end", "M-6,0H0V100H-6"},
		{Right, "translate(0,50)", "x2", "6", "start", "M6,0H0V100H6"},
	}
	for _, tt := range tests {
		t.Run(tt.orient, func(t *testing.T) {
			target := scene.NewNode(scene.TagSVG)
			a, _ := New(tt.orient)
			a.SetScale(linear(0, 10, 0, 100))
			a.SetTickValues([]float64{5})
			if err := a.Render(target, nil); err != nil {
				t.Fatal(err)
			}
			tick := target.Select("g.tick")
			if got := tick.Attr("transform"); got != tt.transform {
				t.Errorf("transform = %q, want %q", got, tt.transform)
			}
			if got := tick.Select("line").Attr(tt.lineAttr); got != tt.lineValue {
				t.Errorf("line %s = %q, want %q", tt.lineAttr, got, tt.lineValue)
			}
			if got := tick.Select("text").Attr("text-anchor"); got != tt.textAnchor {
				t.Errorf("text-anchor = %q, want %q", got, tt.textAnchor)
			}
			if got := target.Select("path.domain").Attr("d"); got != tt.domain {
				t.Errorf("domain = %q, want %q", got, tt.domain)
			}
		})
	}
}

func TestRenderReusesTicks(t *testing.T) {
	target := scene.NewNode(scene.TagSVG)
	a, _ := New(Left)
	a.SetScale(linear(0, 10, 100, 0))
	a.SetTickValues([]float64{1, 2, 3})
	if err := a.Render(target, nil); err != nil {
		t.Fatal(err)
	}
	first := target.SelectAll("g.tick")

	a.SetTickValues([]float64{2, 3, 4})
	if err := a.Render(target, nil); err != nil {
		t.Fatal(err)
	}
	second := target.SelectAll("g.tick")

	if len(second) != 3 {
		t.Fatalf("got %d ticks, want 3", len(second))
	}
	if second[0] != first[1] || second[1] != first[2] {
		t.Error("ticks with unchanged values were not reused")
	}
	if got := len(target.SelectAll("path.domain")); got != 1 {
		t.Errorf("got %d domain paths, want 1", got)
	}
}

func TestRenderTickSettings(t *testing.T) {
	tests := []struct {
		name   string
		args   []any
		format func(float64) string
		want   []string
	}{
		{"default count", nil, nil, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
		{"count", []any{2}, nil, []string{"0", "5", "10"}},
		{"count and verb", []any{2, "%.1f"}, nil, []string{"0.0", "5.0", "10.0"}},
		{"explicit format wins", []any{2, "%.1f"}, func(v float64) string { return fmt.Sprintf("<%g>", v) }, []string{"<0>", "<5>", "<10>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := scene.NewNode(scene.TagSVG)
			a, _ := New(Bottom)
			a.SetScale(linear(0, 10, 0, 100))
			a.SetTicks(tt.args...)
			a.SetTickFormat(tt.format)
			if err := a.Render(target, nil); err != nil {
				t.Fatal(err)
			}
			if got := labels(target); !slices.Equal(got, tt.want) {
				t.Errorf("labels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	a, _ := New(Bottom)
	if err := a.Render(scene.NewNode(scene.TagSVG), nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("no scale: error = %v", err)
	}
	a.SetScale(scale.NewLinear())
	if err := a.Render(nil, nil); err == nil {
		t.Error("nil target: expected error")
	}
	a.SetTicks(true)
	if err := a.Render(scene.NewNode(scene.TagSVG), nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad tick arg: error = %v", err)
	}
}

func TestRenderDecorateAndTransition(t *testing.T) {
	target := scene.NewNode(scene.TagSVG)
	a, _ := New(Bottom)
	a.SetScale(linear(0, 10, 0, 100))
	a.SetTickValues([]float64{1, 2, 3})

	var got []float64
	a.SetDecorate(func(ticks []*scene.Node, values []float64) {
		got = values
		for _, tick := range ticks {
			tick.SetAttr("data-decorated", "true")
		}
	})
	tr := &scene.Transition{Duration: 250 * time.Millisecond}
	if err := a.Render(target, tr); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(got, []float64{1, 2, 3}) {
		t.Errorf("decorate values = %v", got)
	}
	for _, tick := range target.SelectAll("g.tick") {
		if tick.Attr("data-decorated") != "true" {
			t.Error("tick not decorated")
		}
		if tick.Attr("style") != tr.CSS() {
			t.Errorf("tick style = %q, want %q", tick.Attr("style"), tr.CSS())
		}
	}

	if err := a.Render(target, nil); err != nil {
		t.Fatal(err)
	}
	if target.Select("g.tick").HasAttr("style") {
		t.Error("transition style kept after render without transition")
	}
}
