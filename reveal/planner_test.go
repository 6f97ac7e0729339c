package reveal

import "testing"

// lineGeometry places line n at n*lineHeight.
func lineGeometry(lineHeight float64) Geometry {
	return GeometryFunc(func(line int) float64 { return float64(line) * lineHeight })
}

func newTestPlanner(opts Options) Planner {
	if opts.LineHeight == 0 {
		opts.LineHeight = 20
	}
	return NewPlanner(opts, lineGeometry(opts.LineHeight))
}

func rangeAt(start, end int) *Range {
	return &Range{StartLine: start, StartColumn: 1, EndLine: end, EndColumn: 1}
}

func TestScrollTop_AbortsWithoutRangeOrSelections(t *testing.T) {
	p := newTestPlanner(Options{SurroundingLines: 3})
	for _, vt := range []VerticalType{Simple, Center, CenterIfOutsideViewport, Top, Bottom, NearTop, NearTopIfOutsideViewport} {
		if got, ok := p.ScrollTop(Viewport{Top: 100, Height: 500}, Request{VerticalType: vt}); ok {
			t.Fatalf("%s with empty request: got (%v, true), want abort", vt, got)
		}
	}
	if _, ok := p.ScrollTop(Viewport{Top: 100, Height: 500}, Request{Selections: []Selection{}}); ok {
		t.Fatalf("empty selection slice should abort")
	}
}

func TestScrollTop_OverflowingBox(t *testing.T) {
	p := newTestPlanner(Options{})
	vp := Viewport{Top: 0, Height: 100}

	multi := Request{Selections: []Selection{
		{Range: *rangeAt(1, 1)},
		{Range: *rangeAt(20, 20)},
	}}
	if got, ok := p.ScrollTop(vp, multi); ok {
		t.Fatalf("multi-selection overflow: got (%v, true), want abort", got)
	}

	single := Request{Range: rangeAt(1, 20)}
	got, ok := p.ScrollTop(vp, single)
	if !ok || got != 20 {
		t.Fatalf("single range overflow: got (%v, %v), want (20, true)", got, ok)
	}
}

func TestScrollTop_SelectionsDriveBoxOverRange(t *testing.T) {
	p := newTestPlanner(Options{})
	req := Request{
		Range:        rangeAt(1, 1),
		Selections:   []Selection{{Range: *rangeAt(60, 60)}, {Range: *rangeAt(58, 59), Reversed: true}},
		VerticalType: Top,
	}
	got, ok := p.ScrollTop(Viewport{Top: 0, Height: 500}, req)
	if !ok || got != 58*20 {
		t.Fatalf("selections box top: got (%v, %v), want (%v, true)", got, ok, 58*20)
	}
}

func TestScrollTop_IfOutsideViewportIsIdempotentWhenVisible(t *testing.T) {
	p := newTestPlanner(Options{})
	vp := Viewport{Top: 1000, Height: 500}

	for _, vt := range []VerticalType{CenterIfOutsideViewport, NearTopIfOutsideViewport} {
		got, ok := p.ScrollTop(vp, Request{Range: rangeAt(60, 62), VerticalType: vt})
		if !ok || got != 1000 {
			t.Fatalf("%s on visible box: got (%v, %v), want (1000, true)", vt, got, ok)
		}
	}
}

func TestScrollTop_CenterAndNearTop(t *testing.T) {
	p := newTestPlanner(Options{})

	got, ok := p.ScrollTop(Viewport{Top: 1000, Height: 500}, Request{Range: rangeAt(60, 60), VerticalType: Center})
	if !ok || got != 960 {
		t.Fatalf("center: got (%v, %v), want (960, true)", got, ok)
	}

	got, ok = p.ScrollTop(Viewport{Top: 0, Height: 500}, Request{Range: rangeAt(1, 1), VerticalType: Center})
	if !ok || got != 0 {
		t.Fatalf("center near document start: got (%v, %v), want (0, true)", got, ok)
	}

	got, ok = p.ScrollTop(Viewport{Top: 0, Height: 500}, Request{Range: rangeAt(100, 100), VerticalType: NearTop})
	if !ok || got != 1900 {
		t.Fatalf("near top: got (%v, %v), want (1900, true)", got, ok)
	}

	got, ok = p.ScrollTop(Viewport{Top: 0, Height: 500}, Request{Range: rangeAt(100, 100), VerticalType: CenterIfOutsideViewport})
	if !ok || got != 1760 {
		t.Fatalf("center if outside: got (%v, %v), want (1760, true)", got, ok)
	}
}

func TestScrollTop_NearTopGapIsClampedByBoxBottom(t *testing.T) {
	p := newTestPlanner(Options{})
	// 20 lines tall box: the 100px gap would push its bottom out of view.
	got, ok := p.ScrollTop(Viewport{Top: 0, Height: 500}, Request{Range: rangeAt(100, 119), VerticalType: NearTop})
	if !ok || got != 1900 {
		t.Fatalf("near top with tall box: got (%v, %v), want (1900, true)", got, ok)
	}

	got, ok = p.ScrollTop(Viewport{Top: 0, Height: 500}, Request{Range: rangeAt(100, 122), VerticalType: NearTop})
	if want := float64(2460 - 500); !ok || got != want {
		t.Fatalf("near top clamped: got (%v, %v), want (%v, true)", got, ok, want)
	}
}

func TestScrollTop_MinimalNearTopInsideViewport(t *testing.T) {
	p := NewPlanner(Options{LineHeight: 20}, GeometryFunc(func(line int) float64 {
		return 1200 + float64(line-40)*20
	}))
	req := Request{
		MinimalReveal: true,
		Range:         rangeAt(40, 40),
		VerticalType:  NearTopIfOutsideViewport,
	}
	got, ok := p.ScrollTop(Viewport{Top: 1000, Height: 500}, req)
	if !ok || got != 1000 {
		t.Fatalf("minimal near top inside viewport: got (%v, %v), want (1000, true)", got, ok)
	}
}

func TestScrollTop_BottomRevealUsesScrollbarPadding(t *testing.T) {
	p := newTestPlanner(Options{HorizontalScrollbarHeight: 14, SurroundingLines: 5})
	req := Request{
		MinimalReveal: true,
		Range:         rangeAt(100, 100),
		VerticalType:  Bottom,
	}
	got, ok := p.ScrollTop(Viewport{Top: 1000, Height: 500}, req)
	if !ok || got != 1534 {
		t.Fatalf("bottom reveal: got (%v, %v), want (1534, true)", got, ok)
	}
}

func TestScrollTop_SimplePadsWithSurroundingLines(t *testing.T) {
	p := newTestPlanner(Options{SurroundingLines: 3})
	vp := Viewport{Top: 1000, Height: 500}

	// Below: box 2000..2020, bottom padding 2 lines + 1 line for the scrollbar.
	got, ok := p.ScrollTop(vp, Request{Range: rangeAt(100, 100)})
	if want := float64(2020 + 60 - 500); !ok || got != want {
		t.Fatalf("simple below: got (%v, %v), want (%v, true)", got, ok, want)
	}

	// Above: box 600..620 with 3 lines of top padding.
	got, ok = p.ScrollTop(vp, Request{Range: rangeAt(30, 30)})
	if !ok || got != 540 {
		t.Fatalf("simple above: got (%v, %v), want (540, true)", got, ok)
	}

	// Visible: no movement.
	got, ok = p.ScrollTop(vp, Request{Range: rangeAt(60, 60)})
	if !ok || got != 1000 {
		t.Fatalf("simple visible: got (%v, %v), want (1000, true)", got, ok)
	}
}

func TestScrollTop_SurroundingLinesCappedByHalfViewport(t *testing.T) {
	p := newTestPlanner(Options{SurroundingLines: 100})
	// Viewport shows 10 lines: context is 5 lines above and 4 below.
	got, ok := p.ScrollTop(Viewport{Top: 1000, Height: 200}, Request{Range: rangeAt(30, 30), VerticalType: Top})
	if !ok || got != 500 {
		t.Fatalf("capped context: got (%v, %v), want (500, true)", got, ok)
	}
}

func TestScrollTop_StickyScrollRaisesTopPadding(t *testing.T) {
	p := newTestPlanner(Options{SurroundingLines: 1, StickyScrollEnabled: true, StickyScrollMaxLines: 5})
	got, ok := p.ScrollTop(Viewport{Top: 1000, Height: 500}, Request{Range: rangeAt(40, 40)})
	if !ok || got != 700 {
		t.Fatalf("sticky padding: got (%v, %v), want (700, true)", got, ok)
	}
}

func TestScrollTop_MouseSourceKeepsOneLineAbove(t *testing.T) {
	p := newTestPlanner(Options{SurroundingLines: 3})
	vp := Viewport{Top: 1000, Height: 500}

	got, ok := p.ScrollTop(vp, Request{Source: SourceMouse, Range: rangeAt(40, 40)})
	if !ok || got != 780 {
		t.Fatalf("mouse drag: got (%v, %v), want (780, true)", got, ok)
	}

	got, ok = p.ScrollTop(vp, Request{Source: SourceMouse, MinimalReveal: true, Range: rangeAt(40, 40)})
	if !ok || got != 800 {
		t.Fatalf("mouse drag minimal: got (%v, %v), want (800, true)", got, ok)
	}

	all := newTestPlanner(Options{SurroundingLines: 3, SurroundingLinesStyle: SurroundingAll})
	got, ok = all.ScrollTop(vp, Request{Source: SourceMouse, Range: rangeAt(40, 40)})
	if !ok || got != 740 {
		t.Fatalf("mouse drag with style all: got (%v, %v), want (740, true)", got, ok)
	}
}

func TestScrollTop_NilGeometryAborts(t *testing.T) {
	p := NewPlanner(Options{LineHeight: 20}, nil)
	if _, ok := p.ScrollTop(Viewport{Height: 100}, Request{Range: rangeAt(1, 1)}); ok {
		t.Fatalf("nil geometry should abort")
	}
}

func TestPlan_HorizontalModeAndScrollType(t *testing.T) {
	p := newTestPlanner(Options{})
	vp := Viewport{Top: 1000, Height: 500}

	cases := []struct {
		name string
		req  Request
		want HorizontalMode
	}{
		{name: "off", req: Request{Range: rangeAt(60, 60)}, want: HorizontalNone},
		{name: "multi-line", req: Request{Range: rangeAt(60, 61), RevealHorizontal: true}, want: HorizontalReset},
		{name: "single-line", req: Request{Range: rangeAt(60, 60), RevealHorizontal: true}, want: HorizontalRange},
		{name: "selections", req: Request{Selections: []Selection{{Range: *rangeAt(60, 61)}}, RevealHorizontal: true}, want: HorizontalSelections},
	}
	for _, tc := range cases {
		plan, ok := p.Plan(vp, vp.Top, tc.req)
		if !ok {
			t.Fatalf("%s: unexpected abort", tc.name)
		}
		if plan.Horizontal != tc.want {
			t.Fatalf("%s: horizontal mode got %v, want %v", tc.name, plan.Horizontal, tc.want)
		}
	}

	plan, ok := p.Plan(vp, vp.Top, Request{Range: rangeAt(74, 74), ScrollType: Smooth})
	if !ok || plan.ScrollTop != 1020 || plan.ScrollType != Immediate {
		t.Fatalf("one-line step: got %+v (ok=%v), want top 1020 immediate", plan, ok)
	}

	plan, ok = p.Plan(vp, vp.Top, Request{Range: rangeAt(200, 200), ScrollType: Smooth})
	if !ok || plan.ScrollType != Smooth {
		t.Fatalf("long jump: got %+v (ok=%v), want smooth", plan, ok)
	}

	if _, ok := p.Plan(vp, vp.Top, Request{}); ok {
		t.Fatalf("empty request should abort the plan")
	}
}

func TestEffectiveScrollType(t *testing.T) {
	cases := []struct {
		requested ScrollType
		from, to  float64
		want      ScrollType
	}{
		{requested: Smooth, from: 100, to: 115, want: Immediate},
		{requested: Smooth, from: 100, to: 80, want: Immediate},
		{requested: Smooth, from: 100, to: 121, want: Smooth},
		{requested: Immediate, from: 100, to: 900, want: Immediate},
	}
	for _, tc := range cases {
		if got := EffectiveScrollType(tc.requested, tc.from, tc.to, 20); got != tc.want {
			t.Fatalf("EffectiveScrollType(%v, %v, %v): got %v, want %v", tc.requested, tc.from, tc.to, got, tc.want)
		}
	}
}
