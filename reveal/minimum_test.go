package reveal

import "testing"

func TestMinimumScrolling(t *testing.T) {
	cases := []struct {
		name                       string
		vStart, vEnd, bStart, bEnd float64
		revealAtStart, revealAtEnd bool
		want                       float64
	}{
		{name: "inside", vStart: 0, vEnd: 100, bStart: 10, bEnd: 20, want: 0},
		{name: "above", vStart: 100, vEnd: 200, bStart: 50, bEnd: 60, want: 50},
		{name: "below", vStart: 100, vEnd: 200, bStart: 250, bEnd: 260, want: 160},
		{name: "at start", vStart: 100, vEnd: 200, bStart: 150, bEnd: 160, revealAtStart: true, want: 150},
		{name: "at end", vStart: 100, vEnd: 200, bStart: 150, bEnd: 160, revealAtEnd: true, want: 60},
		{name: "at end clamps to zero", vStart: 100, vEnd: 200, bStart: 0, bEnd: 10, revealAtEnd: true, want: 0},
		{name: "larger box", vStart: 100, vEnd: 200, bStart: 0, bEnd: 150, want: 0},
		{name: "equal box", vStart: 100, vEnd: 200, bStart: 300, bEnd: 400, revealAtEnd: true, want: 300},
		{name: "fractional above", vStart: 100.9, vEnd: 200.9, bStart: 50.7, bEnd: 60.2, want: 50},
		{name: "fractional inside", vStart: 99.6, vEnd: 199.6, bStart: 99.8, bEnd: 199.4, want: 99},
	}
	for _, tc := range cases {
		got := MinimumScrolling(tc.vStart, tc.vEnd, tc.bStart, tc.bEnd, tc.revealAtStart, tc.revealAtEnd)
		if got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMinimumScrolling_RepeatedRevealIsStable(t *testing.T) {
	top := 0.0
	for i := 0; i < 5; i++ {
		top = MinimumScrolling(top, top+100.5, 250.25, 260.75, false, false)
	}
	if top != 160 {
		t.Fatalf("stable top: got %v, want %v", top, 160)
	}
}

func TestHorizontalScrollLeft(t *testing.T) {
	cases := []struct {
		name   string
		in     HorizontalInput
		want   HorizontalTarget
		wantOK bool
	}{
		{
			name:   "padded right",
			in:     HorizontalInput{ViewportWidth: 80, BoxStart: 100, BoxEnd: 110, LeftPadding: 30, RightPadding: 15},
			want:   HorizontalTarget{ScrollLeft: 45, MaxHorizontalOffset: 125},
			wantOK: true,
		},
		{
			name:   "minimal right",
			in:     HorizontalInput{ViewportWidth: 80, BoxStart: 100, BoxEnd: 110, RightPadding: 15, Minimal: true},
			want:   HorizontalTarget{ScrollLeft: 30, MaxHorizontalOffset: 110},
			wantOK: true,
		},
		{
			name:   "left edge clamps padding",
			in:     HorizontalInput{ViewportLeft: 50, ViewportWidth: 80, BoxStart: 10, BoxEnd: 20, LeftPadding: 30},
			want:   HorizontalTarget{ScrollLeft: 0, MaxHorizontalOffset: 20},
			wantOK: true,
		},
		{
			name:   "visible",
			in:     HorizontalInput{ViewportLeft: 0, ViewportWidth: 80, BoxStart: 40, BoxEnd: 41, Minimal: true},
			want:   HorizontalTarget{ScrollLeft: 0, MaxHorizontalOffset: 41},
			wantOK: true,
		},
		{
			name:   "narrow viewport keeps target visible",
			in:     HorizontalInput{ViewportWidth: 20, BoxStart: 60, BoxEnd: 60, LeftPadding: 30, RightPadding: 4},
			want:   HorizontalTarget{ScrollLeft: 44, MaxHorizontalOffset: 64},
			wantOK: true,
		},
		{
			name:   "wide range still reveals its start",
			in:     HorizontalInput{ViewportLeft: 300, ViewportWidth: 80, BoxStart: 100, BoxEnd: 250, LeftPadding: 30},
			want:   HorizontalTarget{ScrollLeft: 100, MaxHorizontalOffset: 250},
			wantOK: true,
		},
		{
			name: "wide selections abort",
			in:   HorizontalInput{ViewportWidth: 80, BoxStart: 0, BoxEnd: 200, Selections: true, Minimal: true},
		},
	}
	for _, tc := range cases {
		got, ok := HorizontalScrollLeft(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("%s: got (%+v, %v), want (%+v, %v)", tc.name, got, ok, tc.want, tc.wantOK)
		}
	}
}
