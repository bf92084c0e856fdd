package view

import (
	"testing"

	"evacplanner/internal/domain/grid"
)

func testLayout(t *testing.T, w, h int) Layout {
	t.Helper()
	b, err := grid.NewBounds(w, h)
	if err != nil {
		t.Fatalf("NewBounds: %v", err)
	}
	return NewLayout(b, 40)
}

func TestCellAt(t *testing.T) {
	l := testLayout(t, 10, 8)

	cases := []struct {
		name   string
		x, y   int
		want   grid.Point
		inside bool
	}{
		{name: "origin", x: 0, y: ToolbarHeight, want: grid.Point{X: 0, Y: 0}, inside: true},
		{name: "inner", x: 85, y: ToolbarHeight + 121, want: grid.Point{X: 2, Y: 3}, inside: true},
		{name: "last cell", x: 399, y: ToolbarHeight + 319, want: grid.Point{X: 9, Y: 7}, inside: true},
		{name: "toolbar", x: 10, y: 5},
		{name: "right of grid", x: 400, y: ToolbarHeight + 10},
		{name: "status area", x: 10, y: ToolbarHeight + 320},
		{name: "negative", x: -1, y: ToolbarHeight + 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.CellAt(tc.x, tc.y)
			if ok != tc.inside {
				t.Fatalf("inside=%v want %v", ok, tc.inside)
			}
			if ok && got != tc.want {
				t.Fatalf("cell=%v want %v", got, tc.want)
			}
		})
	}
}

func TestCellRectRoundTrip(t *testing.T) {
	l := testLayout(t, 5, 5)
	p := grid.Point{X: 3, Y: 1}
	r := l.CellRect(p)
	got, ok := l.CellAt(r.X+r.W/2, r.Y+r.H/2)
	if !ok || got != p {
		t.Fatalf("center of %v maps to %v ok=%v", p, got, ok)
	}
}

func TestScreenSizeKeepsToolbarWidth(t *testing.T) {
	l := testLayout(t, 3, 2)
	w, h := l.ScreenSize()
	if w != MinWidth {
		t.Fatalf("narrow grid width=%d want %d", w, MinWidth)
	}
	if h != ToolbarHeight+80+StatusHeight {
		t.Fatalf("height=%d", h)
	}
	last := l.Buttons[len(l.Buttons)-1].Rect
	if last.X+last.W > w {
		t.Fatalf("toolbar overflows screen: %+v in width %d", last, w)
	}
}

func TestButtonAt(t *testing.T) {
	l := testLayout(t, 20, 10)
	if len(l.Buttons) != 3+len(grid.HazardTypes()) {
		t.Fatalf("unexpected button count %d", len(l.Buttons))
	}
	for _, b := range l.Buttons {
		got, ok := l.ButtonAt(b.Rect.X+1, b.Rect.Y+1)
		if !ok || got.ID != b.ID || got.Hazard != b.Hazard {
			t.Fatalf("button %s/%s not hit: got %+v ok=%v", b.ID, b.Hazard, got, ok)
		}
	}
	if _, ok := l.ButtonAt(1, ToolbarHeight+5); ok {
		t.Fatalf("grid area must not resolve to a button")
	}
}
