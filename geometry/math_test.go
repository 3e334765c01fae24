package geometry

import (
	"testing"

	"orthoroute/core"
)

func TestDistance(t *testing.T) {
	d := Distance(core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 4})
	if d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if m := ManhattanDistance(core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 4}); m != 7 {
		t.Errorf("Expected manhattan distance 7, got %f", m)
	}
}

func TestRectsIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Rect
		want bool
	}{
		{"overlapping", core.Rect{X: 0, Y: 0, Width: 100, Height: 100}, core.Rect{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"disjoint horizontally", core.Rect{X: 0, Y: 0, Width: 100, Height: 100}, core.Rect{X: 200, Y: 0, Width: 100, Height: 100}, false},
		{"disjoint vertically", core.Rect{X: 0, Y: 0, Width: 100, Height: 100}, core.Rect{X: 0, Y: 200, Width: 100, Height: 100}, false},
		{"touching edges", core.Rect{X: 0, Y: 0, Width: 100, Height: 100}, core.Rect{X: 100, Y: 0, Width: 100, Height: 100}, true},
		{"contained", core.Rect{X: 0, Y: 0, Width: 100, Height: 100}, core.Rect{X: 25, Y: 25, Width: 50, Height: 50}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectsIntersect(tt.a, tt.b); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBoundingBox(t *testing.T) {
	points := []core.Point{{X: 10, Y: 50}, {X: -20, Y: 0}, {X: 40, Y: 30}}
	box := BoundingBox(points)
	want := core.Rect{X: -20, Y: 0, Width: 60, Height: 50}
	if box != want {
		t.Errorf("Expected %+v, got %+v", want, box)
	}

	if empty := BoundingBox(nil); empty != (core.Rect{}) {
		t.Errorf("Expected zero rect for empty input, got %+v", empty)
	}
}

func TestPathLength(t *testing.T) {
	path := []core.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}}
	if l := PathLength(path); l != 150 {
		t.Errorf("Expected length 150, got %f", l)
	}
	if l := PathLength([]core.Point{{X: 5, Y: 5}}); l != 0 {
		t.Errorf("Expected length 0 for single point, got %f", l)
	}
}

func TestPointAlongPath(t *testing.T) {
	path := []core.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}

	// Halfway along a 200-unit path is the corner at arc length 100.
	mid := PointAlongPath(path, 0.5)
	if !SamePoint(mid, core.Point{X: 100, Y: 0}) {
		t.Errorf("Expected midpoint (100,0), got %+v", mid)
	}

	// Three quarters lands 50 units down the vertical segment.
	p := PointAlongPath(path, 0.75)
	if !SamePoint(p, core.Point{X: 100, Y: 50}) {
		t.Errorf("Expected (100,50) at t=0.75, got %+v", p)
	}

	if first := PointAlongPath(path, -1); !SamePoint(first, path[0]) {
		t.Errorf("Expected clamping to start, got %+v", first)
	}
	if last := PointAlongPath(path, 2); !SamePoint(last, path[2]) {
		t.Errorf("Expected clamping to end, got %+v", last)
	}
	if zero := PointAlongPath(nil, 0.5); zero != (core.Point{}) {
		t.Errorf("Expected zero point for empty path, got %+v", zero)
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	rect := core.Rect{X: 100, Y: 100, Width: 100, Height: 100}

	tests := []struct {
		name string
		a, b core.Point
		want bool
	}{
		{"crossing horizontally", core.Point{X: 0, Y: 150}, core.Point{X: 300, Y: 150}, true},
		{"crossing vertically", core.Point{X: 150, Y: 0}, core.Point{X: 150, Y: 300}, true},
		{"diagonal through interior", core.Point{X: 50, Y: 50}, core.Point{X: 250, Y: 250}, true},
		{"entirely inside", core.Point{X: 120, Y: 120}, core.Point{X: 180, Y: 180}, true},
		{"entirely outside", core.Point{X: 0, Y: 0}, core.Point{X: 50, Y: 50}, false},
		{"running along top edge", core.Point{X: 0, Y: 100}, core.Point{X: 300, Y: 100}, false},
		{"running along left edge", core.Point{X: 100, Y: 0}, core.Point{X: 100, Y: 300}, false},
		{"touching a corner", core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 100}, false},
		{"ending on boundary", core.Point{X: 0, Y: 150}, core.Point{X: 100, Y: 150}, false},
		{"starting on boundary going in", core.Point{X: 100, Y: 150}, core.Point{X: 150, Y: 150}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentIntersectsRect(tt.a, tt.b, rect); got != tt.want {
				t.Errorf("Expected %v for segment %+v -> %+v, got %v", tt.want, tt.a, tt.b, got)
			}
		})
	}
}

func TestIsAligned(t *testing.T) {
	if !IsAligned(core.Point{X: 0, Y: 5}, core.Point{X: 10, Y: 5}, core.Point{X: 20, Y: 5}) {
		t.Error("Expected horizontal points to be aligned")
	}
	if !IsAligned(core.Point{X: 5, Y: 0}, core.Point{X: 5, Y: 10}, core.Point{X: 5, Y: 20}) {
		t.Error("Expected vertical points to be aligned")
	}
	if IsAligned(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 5}, core.Point{X: 20, Y: 0}) {
		t.Error("Expected bent points not to be aligned")
	}
}

func TestSamePoint(t *testing.T) {
	a := core.Point{X: 1, Y: 2}
	b := core.Point{X: 1 + Epsilon/2, Y: 2}
	if !SamePoint(a, b) {
		t.Error("Expected points within tolerance to match")
	}
	if SamePoint(a, core.Point{X: 1.1, Y: 2}) {
		t.Error("Expected distinct points not to match")
	}
}
