package connections

import (
	"math"
	"testing"

	"orthoroute/core"
	"orthoroute/pathfinding"
	"orthoroute/shapes"
)

func sideBySideShapes() (core.Shape, core.Shape) {
	a := core.Shape{ID: "a", Type: shapes.TypeProcess, X: 0, Y: 0, Width: 100, Height: 100}
	b := core.Shape{ID: "b", Type: shapes.TypeProcess, X: 300, Y: 0, Width: 100, Height: 100}
	return a, b
}

func TestNearestDistanceSelection(t *testing.T) {
	r := NewRouter(pathfinding.DefaultRoutingConfig())
	a, b := sideBySideShapes()
	srcPoints := shapes.ConnectionPointsForShape(a.Type, a.Height)
	dstPoints := shapes.ConnectionPointsForShape(b.Type, b.Height)

	// With only two shapes the selector degrades to nearest-distance
	// pairing: the facing mid-edge points.
	got := r.FindOptimalConnectionPoints(srcPoints, dstPoints, a.Bounds(), b.Bounds(), SelectionOptions{
		Shapes:            []core.Shape{a, b},
		UseSmartSelection: true,
	})

	if got.SourceConnectionPointID != "right" || got.TargetConnectionPointID != "left" {
		t.Errorf("Expected right->left pairing, got %s->%s",
			got.SourceConnectionPointID, got.TargetConnectionPointID)
	}
	if got.Start != (core.Point{X: 100, Y: 50}) || got.End != (core.Point{X: 300, Y: 50}) {
		t.Errorf("Expected endpoints (100,50) and (300,50), got %+v and %+v", got.Start, got.End)
	}

	want := math.Exp(-200.0 / 1000.0)
	if math.Abs(got.Score-want) > 1e-9 {
		t.Errorf("Expected score %f for distance 200, got %f", want, got.Score)
	}
}

func TestSmartSelectionRoutesAroundObstacles(t *testing.T) {
	r := NewRouter(pathfinding.DefaultRoutingConfig())
	a, b := sideBySideShapes()
	wall := core.Shape{ID: "wall", Type: shapes.TypeNote, X: 150, Y: -100, Width: 100, Height: 300}
	all := []core.Shape{a, b, wall}

	srcPoints := shapes.ConnectionPointsForShape(a.Type, a.Height)
	dstPoints := shapes.ConnectionPointsForShape(b.Type, b.Height)

	got := r.FindOptimalConnectionPoints(srcPoints, dstPoints, a.Bounds(), b.Bounds(), SelectionOptions{
		Shapes:            all,
		SourceShapeID:     a.ID,
		TargetShapeID:     b.ID,
		UseSmartSelection: true,
	})

	if got.SourceConnectionPointID == "" || got.TargetConnectionPointID == "" {
		t.Fatal("Expected a populated selection")
	}
	if got.Score <= 0 {
		t.Errorf("Expected a routable pair with positive score, got %f", got.Score)
	}
}

func TestSelectionIsDeterministic(t *testing.T) {
	r := NewRouter(pathfinding.DefaultRoutingConfig())
	a, b := sideBySideShapes()
	wall := core.Shape{ID: "wall", Type: shapes.TypeNote, X: 150, Y: -100, Width: 100, Height: 300}
	all := []core.Shape{a, b, wall}

	srcPoints := shapes.ConnectionPointsForShape(a.Type, a.Height)
	dstPoints := shapes.ConnectionPointsForShape(b.Type, b.Height)
	opts := SelectionOptions{Shapes: all, SourceShapeID: a.ID, TargetShapeID: b.ID, UseSmartSelection: true}

	first := r.FindOptimalConnectionPoints(srcPoints, dstPoints, a.Bounds(), b.Bounds(), opts)
	for i := 0; i < 3; i++ {
		again := r.FindOptimalConnectionPoints(srcPoints, dstPoints, a.Bounds(), b.Bounds(), opts)
		if again != first {
			t.Fatalf("Expected identical selections across calls, got %+v then %+v", first, again)
		}
	}
}

func TestBlockingShapesMatchesEndpointsByID(t *testing.T) {
	r := NewRouter(pathfinding.DefaultRoutingConfig())
	a := core.Shape{ID: "a", Type: shapes.TypeProcess, X: 0, Y: 0, Width: 100, Height: 100}
	// A second shape with bounds identical to the source: bounds matching
	// cannot tell them apart, explicit IDs can.
	twin := core.Shape{ID: "twin", Type: shapes.TypeProcess, X: 0, Y: 0, Width: 100, Height: 100}
	b := core.Shape{ID: "b", Type: shapes.TypeProcess, X: 300, Y: 0, Width: 100, Height: 100}
	all := []core.Shape{twin, a, b}

	blocking := r.blockingShapes(a.Bounds(), b.Bounds(), SelectionOptions{
		Shapes:        all,
		SourceShapeID: "a",
		TargetShapeID: "b",
	})

	ids := map[string]bool{}
	for _, s := range blocking {
		ids[s.ID] = true
	}
	if ids["a"] || ids["b"] {
		t.Errorf("Expected endpoint shapes excluded from the obstacle set, got %v", ids)
	}
	if !ids["twin"] {
		t.Error("Expected the identically sized bystander to remain an obstacle")
	}
}

func TestSelectionWithoutConnectionPoints(t *testing.T) {
	r := NewRouter(pathfinding.DefaultRoutingConfig())
	a, b := sideBySideShapes()
	got := r.FindOptimalConnectionPoints(nil, nil, a.Bounds(), b.Bounds(), SelectionOptions{
		Shapes:            []core.Shape{a, b},
		UseSmartSelection: true,
	})
	if got != (OptimalConnection{}) {
		t.Errorf("Expected zero result for empty point sets, got %+v", got)
	}
}

func TestSelectionAlwaysReturnsAPair(t *testing.T) {
	r := NewRouter(pathfinding.DefaultRoutingConfig())
	// Coincident shapes are a degenerate input; the selector must still
	// return a pair rather than fail.
	a := core.Shape{ID: "a", Type: shapes.TypeProcess, X: 0, Y: 0, Width: 100, Height: 100}
	b := core.Shape{ID: "b", Type: shapes.TypeProcess, X: 0, Y: 0, Width: 100, Height: 100}
	c := core.Shape{ID: "c", Type: shapes.TypeProcess, X: 500, Y: 500, Width: 100, Height: 100}

	srcPoints := shapes.ConnectionPointsForShape(a.Type, a.Height)
	dstPoints := shapes.ConnectionPointsForShape(b.Type, b.Height)

	got := r.FindOptimalConnectionPoints(srcPoints, dstPoints, a.Bounds(), b.Bounds(), SelectionOptions{
		Shapes:            []core.Shape{a, b, c},
		SourceShapeID:     a.ID,
		TargetShapeID:     b.ID,
		UseSmartSelection: true,
	})
	if got.SourceConnectionPointID == "" || got.TargetConnectionPointID == "" {
		t.Errorf("Expected a populated selection for degenerate input, got %+v", got)
	}
}

func TestScoreRoute(t *testing.T) {
	tests := []struct {
		name  string
		route []core.Point
		want  float64
	}{
		{"empty route", nil, 0},
		{"diagonal two-point fallback", []core.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}, 0},
		{"zero-length route", []core.Point{{X: 5, Y: 5}}, 1},
		{"straight segment", []core.Point{{X: 0, Y: 0}, {X: 200, Y: 0}}, math.Exp(-0.2)},
		{"bent route", []core.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}, math.Exp(-0.2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRoute(tt.route)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestScoreRoutePrefersShorter(t *testing.T) {
	short := []core.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
	long := []core.Point{{X: 0, Y: 0}, {X: 900, Y: 0}}
	if ScoreRoute(short) <= ScoreRoute(long) {
		t.Error("Expected shorter routes to score higher")
	}
}
