package connections

import (
	"reflect"
	"testing"

	"orthoroute/core"
)

func TestDirectRoute(t *testing.T) {
	start := core.Point{X: 0, Y: 0}
	end := core.Point{X: 100, Y: 60}

	tests := []struct {
		name     string
		strategy Strategy
		want     []core.Point
	}{
		{"horizontal first", HorizontalFirst, []core.Point{start, {X: 100, Y: 0}, end}},
		{"vertical first", VerticalFirst, []core.Point{start, {X: 0, Y: 60}, end}},
		{"middle split", MiddleSplit, []core.Point{start, {X: 50, Y: 0}, {X: 50, Y: 60}, end}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectRoute(start, end, tt.strategy)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDirectRouteMiddleSplitPicksDominantAxis(t *testing.T) {
	start := core.Point{X: 0, Y: 0}
	end := core.Point{X: 40, Y: 200}
	want := []core.Point{start, {X: 0, Y: 100}, {X: 40, Y: 100}, end}
	if got := DirectRoute(start, end, MiddleSplit); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected vertical-dominant split %v, got %v", want, got)
	}
}

func TestDirectRouteAlignedAndCoincident(t *testing.T) {
	aligned := DirectRoute(core.Point{X: 0, Y: 50}, core.Point{X: 200, Y: 50}, HorizontalFirst)
	if len(aligned) != 2 {
		t.Errorf("Expected 2-point route for aligned endpoints, got %v", aligned)
	}

	same := DirectRoute(core.Point{X: 10, Y: 10}, core.Point{X: 10, Y: 10}, HorizontalFirst)
	if len(same) != 1 {
		t.Errorf("Expected single point for coincident endpoints, got %v", same)
	}
}

func TestDirectRouteIsAlwaysOrthogonal(t *testing.T) {
	start := core.Point{X: -30, Y: 75}
	end := core.Point{X: 120, Y: -10}
	for _, s := range []Strategy{HorizontalFirst, VerticalFirst, MiddleSplit} {
		route := DirectRoute(start, end, s)
		for i := 1; i < len(route); i++ {
			a, b := route[i-1], route[i]
			if a.X != b.X && a.Y != b.Y {
				t.Errorf("Expected orthogonal segments for strategy %d, got %+v -> %+v", s, a, b)
			}
		}
	}
}
