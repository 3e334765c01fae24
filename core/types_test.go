package core

import (
	"encoding/json"
	"testing"
)

func TestDirection(t *testing.T) {
	if North.Opposite() != South || East.Opposite() != West {
		t.Error("Expected opposite directions to pair up")
	}
	if got := East.Offset(Point{X: 10, Y: 10}, 5); got != (Point{X: 15, Y: 10}) {
		t.Errorf("Expected east offset to (15,10), got %+v", got)
	}
	if got := North.Offset(Point{X: 10, Y: 10}, 5); got != (Point{X: 10, Y: 5}) {
		t.Errorf("Expected north offset to (10,5), got %+v", got)
	}
	if South.String() != "South" {
		t.Errorf("Expected 'South', got %s", South.String())
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	if r.Center() != (Point{X: 60, Y: 45}) {
		t.Errorf("Expected center (60,45), got %+v", r.Center())
	}
	if !r.Contains(Point{X: 10, Y: 20}) {
		t.Error("Expected boundary points to be contained")
	}
	if r.Contains(Point{X: 9, Y: 20}) {
		t.Error("Expected outside points not to be contained")
	}

	e := r.Expand(5)
	want := Rect{X: 5, Y: 15, Width: 110, Height: 60}
	if e != want {
		t.Errorf("Expected %+v, got %+v", want, e)
	}
}

func TestDiagramJSON(t *testing.T) {
	data := `{
		"shapes": [
			{"id": "a", "type": "process", "x": 0, "y": 0, "width": 160, "height": 80, "label": "A"},
			{"id": "b", "type": "lifeline", "x": 300, "y": 0, "width": 120, "height": 400}
		],
		"connectors": [{"id": "e1", "from": "a", "to": "b"}]
	}`

	var d Diagram
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		t.Fatalf("Failed to unmarshal diagram: %v", err)
	}
	if len(d.Shapes) != 2 || len(d.Connectors) != 1 {
		t.Fatalf("Expected 2 shapes and 1 connector, got %d and %d", len(d.Shapes), len(d.Connectors))
	}

	b := d.ShapeByID("b")
	if b == nil || b.Type != ShapeType("lifeline") || b.Height != 400 {
		t.Errorf("Expected lifeline shape b with height 400, got %+v", b)
	}
	if d.ShapeByID("missing") != nil {
		t.Error("Expected nil for unknown shape ID")
	}
}

func TestRouteIsEmpty(t *testing.T) {
	if !(Route{}).IsEmpty() {
		t.Error("Expected zero route to be empty")
	}
	if (Route{Points: []Point{{X: 1, Y: 1}}}).IsEmpty() {
		t.Error("Expected populated route not to be empty")
	}
}
