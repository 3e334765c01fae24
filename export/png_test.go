package export

import (
	"bytes"
	"image/png"
	"testing"

	"orthoroute/connections"
	"orthoroute/core"
	"orthoroute/pathfinding"
	"orthoroute/shapes"
)

func TestRenderPNG(t *testing.T) {
	d := &core.Diagram{
		Shapes: []core.Shape{
			{ID: "a", Type: shapes.TypeProcess, Label: "ingest", X: 0, Y: 0, Width: 160, Height: 80},
			{ID: "b", Type: shapes.TypeProcess, Label: "transform", X: 400, Y: 200, Width: 160, Height: 80},
			{ID: "wall", Type: shapes.TypeNote, Label: "wall", X: 220, Y: 0, Width: 100, Height: 200},
		},
		Connectors: []core.Connector{{ID: "e1", From: "a", To: "b"}},
	}
	r := connections.NewRouter(pathfinding.DefaultRoutingConfig())

	var buf bytes.Buffer
	opts := DefaultPNGOptions()
	opts.Width = 400
	opts.Height = 300
	if err := RenderPNG(d, r, &buf, opts); err != nil {
		t.Fatalf("Expected render to succeed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Expected valid PNG output: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != opts.Width || bounds.Dy() != opts.Height {
		t.Errorf("Expected %dx%d image, got %dx%d", opts.Width, opts.Height, bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPNGEmptyDiagram(t *testing.T) {
	r := connections.NewRouter(pathfinding.DefaultRoutingConfig())
	var buf bytes.Buffer
	if err := RenderPNG(&core.Diagram{}, r, &buf, DefaultPNGOptions()); err != nil {
		t.Fatalf("Expected empty diagram to render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected PNG bytes for an empty diagram")
	}
}
