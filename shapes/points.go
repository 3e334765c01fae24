package shapes

import (
	"fmt"
	"log"

	"orthoroute/core"
)

// Lifeline connection-point layout. The header box gets a north and a south
// point; below it paired east/west points repeat every LifelineSpacing px,
// starting at LifelineFirstOffset from the top edge.
const (
	DefaultLifelineHeight = 400.0
	LifelineSpacing       = 40.0
	LifelineFirstOffset   = 80.0
)

// logger receives warnings for recoverable input problems. Replaceable for
// tests and for hosts that want to silence the package.
var logger = log.Default()

// SetLogger replaces the package logger. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(discard{}, "", 0)
	}
	logger = l
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// ConnectionPointsForShape returns the connection points for a shape type.
// Lifeline shapes scale their point count with height, so callers must pass
// the current height; a missing height falls back to the default with a
// logged warning. Other shape types ignore the height.
func ConnectionPointsForShape(t core.ShapeType, height float64) []core.ConnectionPoint {
	c, ok := registry[t]
	if !ok {
		return standardPoints(height)
	}
	if t == TypeLifeline && height <= 0 {
		logger.Printf("shapes: lifeline connection points requested without a height, using default %.0f", DefaultLifelineHeight)
		height = DefaultLifelineHeight
	}
	return c.points(height)
}

// standardPoints returns the four mid-edge points shared by ordinary shapes.
func standardPoints(float64) []core.ConnectionPoint {
	return []core.ConnectionPoint{
		{ID: "top", Position: core.Point{X: 0.5, Y: 0}, Direction: core.North},
		{ID: "right", Position: core.Point{X: 1, Y: 0.5}, Direction: core.East},
		{ID: "bottom", Position: core.Point{X: 0.5, Y: 1}, Direction: core.South},
		{ID: "left", Position: core.Point{X: 0, Y: 0.5}, Direction: core.West},
	}
}

// lifelinePoints generates the density-scaled point set for lifelines:
// header north/south, then east/west pairs at fixed pixel offsets so the
// attachment density stays constant as the shape grows.
func lifelinePoints(height float64) []core.ConnectionPoint {
	points := []core.ConnectionPoint{
		{ID: "header-top", Position: core.Point{X: 0.5, Y: 0}, Direction: core.North},
		{ID: "header-bottom", Position: core.Point{X: 0.5, Y: 1}, Direction: core.South},
	}
	for offset := LifelineFirstOffset; offset < height; offset += LifelineSpacing {
		o := offset
		points = append(points,
			core.ConnectionPoint{
				ID:           fmt.Sprintf("east-%.0f", o),
				Position:     core.Point{X: 1, Y: 0},
				Direction:    core.East,
				FixedOffsetY: &o,
			},
			core.ConnectionPoint{
				ID:           fmt.Sprintf("west-%.0f", o),
				Position:     core.Point{X: 0, Y: 0},
				Direction:    core.West,
				FixedOffsetY: &o,
			},
		)
	}
	return points
}

// AbsolutePosition resolves a connection point against concrete shape
// bounds. FixedOffsetY overrides the fractional Y calculation.
func AbsolutePosition(p core.ConnectionPoint, bounds core.Rect) core.Point {
	x := bounds.X + p.Position.X*bounds.Width
	var y float64
	if p.FixedOffsetY != nil {
		y = bounds.Y + *p.FixedOffsetY
	} else {
		y = bounds.Y + p.Position.Y*bounds.Height
	}
	return core.Point{X: x, Y: y}
}
