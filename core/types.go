// Package core contains the fundamental types used throughout the orthoroute
// connector routing engine.
package core

// Point represents a 2D coordinate on the diagram canvas.
type Point struct {
	X, Y float64
}

// Direction represents a cardinal direction. It is used both for
// connection-point orientation and for edge-exit direction in routing.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Offset returns p moved dist units along the direction.
func (d Direction) Offset(p Point, dist float64) Point {
	switch d {
	case North:
		return Point{X: p.X, Y: p.Y - dist}
	case East:
		return Point{X: p.X + dist, Y: p.Y}
	case South:
		return Point{X: p.X, Y: p.Y + dist}
	case West:
		return Point{X: p.X - dist, Y: p.Y}
	default:
		return p
	}
}

// Rect is an axis-aligned rectangle given by its top-left corner and extents.
// Width and Height are never negative.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Contains checks if a point lies within the rectangle (boundary inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Expand grows the rectangle outward by margin on all sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// ShapeType tags a shape variant. The shapes package maps each tag to its
// connection-point generator and default size.
type ShapeType string

// Shape represents a box on the diagram canvas. Container shapes may nest
// other shapes via ParentID/Children links.
type Shape struct {
	ID       string    `json:"id"`
	Type     ShapeType `json:"type"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Label    string    `json:"label,omitempty"`
	ParentID string    `json:"parentId,omitempty"`
	Children []string  `json:"children,omitempty"`
}

// Bounds returns the shape's rectangle.
func (s Shape) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// Center returns the center point of the shape.
func (s Shape) Center() Point {
	return s.Bounds().Center()
}

// ConnectionPoint is a named attachment location on a shape's boundary.
// Position is expressed as fractions of the shape bounds (0..1 on each axis).
// FixedOffsetY, when set, overrides the fractional Y with an absolute pixel
// offset from the shape's top edge; elongated shapes use it for evenly
// spaced points.
type ConnectionPoint struct {
	ID           string    `json:"id"`
	Position     Point     `json:"position"`
	Direction    Direction `json:"direction"`
	FixedOffsetY *float64  `json:"fixedOffsetY,omitempty"`
}

// Connector is a directed edge between two shapes.
type Connector struct {
	ID   string `json:"id"`
	From string `json:"from"` // source shape ID
	To   string `json:"to"`   // target shape ID
}

// Diagram is a complete diagram document: shapes plus the connectors
// routed between them.
type Diagram struct {
	Shapes     []Shape     `json:"shapes"`
	Connectors []Connector `json:"connectors"`
}

// ShapeByID returns the shape with the given ID, or nil.
func (d *Diagram) ShapeByID(id string) *Shape {
	for i := range d.Shapes {
		if d.Shapes[i].ID == id {
			return &d.Shapes[i]
		}
	}
	return nil
}

// Route is an ordered point sequence from a source connection point to a
// target connection point. A valid route is axis-aligned: consecutive points
// share an X or Y coordinate. A 2-point diagonal route is the failure
// fallback and callers treat it as such.
type Route struct {
	Points []Point
	Cost   float64
}

// IsEmpty returns true if the route has no points.
func (r Route) IsEmpty() bool {
	return len(r.Points) == 0
}
