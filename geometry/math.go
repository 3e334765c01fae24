// Package geometry provides the pure math primitives used by the routing
// engine. All functions are stateless; degenerate inputs (empty point lists)
// return zero values rather than errors.
package geometry

import (
	"math"

	"orthoroute/core"
)

// Epsilon is the tolerance for float coordinate comparison.
const Epsilon = 1e-9

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 core.Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// ManhattanDistance returns the Manhattan distance between two points.
func ManhattanDistance(p1, p2 core.Point) float64 {
	return math.Abs(p2.X-p1.X) + math.Abs(p2.Y-p1.Y)
}

// RectsIntersect reports whether two axis-aligned rectangles overlap.
// Separating-axis test: they intersect unless one lies entirely to one side
// of the other on either axis.
func RectsIntersect(a, b core.Rect) bool {
	if a.Right() < b.Left() || b.Right() < a.Left() {
		return false
	}
	if a.Bottom() < b.Top() || b.Bottom() < a.Top() {
		return false
	}
	return true
}

// BoundingBox returns the smallest rectangle containing all points.
// An empty point list yields the zero rectangle.
func BoundingBox(points []core.Point) core.Rect {
	if len(points) == 0 {
		return core.Rect{}
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return core.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// PathLength returns the cumulative segment length of a polyline.
func PathLength(points []core.Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// PointAlongPath returns the point at fraction t (0..1) of the polyline's
// arc length. It walks cumulative segment lengths and interpolates linearly
// within the segment containing the target arc length. An empty polyline
// yields the zero point.
func PointAlongPath(points []core.Point, t float64) core.Point {
	if len(points) == 0 {
		return core.Point{}
	}
	if len(points) == 1 || t <= 0 {
		return points[0]
	}
	if t >= 1 {
		return points[len(points)-1]
	}

	target := PathLength(points) * t
	walked := 0.0
	for i := 1; i < len(points); i++ {
		seg := Distance(points[i-1], points[i])
		if walked+seg >= target {
			if seg < Epsilon {
				return points[i]
			}
			f := (target - walked) / seg
			return core.Point{
				X: points[i-1].X + (points[i].X-points[i-1].X)*f,
				Y: points[i-1].Y + (points[i].Y-points[i-1].Y)*f,
			}
		}
		walked += seg
	}
	return points[len(points)-1]
}

// PathMidpoint returns the point halfway along the polyline's arc length.
func PathMidpoint(points []core.Point) core.Point {
	return PointAlongPath(points, 0.5)
}

// SegmentIntersectsRect reports whether the segment from a to b passes
// through the open interior of the rectangle. Endpoints on the boundary and
// segments running along an edge do not count as crossings. Liang-Barsky
// clipping against the strict interior, so it handles axis-aligned and
// diagonal segments uniformly.
func SegmentIntersectsRect(a, b core.Point, r core.Rect) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if math.Abs(p) < Epsilon {
			// Parallel to this boundary: outside means no intersection at all.
			return q > Epsilon
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-dx, a.X-r.Left()) {
		return false
	}
	if !clip(dx, r.Right()-a.X) {
		return false
	}
	if !clip(-dy, a.Y-r.Top()) {
		return false
	}
	if !clip(dy, r.Bottom()-a.Y) {
		return false
	}

	// Require a clipped span of positive length: merely touching the
	// boundary at a point or running along an edge is not a crossing.
	if t1-t0 < Epsilon {
		return false
	}
	mid := 0.5 * (t0 + t1)
	mx := a.X + dx*mid
	my := a.Y + dy*mid
	return mx > r.Left()+Epsilon && mx < r.Right()-Epsilon &&
		my > r.Top()+Epsilon && my < r.Bottom()-Epsilon
}

// IsAligned reports whether three points are collinear horizontally or
// vertically.
func IsAligned(p1, p2, p3 core.Point) bool {
	if math.Abs(p1.Y-p2.Y) < Epsilon && math.Abs(p2.Y-p3.Y) < Epsilon {
		return true
	}
	if math.Abs(p1.X-p2.X) < Epsilon && math.Abs(p2.X-p3.X) < Epsilon {
		return true
	}
	return false
}

// SamePoint reports whether two points coincide within tolerance.
func SamePoint(a, b core.Point) bool {
	return math.Abs(a.X-b.X) < Epsilon && math.Abs(a.Y-b.Y) < Epsilon
}
