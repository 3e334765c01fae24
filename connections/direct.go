package connections

import (
	"orthoroute/core"
	"orthoroute/geometry"
)

// Strategy selects how a direct (non-obstacle-aware) route bends.
type Strategy int

const (
	// HorizontalFirst routes horizontally then vertically.
	HorizontalFirst Strategy = iota
	// VerticalFirst routes vertically then horizontally.
	VerticalFirst
	// MiddleSplit routes to the midpoint of the dominant axis, crosses
	// over, then continues.
	MiddleSplit
)

// DirectRoute creates a simple L- or Z-shaped orthogonal route ignoring
// obstacles. It is the last-resort fallback when graph routing fails; its
// output is always axis-aligned, so it never trips the diagonal failure
// signal.
func DirectRoute(start, end core.Point, strategy Strategy) []core.Point {
	if geometry.SamePoint(start, end) {
		return []core.Point{start}
	}
	aligned := start.X == end.X || start.Y == end.Y
	if aligned {
		return []core.Point{start, end}
	}

	switch strategy {
	case VerticalFirst:
		return []core.Point{start, {X: start.X, Y: end.Y}, end}
	case MiddleSplit:
		dx := end.X - start.X
		if dx < 0 {
			dx = -dx
		}
		dy := end.Y - start.Y
		if dy < 0 {
			dy = -dy
		}
		if dx >= dy {
			midX := (start.X + end.X) / 2
			return []core.Point{start, {X: midX, Y: start.Y}, {X: midX, Y: end.Y}, end}
		}
		midY := (start.Y + end.Y) / 2
		return []core.Point{start, {X: start.X, Y: midY}, {X: end.X, Y: midY}, end}
	default:
		return []core.Point{start, {X: end.X, Y: start.Y}, end}
	}
}
