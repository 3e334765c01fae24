package pathfinding

import (
	"orthoroute/core"
	"orthoroute/geometry"
)

// SimplifyRoute removes duplicate and collinear waypoints from a route.
func SimplifyRoute(points []core.Point) []core.Point {
	if len(points) <= 2 {
		return points
	}

	deduped := make([]core.Point, 1, len(points))
	deduped[0] = points[0]
	for _, p := range points[1:] {
		if !geometry.SamePoint(deduped[len(deduped)-1], p) {
			deduped = append(deduped, p)
		}
	}
	if len(deduped) <= 2 {
		return deduped
	}

	simplified := []core.Point{deduped[0]}
	for i := 1; i < len(deduped)-1; i++ {
		if !geometry.IsAligned(deduped[i-1], deduped[i], deduped[i+1]) {
			simplified = append(simplified, deduped[i])
		}
	}
	return append(simplified, deduped[len(deduped)-1])
}

// ReduceDogLegs straightens zig-zag detours: where two consecutive turns can
// be replaced by a single L-shaped connection clear of every obstacle, the
// intermediate corner is dropped.
func ReduceDogLegs(points []core.Point, obstacles []core.Rect) []core.Point {
	if len(points) < 4 {
		return points
	}

	out := []core.Point{points[0]}
	i := 0
	for i < len(points)-1 {
		if i+3 < len(points) {
			a, d := points[i], points[i+3]
			if corner, ok := clearLCorner(a, d, obstacles); ok {
				out = append(out, corner, d)
				i += 3
				continue
			}
		}
		out = append(out, points[i+1])
		i++
	}
	return SimplifyRoute(out)
}

// clearLCorner finds an obstacle-free single-corner connection between two
// points, trying horizontal-first then vertical-first.
func clearLCorner(a, b core.Point, obstacles []core.Rect) (core.Point, bool) {
	for _, corner := range []core.Point{{X: b.X, Y: a.Y}, {X: a.X, Y: b.Y}} {
		if segmentClear(a, corner, obstacles) && segmentClear(corner, b, obstacles) {
			return corner, true
		}
	}
	return core.Point{}, false
}

func segmentClear(a, b core.Point, obstacles []core.Rect) bool {
	for _, r := range obstacles {
		if geometry.SegmentIntersectsRect(a, b, r) {
			return false
		}
	}
	return true
}
