package shapes

import (
	"orthoroute/core"
)

// IsShapeInsideContainer reports whether child is inside parent. Containment
// is decided by the child's center point only, not by full overlap: a large
// child whose center sits inside a small container still counts as
// contained. Callers depend on this exact behavior.
func IsShapeInsideContainer(child, parent core.Shape) bool {
	return parent.Bounds().Contains(child.Center())
}

// FindContainerAtPosition returns the most specific container holding the
// shape's center: among container-typed shapes whose bounds contain the
// center, the one with the smallest area wins. Returns nil when no container
// matches. Shapes listed in excludeIDs (and the shape itself) are skipped.
func FindContainerAtPosition(shape core.Shape, all []core.Shape, excludeIDs map[string]bool) *core.Shape {
	var best *core.Shape
	center := shape.Center()
	for i := range all {
		c := &all[i]
		if c.ID == shape.ID || excludeIDs[c.ID] {
			continue
		}
		if !IsContainer(c.Type) {
			continue
		}
		if !c.Bounds().Contains(center) {
			continue
		}
		if best == nil || c.Bounds().Area() < best.Bounds().Area() {
			best = c
		}
	}
	return best
}

// AllDescendantIDs walks Children links recursively and returns every
// descendant of the shape.
func AllDescendantIDs(id string, all []core.Shape) []string {
	byID := make(map[string]*core.Shape, len(all))
	for i := range all {
		byID[all[i].ID] = &all[i]
	}

	var out []string
	var walk func(string)
	walk = func(cur string) {
		s, ok := byID[cur]
		if !ok {
			return
		}
		for _, child := range s.Children {
			out = append(out, child)
			walk(child)
		}
	}
	walk(id)
	return out
}

// AllAncestorIDs walks ParentID links iteratively and returns every ancestor
// of the shape, nearest first. Stops on broken or cyclic links.
func AllAncestorIDs(id string, all []core.Shape) []string {
	byID := make(map[string]*core.Shape, len(all))
	for i := range all {
		byID[all[i].ID] = &all[i]
	}

	var out []string
	seen := map[string]bool{id: true}
	cur := byID[id]
	for cur != nil && cur.ParentID != "" {
		if seen[cur.ParentID] {
			break
		}
		seen[cur.ParentID] = true
		out = append(out, cur.ParentID)
		cur = byID[cur.ParentID]
	}
	return out
}

// RoutingExclusions builds the obstacle exclusion set for routing a
// connector: the source and target shapes themselves, their containers (a
// shape must not be blocked by its own surroundings), and any explicitly
// excluded IDs.
func RoutingExclusions(sourceID, targetID string, all []core.Shape, extra []string) map[string]bool {
	excluded := map[string]bool{}
	if sourceID != "" {
		excluded[sourceID] = true
	}
	if targetID != "" {
		excluded[targetID] = true
	}
	for _, id := range extra {
		excluded[id] = true
	}

	for _, endpoint := range []string{sourceID, targetID} {
		if endpoint == "" {
			continue
		}
		for i := range all {
			if all[i].ID != endpoint {
				continue
			}
			if c := FindContainerAtPosition(all[i], all, excluded); c != nil {
				excluded[c.ID] = true
			}
			for _, anc := range AllAncestorIDs(endpoint, all) {
				excluded[anc] = true
			}
		}
	}
	return excluded
}

// ObstacleRects filters shapes down to the routing obstacles: every shape
// not in the exclusion set, as its raw bounds.
func ObstacleRects(all []core.Shape, excluded map[string]bool) []core.Rect {
	var rects []core.Rect
	for i := range all {
		if excluded[all[i].ID] {
			continue
		}
		rects = append(rects, all[i].Bounds())
	}
	return rects
}
