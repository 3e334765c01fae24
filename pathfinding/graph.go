package pathfinding

import (
	"math"
	"sort"
	"strconv"

	"orthoroute/core"
	"orthoroute/geometry"
)

// Node is a waypoint in the visibility graph. Its ID is derived from the
// quantized coordinates, so nodes at the same position deduplicate.
type Node struct {
	ID   string
	X, Y float64
}

// Point returns the node's position.
func (n Node) Point() core.Point {
	return core.Point{X: n.X, Y: n.Y}
}

// Graph is an orthogonal visibility graph: nodes at obstacle corners
// (expanded by the clearance margin) and at connection points, connected by
// axis-aligned edges verified collision-free at construction time.
type Graph struct {
	Nodes map[string]Node
	Edges map[string][]string // adjacency list, keyed by source node ID
}

// NodeID derives the identity of a position under the configured precision.
func NodeID(p core.Point, precision int) string {
	return strconv.FormatFloat(quantize(p.X, precision), 'f', precision, 64) +
		"," +
		strconv.FormatFloat(quantize(p.Y, precision), 'f', precision, 64)
}

func quantize(v float64, precision int) float64 {
	scale := math.Pow10(precision)
	return math.Round(v*scale) / scale
}

// HasNode reports whether a position resolves to a graph node.
func (g *Graph) HasNode(p core.Point, precision int) bool {
	_, ok := g.Nodes[NodeID(p, precision)]
	return ok
}

// Neighbors returns the adjacency list of a node.
func (g *Graph) Neighbors(id string) []string {
	return g.Edges[id]
}

// BuildVisibilityGraph constructs the graph for one routing call.
//
// Seed coordinates come from the obstacle corners expanded by the clearance
// margin and from every supplied connection point (so routes can start and
// end there, and pass through unrelated shapes' points when unobstructed).
// Nodes are placed on the partial grid spanned by the seed X and Y
// coordinates, minus positions strictly inside an obstacle; consecutive
// nodes along each grid line become bidirectional edges unless the segment
// between them crosses an obstacle interior or exceeds the maximum
// connection distance.
//
// Edges keep the clearance margin: they are collision-tested against the
// expanded obstacle interiors, so routes cannot skim a shape edge. The
// exception is edges incident to a supplied connection point, which are
// tested against the raw interiors only, because connection points sit
// exactly on shape boundaries (inside their own shape's clearance band) and
// would otherwise be unreachable.
func BuildVisibilityGraph(obstacles []core.Rect, points []core.Point, cfg RoutingConfig) *Graph {
	expanded := make([]core.Rect, len(obstacles))
	var seeds []core.Point
	for i, r := range obstacles {
		e := r.Expand(cfg.NudgeDistance)
		expanded[i] = e
		seeds = append(seeds,
			core.Point{X: e.Left(), Y: e.Top()},
			core.Point{X: e.Right(), Y: e.Top()},
			core.Point{X: e.Left(), Y: e.Bottom()},
			core.Point{X: e.Right(), Y: e.Bottom()},
		)
	}
	seeds = append(seeds, points...)

	pointIDs := make(map[string]bool, len(points))
	for _, p := range points {
		pointIDs[NodeID(p, cfg.NodePrecision)] = true
	}

	if len(seeds) == 0 {
		return &Graph{Nodes: map[string]Node{}, Edges: map[string][]string{}}
	}

	// The corridor ring gives routes an escape lane around the content.
	bbox := geometry.BoundingBox(seeds)
	outer := bbox.Expand(cfg.CorridorWidth)
	xs := collectAxis(seeds, outer, cfg.NodePrecision, func(p core.Point) float64 { return p.X })
	ys := collectAxis(seeds, outer, cfg.NodePrecision, func(p core.Point) float64 { return p.Y })

	g := &Graph{
		Nodes: make(map[string]Node, len(xs)*len(ys)),
		Edges: make(map[string][]string),
	}

	for _, y := range ys {
		for _, x := range xs {
			p := core.Point{X: x, Y: y}
			if insideAnyObstacle(p, obstacles) {
				continue
			}
			id := NodeID(p, cfg.NodePrecision)
			g.Nodes[id] = Node{ID: id, X: quantize(x, cfg.NodePrecision), Y: quantize(y, cfg.NodePrecision)}
		}
	}

	// Horizontal edges: consecutive surviving nodes along each row.
	for _, y := range ys {
		var prev *Node
		for _, x := range xs {
			id := NodeID(core.Point{X: x, Y: y}, cfg.NodePrecision)
			node, ok := g.Nodes[id]
			if !ok {
				prev = nil
				continue
			}
			if prev != nil {
				g.connect(*prev, node, obstacles, expanded, pointIDs, cfg)
			}
			n := node
			prev = &n
		}
	}

	// Vertical edges: consecutive surviving nodes along each column.
	for _, x := range xs {
		var prev *Node
		for _, y := range ys {
			id := NodeID(core.Point{X: x, Y: y}, cfg.NodePrecision)
			node, ok := g.Nodes[id]
			if !ok {
				prev = nil
				continue
			}
			if prev != nil {
				g.connect(*prev, node, obstacles, expanded, pointIDs, cfg)
			}
			n := node
			prev = &n
		}
	}

	return g
}

// connect adds a bidirectional edge between two nodes if the segment is
// short enough and collides with no obstacle interior. Edges touching a
// connection-point node are tested against the raw obstacles, everything
// else against the clearance-expanded ones.
func (g *Graph) connect(a, b Node, obstacles, expanded []core.Rect, pointIDs map[string]bool, cfg RoutingConfig) {
	if geometry.Distance(a.Point(), b.Point()) > cfg.MaxConnectionDistance {
		return
	}
	rects := expanded
	if pointIDs[a.ID] || pointIDs[b.ID] {
		rects = obstacles
	}
	for _, r := range rects {
		if geometry.SegmentIntersectsRect(a.Point(), b.Point(), r) {
			return
		}
	}
	g.Edges[a.ID] = append(g.Edges[a.ID], b.ID)
	g.Edges[b.ID] = append(g.Edges[b.ID], a.ID)
}

// collectAxis gathers the sorted, deduplicated axis coordinates of the
// seeds plus the two corridor-ring lines.
func collectAxis(seeds []core.Point, outer core.Rect, precision int, axis func(core.Point) float64) []float64 {
	set := make(map[float64]bool, len(seeds)+2)
	for _, p := range seeds {
		set[quantize(axis(p), precision)] = true
	}
	set[quantize(axis(core.Point{X: outer.Left(), Y: outer.Top()}), precision)] = true
	set[quantize(axis(core.Point{X: outer.Right(), Y: outer.Bottom()}), precision)] = true

	vals := make([]float64, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Float64s(vals)
	return vals
}

// insideAnyObstacle reports whether a point lies strictly inside an
// obstacle. Boundary points survive so connection points on shape edges
// remain reachable.
func insideAnyObstacle(p core.Point, obstacles []core.Rect) bool {
	for _, r := range obstacles {
		if p.X > r.Left()+geometry.Epsilon && p.X < r.Right()-geometry.Epsilon &&
			p.Y > r.Top()+geometry.Epsilon && p.Y < r.Bottom()-geometry.Epsilon {
			return true
		}
	}
	return false
}
