// Package connections exposes the routing engine's two entry points:
// FindOrthogonalRoute for a single obstacle-avoiding path, and
// FindOptimalConnectionPoints for selecting the best endpoint pair between
// two shapes.
package connections

import (
	"log"

	"orthoroute/core"
	"orthoroute/pathfinding"
	"orthoroute/shapes"
)

// Router issues routing calls over a shared visibility-graph cache. One
// Router per diagram/routing session; it is safe for concurrent use because
// the cache is, and everything else is immutable after construction aside
// from the setters below.
type Router struct {
	cfg      pathfinding.RoutingConfig
	cache    *pathfinding.GraphCache
	observer pathfinding.Observer
	logger   *log.Logger
}

// NewRouter creates a router with its own graph cache.
func NewRouter(cfg pathfinding.RoutingConfig) *Router {
	return &Router{
		cfg:    cfg,
		cache:  pathfinding.NewGraphCache(cfg),
		logger: log.Default(),
	}
}

// SetObserver installs a debug observer invoked after each routing
// computation. Pass nil to remove it.
func (r *Router) SetObserver(obs pathfinding.Observer) {
	r.observer = obs
}

// SetLogger replaces the router's logger.
func (r *Router) SetLogger(l *log.Logger) {
	if l != nil {
		r.logger = l
	}
}

// Cache exposes the graph cache, mainly for instrumentation.
func (r *Router) Cache() *pathfinding.GraphCache {
	return r.cache
}

// FindOrthogonalRoute computes an obstacle-avoiding, axis-aligned route from
// start to end. obstacleShapes are the blocking shapes (the caller excludes
// the connector's own endpoints and their containers first, see
// shapes.RoutingExclusions). allPoints are every connection point of every
// shape, included as graph nodes so routes can terminate there and pass
// through unrelated shapes' points when unobstructed.
//
// The route leaves start along srcDir and enters end against dstDir: both
// endpoints get a stub waypoint one clearance margin out, which keeps the
// first and last segments perpendicular to the shape edges.
//
// Returns an empty slice when no path exists within the iteration budget.
func (r *Router) FindOrthogonalRoute(start, end core.Point, obstacleShapes []core.Shape, srcDir, dstDir core.Direction, allPoints []core.Point) []core.Point {
	obstacles := make([]core.Rect, 0, len(obstacleShapes))
	for _, s := range obstacleShapes {
		obstacles = append(obstacles, s.Bounds())
	}

	startStub := srcDir.Offset(start, r.cfg.NudgeDistance)
	endStub := dstDir.Offset(end, r.cfg.NudgeDistance)

	graphPoints := make([]core.Point, 0, len(allPoints)+4)
	graphPoints = append(graphPoints, allPoints...)
	graphPoints = append(graphPoints, start, end, startStub, endStub)

	fp := pathfinding.Fingerprint(obstacles, graphPoints)
	graph := r.cache.Graph(fp, func() *pathfinding.Graph {
		return pathfinding.BuildVisibilityGraph(obstacles, graphPoints, r.cfg)
	})

	var visited []core.Point
	var visitedPtr *[]core.Point
	if r.observer != nil {
		visitedPtr = &visited
	}

	route, err := pathfinding.FindRoute(graph,
		pathfinding.NodeID(startStub, r.cfg.NodePrecision),
		pathfinding.NodeID(endStub, r.cfg.NodePrecision),
		r.cfg, visitedPtr)
	if err != nil {
		if r.observer != nil {
			r.observer(pathfinding.DebugInfo{Graph: graph, Visited: visited})
		}
		return nil
	}

	points := make([]core.Point, 0, len(route.Points)+2)
	points = append(points, start)
	points = append(points, route.Points...)
	points = append(points, end)
	points = pathfinding.SimplifyRoute(points)
	// Straightening must respect the clearance margin, so the dog-leg pass
	// checks against the expanded obstacles, not the raw ones.
	expanded := make([]core.Rect, len(obstacles))
	for i, o := range obstacles {
		expanded[i] = o.Expand(r.cfg.NudgeDistance)
	}
	points = pathfinding.ReduceDogLegs(points, expanded)

	if r.observer != nil {
		r.observer(pathfinding.DebugInfo{Graph: graph, Visited: visited, Route: points})
	}
	return points
}

// RouteConnector routes one connector of a diagram end to end: it resolves
// both shapes' connection points, picks the optimal pair, and routes it.
// Convenience wrapper used by the viewer and exporter.
func (r *Router) RouteConnector(d *core.Diagram, conn core.Connector) ([]core.Point, OptimalConnection) {
	src := d.ShapeByID(conn.From)
	dst := d.ShapeByID(conn.To)
	if src == nil || dst == nil {
		return nil, OptimalConnection{}
	}

	srcPoints := shapes.ConnectionPointsForShape(src.Type, src.Height)
	dstPoints := shapes.ConnectionPointsForShape(dst.Type, dst.Height)

	choice := r.FindOptimalConnectionPoints(srcPoints, dstPoints, src.Bounds(), dst.Bounds(), SelectionOptions{
		Shapes:            d.Shapes,
		SourceShapeID:     src.ID,
		TargetShapeID:     dst.ID,
		UseSmartSelection: true,
	})

	excluded := shapes.RoutingExclusions(src.ID, dst.ID, d.Shapes, nil)
	var blocking []core.Shape
	for _, s := range d.Shapes {
		if !excluded[s.ID] {
			blocking = append(blocking, s)
		}
	}

	all := resolveAll(srcPoints, src.Bounds())
	all = append(all, resolveAll(dstPoints, dst.Bounds())...)

	route := r.FindOrthogonalRoute(choice.Start, choice.End, blocking,
		choice.SourceDirection, choice.TargetDirection, all)
	if len(route) == 0 {
		// Draw something rather than nothing: an L-shaped direct route.
		route = DirectRoute(choice.Start, choice.End, HorizontalFirst)
	}
	return route, choice
}

// resolveAll maps connection points to absolute canvas positions.
func resolveAll(points []core.ConnectionPoint, bounds core.Rect) []core.Point {
	out := make([]core.Point, 0, len(points))
	for _, p := range points {
		out = append(out, shapes.AbsolutePosition(p, bounds))
	}
	return out
}
