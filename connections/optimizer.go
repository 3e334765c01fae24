package connections

import (
	"math"
	"sort"

	"orthoroute/core"
	"orthoroute/geometry"
	"orthoroute/shapes"
)

// earlyExitScore stops the trial loop as soon as a candidate scores above
// it; near-perfect routes are not worth comparing against the rest.
const earlyExitScore = 0.95

// SelectionOptions configures FindOptimalConnectionPoints.
type SelectionOptions struct {
	// Shapes is the full shape set, used to derive routing obstacles.
	Shapes []core.Shape
	// SourceShapeID and TargetShapeID name the endpoint shapes. When set
	// they identify the shapes to exclude from the obstacle set; when
	// empty the endpoints are matched by bounds equality against
	// srcBounds/dstBounds, which is ambiguous if shapes share bounds.
	SourceShapeID string
	TargetShapeID string
	// ExcludeShapeIDs lists additional shapes that must never block the
	// route.
	ExcludeShapeIDs []string
	// UseSmartSelection enables route-trialed selection. When false the
	// selector degrades to pure nearest-distance pairing.
	UseSmartSelection bool
}

// OptimalConnection is the selector's result: the chosen connection point
// pair with its absolute endpoints and route score. It is always populated;
// selection can degrade but never fails.
type OptimalConnection struct {
	SourceConnectionPointID string
	TargetConnectionPointID string
	SourceDirection         core.Direction
	TargetDirection         core.Direction
	Start                   core.Point
	End                     core.Point
	Score                   float64
}

// pairCandidate is one (source point, target point) combination under
// evaluation. Ephemeral.
type pairCandidate struct {
	src, dst   core.ConnectionPoint
	start, end core.Point
	distance   float64
}

// FindOptimalConnectionPoints picks the best (source, target) connection
// point pair between two shapes.
//
// Candidates are pre-filtered by Euclidean distance and capped at
// MaxConnectionPointTrials, because running full obstacle-aware routing for
// every combination is too expensive during interactive dragging. Each
// retained pair is routed with the endpoint shapes and their containers
// excluded as obstacles, and scored with ScoreRoute; a score above the
// early-exit threshold is accepted immediately. If every trial fails, the
// selector falls back to nearest-distance pairing, which has no obstacle
// dependency and therefore always succeeds.
func (r *Router) FindOptimalConnectionPoints(srcPoints, dstPoints []core.ConnectionPoint, srcBounds, dstBounds core.Rect, opts SelectionOptions) OptimalConnection {
	candidates := buildCandidates(srcPoints, dstPoints, srcBounds, dstBounds)
	if len(candidates) == 0 {
		return OptimalConnection{}
	}

	// Too few shapes means too few obstacles to matter.
	if !opts.UseSmartSelection || len(opts.Shapes) < 3 {
		return nearestPair(candidates)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	if limit := r.cfg.MaxConnectionPointTrials; len(candidates) > limit {
		candidates = candidates[:limit]
	}

	blocking := r.blockingShapes(srcBounds, dstBounds, opts)
	allPoints := make([]core.Point, 0, len(candidates)*2)
	for _, p := range srcPoints {
		allPoints = append(allPoints, shapes.AbsolutePosition(p, srcBounds))
	}
	for _, p := range dstPoints {
		allPoints = append(allPoints, shapes.AbsolutePosition(p, dstBounds))
	}

	best := OptimalConnection{Score: 0}
	haveBest := false
	for _, c := range candidates {
		score := r.trialPair(c, blocking, allPoints)
		if score > best.Score || !haveBest {
			best = OptimalConnection{
				SourceConnectionPointID: c.src.ID,
				TargetConnectionPointID: c.dst.ID,
				SourceDirection:         c.src.Direction,
				TargetDirection:         c.dst.Direction,
				Start:                   c.start,
				End:                     c.end,
				Score:                   score,
			}
			haveBest = true
		}
		if score > earlyExitScore {
			return best
		}
	}

	if best.Score <= 0 {
		return nearestPair(candidates)
	}
	return best
}

// trialPair routes one candidate pair and scores the result. A panic inside
// a single trial is logged and treated as a failed candidate; it never
// aborts the overall selection.
func (r *Router) trialPair(c pairCandidate, blocking []core.Shape, allPoints []core.Point) (score float64) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Printf("connections: routing trial %s->%s panicked: %v", c.src.ID, c.dst.ID, rec)
			score = 0
		}
	}()

	route := r.FindOrthogonalRoute(c.start, c.end, blocking, c.src.Direction, c.dst.Direction, allPoints)
	return ScoreRoute(route)
}

// blockingShapes filters the shape set down to the routing obstacles for
// this selection: everything except the endpoint shapes, their containers,
// and the explicitly excluded IDs. Endpoints are identified by the explicit
// shape IDs when supplied, by bounds equality otherwise.
func (r *Router) blockingShapes(srcBounds, dstBounds core.Rect, opts SelectionOptions) []core.Shape {
	srcID, dstID := opts.SourceShapeID, opts.TargetShapeID
	if srcID == "" || dstID == "" {
		for _, s := range opts.Shapes {
			if srcID == "" && s.Bounds() == srcBounds {
				srcID = s.ID
			}
			if dstID == "" && s.Bounds() == dstBounds {
				dstID = s.ID
			}
		}
	}
	excluded := shapes.RoutingExclusions(srcID, dstID, opts.Shapes, opts.ExcludeShapeIDs)

	var blocking []core.Shape
	for _, s := range opts.Shapes {
		if !excluded[s.ID] {
			blocking = append(blocking, s)
		}
	}
	return blocking
}

// ScoreRoute rates a route in [0,1]. Empty routes and the 2-point diagonal
// fallback (invalid for orthogonal routing) score 0; coincident endpoints
// score 1; otherwise shorter routes score exponentially higher.
func ScoreRoute(route []core.Point) float64 {
	if len(route) == 0 {
		return 0
	}
	if len(route) == 2 &&
		math.Abs(route[0].X-route[1].X) > geometry.Epsilon &&
		math.Abs(route[0].Y-route[1].Y) > geometry.Epsilon {
		return 0
	}
	length := geometry.PathLength(route)
	if length < geometry.Epsilon {
		return 1
	}
	return math.Exp(-length / 1000)
}

// nearestPair returns the minimum-distance candidate with no obstacle
// awareness: the guaranteed fallback. Its score rates the straight-line
// distance so callers can still compare results.
func nearestPair(candidates []pairCandidate) OptimalConnection {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.distance < best.distance {
			best = c
		}
	}
	score := 1.0
	if best.distance > geometry.Epsilon {
		score = math.Exp(-best.distance / 1000)
	}
	return OptimalConnection{
		SourceConnectionPointID: best.src.ID,
		TargetConnectionPointID: best.dst.ID,
		SourceDirection:         best.src.Direction,
		TargetDirection:         best.dst.Direction,
		Start:                   best.start,
		End:                     best.end,
		Score:                   score,
	}
}

// buildCandidates resolves every (source, target) point combination to
// absolute positions with Euclidean distances.
func buildCandidates(srcPoints, dstPoints []core.ConnectionPoint, srcBounds, dstBounds core.Rect) []pairCandidate {
	candidates := make([]pairCandidate, 0, len(srcPoints)*len(dstPoints))
	for _, sp := range srcPoints {
		start := shapes.AbsolutePosition(sp, srcBounds)
		for _, dp := range dstPoints {
			end := shapes.AbsolutePosition(dp, dstBounds)
			candidates = append(candidates, pairCandidate{
				src:      sp,
				dst:      dp,
				start:    start,
				end:      end,
				distance: geometry.Distance(start, end),
			})
		}
	}
	return candidates
}
