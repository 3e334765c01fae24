// Package pathfinding builds visibility graphs over shape obstacles and
// searches them for minimum-cost orthogonal routes.
package pathfinding

import "time"

// RoutingConfig holds every tunable the routing engine reads. Hosts supply
// one per routing session; the zero value is not usable, start from
// DefaultRoutingConfig.
type RoutingConfig struct {
	// NudgeDistance is the clearance margin added around each obstacle
	// before its corners become graph nodes, so routes don't hug shape edges.
	NudgeDistance float64

	// CorridorWidth is the extra routable margin around the diagram content:
	// the graph gets an outer ring of grid lines this far outside the
	// bounding box of all nodes, guaranteeing an escape lane around dense
	// shape clusters.
	CorridorWidth float64

	// MaxConnectionDistance prunes graph edges longer than this, bounding
	// the O(n²) construction on dense diagrams.
	MaxConnectionDistance float64

	// MaxConnectionPointTrials caps how many candidate connection-point
	// pairs the selector routes and scores.
	MaxConnectionPointTrials int

	// MaxIterations caps A* node expansions; an exhausted budget is
	// reported as no route found.
	MaxIterations int

	// BendCost is the penalty charged per direction change, preferring
	// fewer-turn paths of similar length.
	BendCost float64

	// SegmentEstimate weights the straight-line-distance heuristic. Values
	// above 1 break admissibility.
	SegmentEstimate float64

	// NodePrecision is the number of decimal digits coordinates are rounded
	// to when deriving node identity, so coincident nodes deduplicate.
	NodePrecision int

	// CacheTTL and CacheMaxSize bound the visibility-graph cache.
	CacheTTL     time.Duration
	CacheMaxSize int
}

// DefaultRoutingConfig returns the standard configuration.
func DefaultRoutingConfig() RoutingConfig {
	return RoutingConfig{
		NudgeDistance:            20,
		CorridorWidth:            40,
		MaxConnectionDistance:    2000,
		MaxConnectionPointTrials: 16,
		MaxIterations:            1000,
		BendCost:                 50,
		SegmentEstimate:          1.0,
		NodePrecision:            2,
		CacheTTL:                 5000 * time.Millisecond,
		CacheMaxSize:             10,
	}
}
