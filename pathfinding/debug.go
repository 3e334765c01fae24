package pathfinding

import "orthoroute/core"

// DebugInfo captures the artifacts of one routing computation for an
// optional diagnostic view: the graph that was searched, the node expansion
// order, and the resulting route.
type DebugInfo struct {
	Graph   *Graph
	Visited []core.Point
	Route   []core.Point
}

// Observer receives DebugInfo after each routing computation. The router
// invokes it synchronously on the calling goroutine; observers must not
// block. A nil observer costs nothing.
type Observer func(DebugInfo)
