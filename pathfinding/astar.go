package pathfinding

import (
	"container/heap"
	"fmt"
	"math"

	"orthoroute/core"
	"orthoroute/geometry"
)

// dirNone marks a search node with no incoming direction (the start node).
const dirNone = core.Direction(-1)

// searchNode is one A* state: a graph node plus the cost and direction of
// the best known way to reach it.
type searchNode struct {
	id     string
	point  core.Point
	gCost  float64 // accumulated length + bend penalties
	hCost  float64 // heuristic to goal
	fCost  float64
	parent *searchNode
	dir    core.Direction // direction we entered this node from
	seq    int            // insertion order, the deterministic tie-break
	index  int            // heap index
}

// nodeQueue is a priority queue of search nodes ordered by fCost, with
// hCost and insertion order breaking ties. The ordering is stable and
// deterministic; repeated searches over the same graph expand nodes in the
// same sequence.
type nodeQueue []*searchNode

func (nq nodeQueue) Len() int { return len(nq) }

func (nq nodeQueue) Less(i, j int) bool {
	if nq[i].fCost != nq[j].fCost {
		return nq[i].fCost < nq[j].fCost
	}
	if nq[i].hCost != nq[j].hCost {
		return nq[i].hCost < nq[j].hCost
	}
	return nq[i].seq < nq[j].seq
}

func (nq nodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].index = i
	nq[j].index = j
}

func (nq *nodeQueue) Push(x interface{}) {
	n := len(*nq)
	node := x.(*searchNode)
	node.index = n
	*nq = append(*nq, node)
}

func (nq *nodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*nq = old[0 : n-1]
	return node
}

// edgeDirection returns the cardinal direction of a grid edge. Edges are
// axis-aligned by construction.
func edgeDirection(from, to core.Point) core.Direction {
	if math.Abs(from.X-to.X) < geometry.Epsilon {
		if to.Y > from.Y {
			return core.South
		}
		return core.North
	}
	if to.X > from.X {
		return core.East
	}
	return core.West
}

// FindRoute runs A* over the visibility graph from startID to goalID.
//
// Cost is accumulated Euclidean path length plus BendCost per direction
// change; the heuristic is SegmentEstimate times the straight-line distance
// to the goal, which never overestimates while bends only add cost. The
// search gives up after cfg.MaxIterations expansions; callers treat any
// error, including the iteration budget, as "no route".
//
// When visited is non-nil it receives the expansion order, for debug
// observers.
func FindRoute(g *Graph, startID, goalID string, cfg RoutingConfig, visited *[]core.Point) (core.Route, error) {
	start, ok := g.Nodes[startID]
	if !ok {
		return core.Route{}, fmt.Errorf("start node %s not in graph", startID)
	}
	goal, ok := g.Nodes[goalID]
	if !ok {
		return core.Route{}, fmt.Errorf("goal node %s not in graph", goalID)
	}
	if startID == goalID {
		return core.Route{Points: []core.Point{start.Point()}}, nil
	}

	openSet := &nodeQueue{}
	heap.Init(openSet)
	closed := make(map[string]bool)
	best := make(map[string]*searchNode)

	seq := 0
	startNode := &searchNode{
		id:    startID,
		point: start.Point(),
		hCost: cfg.SegmentEstimate * geometry.Distance(start.Point(), goal.Point()),
		dir:   dirNone,
		seq:   seq,
	}
	startNode.fCost = startNode.hCost
	heap.Push(openSet, startNode)
	best[startID] = startNode

	iterations := 0
	for openSet.Len() > 0 {
		iterations++
		if iterations > cfg.MaxIterations {
			return core.Route{}, fmt.Errorf("search exceeded iteration budget (%d)", cfg.MaxIterations)
		}

		current := heap.Pop(openSet).(*searchNode)
		if visited != nil {
			*visited = append(*visited, current.point)
		}
		if current.id == goalID {
			return reconstructRoute(current), nil
		}
		closed[current.id] = true

		for _, neighborID := range g.Neighbors(current.id) {
			if closed[neighborID] {
				continue
			}
			neighbor := g.Nodes[neighborID]

			dir := edgeDirection(current.point, neighbor.Point())
			moveCost := geometry.Distance(current.point, neighbor.Point())
			if current.dir != dirNone && current.dir != dir {
				moveCost += cfg.BendCost
			}
			tentative := current.gCost + moveCost

			existing, seen := best[neighborID]
			if !seen {
				seq++
				node := &searchNode{
					id:     neighborID,
					point:  neighbor.Point(),
					gCost:  tentative,
					hCost:  cfg.SegmentEstimate * geometry.Distance(neighbor.Point(), goal.Point()),
					parent: current,
					dir:    dir,
					seq:    seq,
				}
				node.fCost = node.gCost + node.hCost
				heap.Push(openSet, node)
				best[neighborID] = node
			} else if tentative < existing.gCost {
				existing.gCost = tentative
				existing.fCost = existing.gCost + existing.hCost
				existing.parent = current
				existing.dir = dir
				heap.Fix(openSet, existing.index)
			}
		}
	}

	return core.Route{}, fmt.Errorf("no path found")
}

// reconstructRoute walks parent links back from the goal.
func reconstructRoute(goal *searchNode) core.Route {
	var points []core.Point
	for n := goal; n != nil; n = n.parent {
		points = append(points, n.point)
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return core.Route{Points: points, Cost: goal.gCost}
}
