package connector

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
)

// Plan routes every non-base connector down to its component's base level
// and synthesizes the deduplicated segment list.
//
// Per component: baseLevel is the minimum floor level among member nodes;
// every node above it is A*-routed to each base node and the cheapest result
// kept. A node with no path to any base node in its own component is
// recorded in Summary.Unreachable instead of failing the call. A singleton
// component's node is its own base: it appears in zero routes and is not
// unreachable.
//
// Complexity: O(R × (N + E) log N) where R = non-base nodes × base nodes in
// their component.
func Plan(g *Graph) (*RoutePlan, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	segments := newSegmentSet(g)
	plan := &RoutePlan{Graph: g}
	unreachable := make([]string, 0)

	comps := g.Components()
	for _, comp := range comps {
		baseLevel := math.MaxInt
		for _, id := range comp {
			if lvl := g.nodes[id].FloorLevel; lvl < baseLevel {
				baseLevel = lvl
			}
		}
		var baseNodes, upper []string
		for _, id := range comp {
			if g.nodes[id].FloorLevel == baseLevel {
				baseNodes = append(baseNodes, id)
			} else {
				upper = append(upper, id)
			}
		}

		for _, id := range upper {
			var bestPath []string
			bestCost := math.Inf(1)
			for _, base := range baseNodes {
				if path, cost, ok := g.shortestPath(id, base); ok && cost < bestCost {
					bestPath, bestCost = path, cost
				}
			}
			if bestPath == nil {
				// Should not occur given component membership; guarded.
				unreachable = append(unreachable, id)
				continue
			}
			plan.Routes = append(plan.Routes, buildRoute(g, segments, bestPath, bestCost))
		}
	}

	plan.Segments = segments.list
	plan.Summary = Summary{
		ComponentCount: len(comps),
		RouteCount:     len(plan.Routes),
		SegmentCount:   len(segments.list),
		Unreachable:    unreachable,
	}

	if l := g.options.Logger; l != nil {
		l.Debug("connector: multi-floor routing complete",
			"components", plan.Summary.ComponentCount,
			"routes", plan.Summary.RouteCount,
			"segments", plan.Summary.SegmentCount,
			"unreachable", len(unreachable))
	}

	return plan, nil
}

// buildRoute converts an A* node sequence into a Route, interning each
// consecutive pair as a shared segment.
func buildRoute(g *Graph, segments *segmentSet, path []string, cost float64) Route {
	route := Route{
		ID:    fmt.Sprintf("route_%s_%s", path[0], path[len(path)-1]),
		From:  path[0],
		To:    path[len(path)-1],
		Cost:  cost,
		Nodes: path,
	}

	floorSet := make(map[int]struct{}, len(path))
	for _, id := range path {
		floorSet[g.nodes[id].FloorLevel] = struct{}{}
	}
	for lvl := range floorSet {
		route.Floors = append(route.Floors, lvl)
	}
	sort.Ints(route.Floors)

	for i := 1; i < len(path); i++ {
		route.Segments = append(route.Segments, segments.intern(path[i-1], path[i]).ID)
	}

	return route
}

// shortestPath runs weighted-graph A* from one node to another. The
// heuristic is the 3D Euclidean distance incorporating FloorHeight × Δlevel,
// admissible while both weight multipliers stay ≥ 1 (the default regime).
//
// The open set is a lazy-decrease-key min-heap keyed by f-score with ties
// broken by insertion order.
func (g *Graph) shortestPath(from, to string) ([]string, float64, bool) {
	target := g.nodes[to]
	h := func(id string) float64 {
		n := g.nodes[id]
		dx := n.Centroid.X - target.Centroid.X
		dy := n.Centroid.Y - target.Centroid.Y
		dz := g.Elevation(n) - g.Elevation(target)

		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}

	gScore := map[string]float64{from: 0}
	cameFrom := make(map[string]string)
	closed := make(map[string]bool)

	pq := make(graphPQ, 0, len(g.order))
	heap.Init(&pq)
	seq := 0
	push := func(id string, f float64) {
		seq++
		heap.Push(&pq, &graphItem{id: id, f: f, seq: seq})
	}
	push(from, h(from))

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*graphItem)
		current := item.id
		if closed[current] {
			continue // stale entry
		}
		if current == to {
			return reconstructIDs(cameFrom, current), gScore[current], true
		}
		closed[current] = true

		for _, e := range g.adjacency[current] {
			if closed[e.To] {
				continue
			}
			tentative := gScore[current] + e.Weight
			if best, seen := gScore[e.To]; seen && tentative >= best {
				continue
			}
			gScore[e.To] = tentative
			cameFrom[e.To] = current
			push(e.To, tentative+h(e.To))
		}
	}

	return nil, 0, false
}

// reconstructIDs walks came-from links back to the start.
func reconstructIDs(cameFrom map[string]string, end string) []string {
	path := []string{end}
	for {
		prev, ok := cameFrom[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}
	// Reverse in place: start → end.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// graphItem is one open-set entry for graph A*.
type graphItem struct {
	id  string
	f   float64
	seq int
}

// graphPQ is a binary min-heap of *graphItem ordered by f ascending, ties by
// insertion order.
type graphPQ []*graphItem

func (pq graphPQ) Len() int { return len(pq) }

func (pq graphPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq graphPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *graphPQ) Push(x interface{}) { *pq = append(*pq, x.(*graphItem)) }

func (pq *graphPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
