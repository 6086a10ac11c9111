package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/circulation/geom"
	"github.com/katalvlaran/circulation/grid"
)

// cell identifies one grid cell. Used as the map key for scores and
// predecessor links.
type cell struct {
	col, row int
}

// neighborSteps enumerates 8-connectivity moves with their cell-unit costs:
// N, NE, E, SE, S, SW, W, NW.
var neighborSteps = []struct {
	dc, dr int
	cost   float64
}{
	{0, -1, 1}, {1, -1, math.Sqrt2},
	{1, 0, 1}, {1, 1, math.Sqrt2},
	{0, 1, 1}, {-1, 1, math.Sqrt2},
	{-1, 0, 1}, {-1, -1, math.Sqrt2},
}

// FindPath computes the shortest obstacle-free path between start and goal
// over g, in the discretized sense described in the package documentation.
//
// Returns:
//
//   - (path, nil) on success; waypoints lie on cell centers.
//   - (nil, nil) when no path exists; an expected outcome, not an error.
//     This covers unreachable pairs, endpoints that cannot be snapped to
//     free space, and an exceeded expansion budget.
//   - (nil, ErrNilGrid) when g is nil.
func FindPath(g *grid.ObstacleGrid, start, goal geom.Point, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	startCell, ok := snapToFree(g, cellAt(g, start))
	if !ok {
		return nil, nil
	}
	goalCell, ok := snapToFree(g, cellAt(g, goal))
	if !ok {
		return nil, nil
	}

	r := &runner{
		grid:     g,
		options:  cfg,
		goal:     goalCell,
		gScore:   map[cell]float64{startCell: 0},
		cameFrom: make(map[cell]cell),
		closed:   make(map[cell]bool),
	}
	heap.Init(&r.open)
	r.push(startCell, heuristic(startCell, goalCell))

	return r.search(startCell)
}

// cellAt converts p to clamped cell coordinates on g.
func cellAt(g *grid.ObstacleGrid, p geom.Point) cell {
	col, row := g.CellAt(p)

	return cell{col: col, row: row}
}

// snapToFree returns c when it is already free. Otherwise it scans expanding
// square rings of radius 1..maxSnapRadius around c and returns the first
// free cell in increasing (dr,dc) perimeter order. Tie-breaking is scan
// order, not true nearest, so results are reproducible.
func snapToFree(g *grid.ObstacleGrid, c cell) (cell, bool) {
	if !g.Occupied(c.col, c.row) {
		return c, true
	}
	for r := 1; r <= maxSnapRadius; r++ {
		for dr := -r; dr <= r; dr++ {
			for dc := -r; dc <= r; dc++ {
				if max(abs(dr), abs(dc)) != r {
					continue // interior of the ring, already scanned
				}
				cand := cell{col: c.col + dc, row: c.row + dr}
				if g.InBounds(cand.col, cand.row) && !g.Occupied(cand.col, cand.row) {
					return cand, true
				}
			}
		}
	}

	return cell{}, false
}

// heuristic is the Euclidean distance between two cells in cell units.
func heuristic(a, b cell) float64 {
	return math.Hypot(float64(a.col-b.col), float64(a.row-b.row))
}

// runner holds the mutable state of one A* execution.
type runner struct {
	grid     *grid.ObstacleGrid
	options  Options
	goal     cell
	open     openPQ
	gScore   map[cell]float64
	cameFrom map[cell]cell
	closed   map[cell]bool
	pushSeq  int
}

// push adds c to the open set with the given f-score, recording insertion
// order for stable tie-breaking.
func (r *runner) push(c cell, f float64) {
	r.pushSeq++
	heap.Push(&r.open, &openItem{cell: c, f: f, seq: r.pushSeq})
}

// search runs the main A* loop from startCell until the goal is reached,
// the open set empties, or the expansion budget is exhausted.
func (r *runner) search(startCell cell) (*Path, error) {
	expanded := 0
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		current := item.cell

		// Stale heap entry from the lazy decrease-key strategy.
		if r.closed[current] {
			continue
		}

		if current == r.goal {
			return r.reconstruct(current), nil
		}

		r.closed[current] = true
		expanded++
		if expanded > r.options.MaxExpansions {
			if r.options.Logger != nil {
				r.options.Logger.Debug("astar: expansion budget exhausted",
					"budget", r.options.MaxExpansions,
					"start", startCell, "goal", r.goal)
			}

			return nil, nil
		}

		r.expand(current)
	}

	// Open set emptied before reaching the goal: no path in the free-space
	// graph. Expected outcome, not an error.
	return nil, nil
}

// expand relaxes all admissible neighbors of current.
func (r *runner) expand(current cell) {
	for _, step := range neighborSteps {
		next := cell{col: current.col + step.dc, row: current.row + step.dr}
		if r.grid.Occupied(next.col, next.row) || r.closed[next] {
			continue
		}
		// No corner-cutting: a diagonal needs both adjacent orthogonal
		// cells free.
		if step.dc != 0 && step.dr != 0 {
			if r.grid.Occupied(current.col+step.dc, current.row) ||
				r.grid.Occupied(current.col, current.row+step.dr) {
				continue
			}
		}

		tentative := r.gScore[current] + step.cost
		if best, seen := r.gScore[next]; seen && tentative >= best {
			continue
		}
		r.gScore[next] = tentative
		r.cameFrom[next] = current
		r.push(next, tentative+heuristic(next, r.goal))
	}
}

// reconstruct walks the came-from links from end back to the start and
// converts each cell to its world-space center, accumulating the polyline
// length in world units.
func (r *runner) reconstruct(end cell) *Path {
	cells := []cell{end}
	for c := end; ; {
		prev, ok := r.cameFrom[c]
		if !ok {
			break
		}
		cells = append(cells, prev)
		c = prev
	}

	p := &Path{Points: make([]geom.Point, 0, len(cells))}
	for i := len(cells) - 1; i >= 0; i-- {
		p.Points = append(p.Points, r.grid.CellCenter(cells[i].col, cells[i].row))
	}
	for i := 1; i < len(p.Points); i++ {
		p.Length += p.Points[i-1].Distance(p.Points[i])
	}

	return p
}

// openItem is one open-set entry: a cell, its f-score, and the push sequence
// number used to break f-score ties deterministically.
type openItem struct {
	cell cell
	f    float64
	seq  int
}

// openPQ is a binary min-heap of *openItem ordered by f ascending, with
// equal f-scores resolved by insertion order.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
