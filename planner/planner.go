package planner

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/circulation/astar"
	"github.com/katalvlaran/circulation/geom"
	"github.com/katalvlaran/circulation/grid"
)

// Plan computes entrance→unit circulation paths for one floor.
//
// It builds a fresh ObstacleGrid over plan.Bounds, marks all three obstacle
// classes (walls and forbidden zones with Clearance, units with
// UnitClearance), then connects every entrance to its MaxTargets nearest
// units. Zero-length paths are discarded; unreachable pairs simply produce
// no route.
//
// Fails fast on malformed bounds or cell size; otherwise planning problems
// surface as missing routes, never as errors.
func Plan(plan FloorPlan, opts ...Option) ([]Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := buildGrid(plan, cfg)
	if err != nil {
		return nil, err
	}

	unitIndex := newUnitIndex(plan.Units)

	var routes []Route
	for i, entrance := range plan.Entrances {
		routes = append(routes, planEntrance(g, unitIndex, entrance, i, cfg)...)
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("planner: floor planned",
			"entrances", len(plan.Entrances),
			"units", len(plan.Units),
			"routes", len(routes),
			"occupiedCells", g.OccupiedCount())
	}

	return routes, nil
}

// buildGrid rasterizes the floor's obstacles onto a new occupancy grid.
// An R-tree culls obstacles that lie entirely outside the floor bounds
// before any per-cell work happens.
func buildGrid(plan FloorPlan, cfg Options) (*grid.ObstacleGrid, error) {
	g, err := grid.New(plan.Bounds, cfg.CellSize)
	if err != nil {
		return nil, err
	}

	entries := make([]*obstacleEntry, 0,
		len(plan.Walls)+len(plan.WallLines)+len(plan.ForbiddenZones)+len(plan.Units))
	add := func(poly geom.Polygon, padding float64) {
		bbox, rerr := rectFor(poly.BoundingBox(), padding)
		if rerr != nil {
			return // degenerate polygon, nothing to mark
		}
		entries = append(entries, &obstacleEntry{poly: poly, padding: padding, bbox: bbox})
	}

	for _, wall := range plan.Walls {
		add(wall, cfg.Clearance)
	}
	for _, line := range plan.WallLines {
		add(geom.SegmentQuad(line.A, line.B, cfg.WallThickness), cfg.Clearance)
	}
	for _, zone := range plan.ForbiddenZones {
		add(zone, cfg.Clearance)
	}
	for _, unit := range plan.Units {
		add(unit.Polygon(), cfg.UnitClearance)
	}

	tree := newObstacleIndex(entries)
	floorRect, err := rectFor(plan.Bounds, 0)
	if err != nil {
		return nil, err
	}
	for _, item := range tree.SearchIntersect(floorRect) {
		e := item.(*obstacleEntry)
		g.MarkObstacle(e.poly, e.padding)
	}

	return g, nil
}

// planEntrance connects one entrance to its K nearest units. Candidates are
// ranked by Euclidean distance from the entrance centroid; paths that snap
// start and goal to the same cell (zero length) are discarded.
func planEntrance(g *grid.ObstacleGrid, unitIndex *rtreego.Rtree, entrance Entrance, idx int, cfg Options) []Route {
	from := entranceID(entrance, idx)
	center := entranceCenter(entrance)

	var routes []Route
	for _, unit := range nearestUnits(unitIndex, center, cfg.MaxTargets) {
		path, err := astar.FindPath(g, center, unit.Center(),
			astar.WithMaxExpansions(cfg.MaxExpansions),
			astar.WithLogger(cfg.Logger))
		if err != nil || path == nil || path.Length == 0 {
			continue
		}
		to := unit.ID
		routes = append(routes, Route{
			ID:     fmt.Sprintf("path_%s_%s", from, to),
			From:   from,
			To:     to,
			Points: path.Points,
			Length: path.Length,
		})
	}

	return routes
}

// entranceCenter resolves the entrance location: an explicit center wins,
// otherwise the outline centroid.
func entranceCenter(e Entrance) geom.Point {
	if e.Center != nil {
		return *e.Center
	}

	return e.Outline.Centroid()
}

// entranceID falls back to a positional id when the input carries none.
func entranceID(e Entrance, idx int) string {
	if e.ID != "" {
		return e.ID
	}

	return fmt.Sprintf("entrance_%d", idx)
}
