package planner

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/circulation/geom"
)

// rectTol is the minimum R-tree rectangle edge; rtreego rejects zero-length
// sides, and point entries (unit centers) need a tiny footprint.
const rectTol = 0.01

// obstacleEntry wraps one obstacle polygon and its padding class for R-tree
// storage.
type obstacleEntry struct {
	poly    geom.Polygon
	padding float64
	bbox    rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *obstacleEntry) Bounds() rtreego.Rect { return e.bbox }

// unitEntry wraps one destination unit for nearest-neighbor ranking.
type unitEntry struct {
	unit Unit
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *unitEntry) Bounds() rtreego.Rect { return e.bbox }

// rectFor converts world bounds (expanded by pad) to an rtreego.Rect with
// degenerate sides clamped to rectTol.
func rectFor(b geom.Bounds, pad float64) (rtreego.Rect, error) {
	b = b.Expand(pad)

	return rtreego.NewRect(
		rtreego.Point{b.MinX, b.MinY},
		[]float64{math.Max(b.Width(), rectTol), math.Max(b.Height(), rectTol)},
	)
}

// newObstacleIndex builds an R-tree over obstacle polygons so that marking
// can skip obstacles that lie entirely outside the floor bounds.
func newObstacleIndex(entries []*obstacleEntry) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 25, 50)
	for _, e := range entries {
		tree.Insert(e)
	}

	return tree
}

// newUnitIndex builds an R-tree over unit centers for K-nearest ranking.
func newUnitIndex(units []Unit) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 25, 50)
	for _, u := range units {
		c := u.Center()
		tree.Insert(&unitEntry{
			unit: u,
			bbox: rtreego.Point{c.X, c.Y}.ToRect(rectTol),
		})
	}

	return tree
}

// nearestUnits returns up to k units ranked by distance from p.
func nearestUnits(tree *rtreego.Rtree, p geom.Point, k int) []Unit {
	found := tree.NearestNeighbors(k, rtreego.Point{p.X, p.Y})
	units := make([]Unit, 0, len(found))
	for _, item := range found {
		if item == nil {
			continue // rtreego pads with nils when k exceeds tree size
		}
		units = append(units, item.(*unitEntry).unit)
	}

	return units
}
