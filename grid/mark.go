package grid

import (
	"github.com/katalvlaran/circulation/geom"
)

// MarkObstacle rasterizes poly onto the grid, blocking every cell whose
// center lies inside the polygon or, when padding > 0, within padding of
// the closest point on any polygon edge. The padding comparison uses squared
// distances, so no square root is taken per cell.
//
// Only cells inside the polygon's bounding box expanded by padding are
// examined. Marking is idempotent (OR semantics); degenerate polygons with
// fewer than three vertices are ignored.
func (g *ObstacleGrid) MarkObstacle(poly geom.Polygon, padding float64) {
	if len(poly) < 3 {
		return
	}

	box := poly.BoundingBox().Expand(padding)
	minCol, minRow := g.CellAt(geom.Point{X: box.MinX, Y: box.MinY})
	maxCol, maxRow := g.CellAt(geom.Point{X: box.MaxX, Y: box.MaxY})

	padSq := padding * padding
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			idx := row*g.cols + col
			if g.occupied[idx] {
				continue
			}
			center := g.CellCenter(col, row)
			if poly.Contains(center) {
				g.occupied[idx] = true
				continue
			}
			if padding > 0 && poly.EdgeDistanceSquared(center) <= padSq {
				g.occupied[idx] = true
			}
		}
	}
}
