package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/circulation/geom"
)

// New allocates an all-free ObstacleGrid covering bounds with square cells
// of the given size. Dimensions are cols = max(1, ceil(width/cellSize)) and
// rows = max(1, ceil(height/cellSize)).
//
// Fails fast with geom.ErrInvalidBounds on zero/negative width or height and
// ErrBadCellSize on cellSize <= 0.
func New(bounds geom.Bounds, cellSize float64) (*ObstacleGrid, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: got %.6g", ErrBadCellSize, cellSize)
	}

	cols := int(math.Ceil(bounds.Width() / cellSize))
	rows := int(math.Ceil(bounds.Height() / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &ObstacleGrid{
		bounds:   bounds,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		occupied: make([]bool, cols*rows),
	}, nil
}

// InBounds reports whether (col,row) lies within the grid.
func (g *ObstacleGrid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Occupied reports whether the cell at (col,row) is blocked. Out-of-bounds
// cells count as blocked, so searches never step off the grid.
func (g *ObstacleGrid) Occupied(col, row int) bool {
	if !g.InBounds(col, row) {
		return true
	}

	return g.occupied[row*g.cols+col]
}

// CellAt converts a continuous point to cell coordinates by floor division,
// clamped to the grid so that points on or beyond the boundary map to the
// nearest valid cell.
func (g *ObstacleGrid) CellAt(p geom.Point) (col, row int) {
	col = int(math.Floor((p.X - g.bounds.MinX) / g.cellSize))
	row = int(math.Floor((p.Y - g.bounds.MinY) / g.cellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}

// CellCenter returns the world-space center of the cell at (col,row).
func (g *ObstacleGrid) CellCenter(col, row int) geom.Point {
	return geom.Point{
		X: g.bounds.MinX + (float64(col)+0.5)*g.cellSize,
		Y: g.bounds.MinY + (float64(row)+0.5)*g.cellSize,
	}
}

// OccupiedCount returns the number of blocked cells. Intended for
// diagnostics and tests, not hot paths.
func (g *ObstacleGrid) OccupiedCount() int {
	n := 0
	for _, o := range g.occupied {
		if o {
			n++
		}
	}

	return n
}
