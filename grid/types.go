// Package grid defines the occupancy-grid type and its sentinel errors.
package grid

import (
	"errors"

	"github.com/katalvlaran/circulation/geom"
)

// Sentinel errors for grid construction.
var (
	// ErrBadCellSize indicates a zero or negative cell size.
	ErrBadCellSize = errors.New("grid: cell size must be positive")
)

// ObstacleGrid is a uniform boolean occupancy raster over world-space bounds.
// Bounds, cell size, and dimensions are fixed at construction; only the
// occupancy bits change, and only from free to occupied.
type ObstacleGrid struct {
	bounds   geom.Bounds
	cellSize float64
	cols     int
	rows     int
	occupied []bool // row-major: index = row*cols + col
}

// Bounds returns the world-space bounds the grid covers.
func (g *ObstacleGrid) Bounds() geom.Bounds { return g.bounds }

// CellSize returns the edge length of a cell in world units.
func (g *ObstacleGrid) CellSize() float64 { return g.cellSize }

// Cols returns the number of columns.
func (g *ObstacleGrid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *ObstacleGrid) Rows() int { return g.rows }
