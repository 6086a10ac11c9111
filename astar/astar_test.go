package astar_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circulation/astar"
	"github.com/katalvlaran/circulation/geom"
	"github.com/katalvlaran/circulation/grid"
)

// emptyGrid returns a free 10×10-unit grid with 1-unit cells.
func emptyGrid(t *testing.T) *grid.ObstacleGrid {
	t.Helper()
	g, err := grid.New(geom.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, 1)
	require.NoError(t, err)

	return g
}

func TestFindPath_NilGrid(t *testing.T) {
	_, err := astar.FindPath(nil, geom.Point{}, geom.Point{})
	assert.ErrorIs(t, err, astar.ErrNilGrid)
}

// TestFindPath_EmptyGridNearStraight: on an empty grid the path length stays
// within one cell diagonal of the straight-line distance.
func TestFindPath_EmptyGridNearStraight(t *testing.T) {
	g := emptyGrid(t)
	start := geom.Point{X: 0.2, Y: 0.2}
	goal := geom.Point{X: 9.7, Y: 9.7}

	path, err := astar.FindPath(g, start, goal)
	require.NoError(t, err)
	require.NotNil(t, path)

	straight := start.Distance(goal)
	assert.LessOrEqual(t, math.Abs(path.Length-straight), math.Sqrt2,
		"path length %.3f vs straight %.3f", path.Length, straight)
}

func TestFindPath_SameCell(t *testing.T) {
	g := emptyGrid(t)
	path, err := astar.FindPath(g, geom.Point{X: 3.1, Y: 3.1}, geom.Point{X: 3.4, Y: 3.2})
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Len(t, path.Points, 1)
	assert.Zero(t, path.Length)
}

// TestFindPath_RoutesAroundBlock is the 10×10 / 3×3-block scenario: the path
// must detour around the obstacle, respect occupancy, and never cut corners.
func TestFindPath_RoutesAroundBlock(t *testing.T) {
	g := emptyGrid(t)
	g.MarkObstacle(geom.Rect(3.5, 3.5, 3, 3), 0) // 3×3 block centered at (5,5)

	path, err := astar.FindPath(g, geom.Point{X: 0, Y: 0}, geom.Point{X: 9, Y: 9})
	require.NoError(t, err)
	require.NotNil(t, path)

	assert.Greater(t, path.Length, 12.7, "must exceed the straight-line distance")
	assert.Less(t, path.Length, 18.0)

	// Obstacle respect: no waypoint sits on an occupied cell center.
	for _, p := range path.Points {
		col, row := g.CellAt(p)
		assert.False(t, g.Occupied(col, row), "waypoint %+v on occupied cell", p)
	}

	// No corner-cutting: every diagonal step has at least one free
	// orthogonal neighbor (the implementation requires both).
	for i := 1; i < len(path.Points); i++ {
		c0, r0 := g.CellAt(path.Points[i-1])
		c1, r1 := g.CellAt(path.Points[i])
		if c0 != c1 && r0 != r1 {
			free := !g.Occupied(c1, r0) || !g.Occupied(c0, r1)
			assert.True(t, free, "corner cut between %v and %v", path.Points[i-1], path.Points[i])
		}
	}
}

func TestFindPath_NoPathAcrossWall(t *testing.T) {
	g := emptyGrid(t)
	// Full-height wall blocking columns 4 and 5.
	g.MarkObstacle(geom.Rect(4.1, -1, 1.8, 12), 0)

	path, err := astar.FindPath(g, geom.Point{X: 0.5, Y: 0.5}, geom.Point{X: 9.5, Y: 9.5})
	require.NoError(t, err)
	assert.Nil(t, path, "no path should exist across a full wall")
}

// TestFindPath_SnapsOccupiedStart: a start point inside an obstacle snaps to
// the nearest free cell (ring scan) and the search proceeds from there.
func TestFindPath_SnapsOccupiedStart(t *testing.T) {
	g := emptyGrid(t)
	g.MarkObstacle(geom.Rect(1.5, 1.5, 2, 2), 0)

	path, err := astar.FindPath(g, geom.Point{X: 2.5, Y: 2.5}, geom.Point{X: 8.5, Y: 8.5})
	require.NoError(t, err)
	require.NotNil(t, path)

	// The first waypoint must be a free cell adjacent to the blocked area.
	col, row := g.CellAt(path.Points[0])
	assert.False(t, g.Occupied(col, row))
}

// TestFindPath_SnapBeyondRadiusFails: endpoints deeper than the snap radius
// (5 rings) inside blocked space yield no path.
func TestFindPath_SnapBeyondRadiusFails(t *testing.T) {
	g := emptyGrid(t)
	// Blocks cells (0,0)..(6,6); start cell (0,0) is 7 rings from free space.
	g.MarkObstacle(geom.Rect(-1, -1, 8.2, 8.2), 0)

	path, err := astar.FindPath(g, geom.Point{X: 0.5, Y: 0.5}, geom.Point{X: 9.5, Y: 9.5})
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestFindPath_ExpansionBudget(t *testing.T) {
	g := emptyGrid(t)
	path, err := astar.FindPath(g,
		geom.Point{X: 0.5, Y: 0.5}, geom.Point{X: 9.5, Y: 9.5},
		astar.WithMaxExpansions(2))
	require.NoError(t, err)
	assert.Nil(t, path, "budget hit must surface as no-path")
}

func TestFindPath_Deterministic(t *testing.T) {
	g := emptyGrid(t)
	g.MarkObstacle(geom.Rect(3.5, 3.5, 3, 3), 0)
	start, goal := geom.Point{X: 0, Y: 0}, geom.Point{X: 9, Y: 9}

	first, err := astar.FindPath(g, start, goal)
	require.NoError(t, err)
	second, err := astar.FindPath(g, start, goal)
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical searches produced different paths")
	}
}

func TestWithMaxExpansions_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { astar.WithMaxExpansions(0) })
}
