package astar_test

import (
	"fmt"

	"github.com/katalvlaran/circulation/astar"
	"github.com/katalvlaran/circulation/geom"
	"github.com/katalvlaran/circulation/grid"
)

// ExampleFindPath demonstrates a diagonal crossing of an empty 5×5 grid.
func ExampleFindPath() {
	g, err := grid.New(geom.Bounds{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}, 1)
	if err != nil {
		panic(err)
	}

	path, err := astar.FindPath(g, geom.Point{X: 0.5, Y: 0.5}, geom.Point{X: 4.5, Y: 4.5})
	if err != nil {
		panic(err)
	}

	fmt.Printf("waypoints: %d\n", len(path.Points))
	fmt.Printf("length: %.2f\n", path.Length)
	// Output:
	// waypoints: 5
	// length: 5.66
}

// ExampleFindPath_blocked shows the expected no-path outcome: a full wall
// splits the grid and FindPath returns nil without an error.
func ExampleFindPath_blocked() {
	g, err := grid.New(geom.Bounds{MinX: 0, MinY: 0, MaxX: 6, MaxY: 6}, 1)
	if err != nil {
		panic(err)
	}
	g.MarkObstacle(geom.Rect(2.1, -1, 1.8, 8), 0)

	path, err := astar.FindPath(g, geom.Point{X: 0.5, Y: 3}, geom.Point{X: 5.5, Y: 3})
	fmt.Println(path == nil, err == nil)
	// Output:
	// true true
}
