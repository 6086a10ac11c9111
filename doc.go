// Package circulation is the root of a library for circulation routing in
// multi-level floor plans: turning continuous 2D geometry littered with
// polygonal obstacles into traversable paths, and stair/elevator stacks into
// a cross-floor routing graph.
//
// Subpackages:
//
//   - geom:      planar primitives (points, bounds, polygons).
//   - grid:      occupancy-grid rasterization of polygonal obstacles.
//   - astar:     A* pathfinding over an occupancy grid.
//   - planner:   single-floor orchestration, entrances to placed units.
//   - connector: multi-floor connector graph and base-level routing.
//
// All operations are synchronous, CPU-bound, and pure per call: each
// planning request allocates its own grid or graph, computes, and drops it.
// Independent requests may run concurrently without locking.
package circulation
