// Package grid implements the uniform occupancy grid that single-floor
// circulation routing searches over.
//
// An ObstacleGrid rasterizes polygonal obstacles (walls, forbidden zones,
// placed storage units) onto a boolean cell array covering given world-space
// bounds. A cell is occupied when its center lies inside a marked polygon,
// or, when a clearance padding is requested, within that padding of any
// polygon edge.
//
// Grids are built fresh per planning request. Marking is OR-only and
// idempotent; there is no unmark operation: a changed floor means a new
// grid, never an edited one.
//
// Complexity:
//
//   - New:          O(cols×rows) memory, O(1) additional time.
//   - MarkObstacle: O(k×n) where k = cells inside the padded bounding box
//     of the polygon and n = polygon vertex count.
package grid
